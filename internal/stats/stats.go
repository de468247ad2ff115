// Package stats computes descriptive statistics and a Student's-t
// confidence interval for the population mean of a sample set.
package stats

import (
	"math"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Value is a numeric field that may be unavailable. Standard deviation
// and the interval fields are undefined below two samples; mean, sum,
// min and max are undefined for an empty sample set.
type Value struct {
	V  float64
	OK bool
}

// Avail wraps a computed value.
func Avail(v float64) Value { return Value{V: v, OK: true} }

// Record holds every derived quantity for one sample set. It is built
// once per invocation and never mutated afterwards.
type Record struct {
	Size       int
	Confidence float64
	Mean       Value
	Stdev      Value
	Margin     Value
	Lower      Value
	Upper      Value
	Sum        Value
	Min        Value
	Max        Value
}

// FromSamples derives a full Record from raw samples. The standard
// deviation is the Bessel-corrected sample standard deviation.
func FromSamples(xs []float64, confidence float64) Record {
	rec := Record{Size: len(xs), Confidence: confidence}
	s := moremath.Sample{Xs: xs}

	if rec.Size >= 1 {
		rec.Sum = Avail(s.Sum())
		rec.Mean = Avail(s.Mean())
		min, max := s.Bounds()
		rec.Min = Avail(min)
		rec.Max = Avail(max)
	}
	if rec.Size >= 2 {
		rec.Stdev = Avail(s.StdDev())
		rec.applyInterval(rec.Mean.V, rec.Stdev.V)
	}
	return rec
}

// FromAggregate derives a Record directly from a pre-computed mean,
// standard deviation and sample size. Sum, min and max are not
// recoverable from aggregates and stay unavailable. Sizes below two
// are passed through unguarded and yield NaN interval fields.
func FromAggregate(mean, stdev float64, size int, confidence float64) Record {
	rec := Record{
		Size:       size,
		Confidence: confidence,
		Mean:       Avail(mean),
		Stdev:      Avail(stdev),
	}
	rec.applyInterval(mean, stdev)
	return rec
}

// applyInterval fills the margin of error and the interval bounds from
// an already-known mean and standard deviation. Shared by the
// raw-sample and pre-aggregated paths so the formula exists once.
func (r *Record) applyInterval(mean, stdev float64) {
	t := tCritical(r.Confidence, r.Size-1)
	margin := t * stdev / math.Sqrt(float64(r.Size))
	r.Margin = Avail(margin)
	r.Lower = Avail(mean - margin)
	r.Upper = Avail(mean + margin)
}

// tCritical is the two-sided Student's t critical value: the quantile
// of the t distribution with df degrees of freedom at cumulative
// probability (1+confidence)/2. The exact quantile matters for small
// sample sizes, where a normal approximation is visibly off.
func tCritical(confidence float64, df int) float64 {
	if df < 1 {
		return math.NaN()
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	return dist.Quantile((1 + confidence) / 2)
}
