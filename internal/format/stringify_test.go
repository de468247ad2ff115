package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinktide/statspan/internal/stats"
)

func TestStringify(t *testing.T) {
	rec := stats.FromSamples([]float64{1, 2, 3, 4, 5}, 0.95)

	f := Stringify(rec, 3)
	assert.Equal(t, "3.000", f.Mean)
	assert.Equal(t, "5", f.Size)
	assert.Equal(t, "1.581", f.Stdev)
	assert.Equal(t, "1.963", f.Margin)
	assert.Equal(t, "1.037", f.Lower)
	assert.Equal(t, "4.963", f.Upper)
	assert.Equal(t, "0.950", f.Confidence)
	assert.Equal(t, "95.000", f.ConfidencePct)
	assert.Equal(t, "15.000", f.Sum)
	assert.Equal(t, "1.000", f.Min)
	assert.Equal(t, "5.000", f.Max)
}

func TestStringifyFullPrecision(t *testing.T) {
	rec := stats.FromSamples([]float64{1, 2, 3, 4, 5}, 0.95)

	f := Stringify(rec, -1)
	assert.Equal(t, "3", f.Mean)
	assert.Equal(t, "0.95", f.Confidence)
	assert.Equal(t, "95", f.ConfidencePct)
	// No rounding: the stdev keeps its full decimal expansion.
	assert.Equal(t, "1.5811388300841898", f.Stdev)
}

func TestStringifyZeroDigits(t *testing.T) {
	rec := stats.FromSamples([]float64{1, 2, 3, 4, 5}, 0.95)

	f := Stringify(rec, 0)
	assert.Equal(t, "3", f.Mean)
	assert.Equal(t, "2", f.Stdev)
	assert.Equal(t, "95", f.ConfidencePct)
}

func TestStringifyUnavailable(t *testing.T) {
	f := Stringify(stats.FromSamples(nil, 0.95), 3)
	assert.Equal(t, "0", f.Size)
	assert.Equal(t, Unavailable, f.Mean)
	assert.Equal(t, Unavailable, f.Stdev)
	assert.Equal(t, Unavailable, f.Margin)
	assert.Equal(t, Unavailable, f.Lower)
	assert.Equal(t, Unavailable, f.Upper)
	assert.Equal(t, Unavailable, f.Sum)
	assert.Equal(t, Unavailable, f.Min)
	assert.Equal(t, Unavailable, f.Max)
	// Confidence is an input, not a derived field; it stays numeric.
	assert.Equal(t, "0.950", f.Confidence)

	one := Stringify(stats.FromSamples([]float64{7}, 0.95), 3)
	assert.Equal(t, "7.000", one.Mean)
	assert.Equal(t, Unavailable, one.Stdev)
	assert.Equal(t, Unavailable, one.Margin)
}
