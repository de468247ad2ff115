// Package format turns a statistics record into text: it stringifies
// the numeric fields with a chosen rounding precision and renders a
// percent-token template against them.
package format

import (
	"strconv"

	"github.com/thinktide/statspan/internal/stats"
)

// Unavailable is the marker printed for fields that are undefined at
// the current sample size.
const Unavailable = "n/a"

// Fields is the stringified form of a stats.Record, ready for the
// renderer. Unavailable fields hold the Unavailable marker.
type Fields struct {
	Mean          string
	Size          string
	Stdev         string
	Margin        string
	Lower         string
	Upper         string
	Confidence    string
	ConfidencePct string
	Sum           string
	Min           string
	Max           string
}

// Stringify converts every field of rec to its decimal string form.
// A negative digits keeps the full natural precision; otherwise values
// are rounded to that many fractional digits (half to even, as
// strconv does). The confidence percentage and the interval bounds are
// derived here so rounding applies to them uniformly.
func Stringify(rec stats.Record, digits int) Fields {
	return Fields{
		Mean:          value(rec.Mean, digits),
		Size:          strconv.Itoa(rec.Size),
		Stdev:         value(rec.Stdev, digits),
		Margin:        value(rec.Margin, digits),
		Lower:         value(rec.Lower, digits),
		Upper:         value(rec.Upper, digits),
		Confidence:    float(rec.Confidence, digits),
		ConfidencePct: float(rec.Confidence*100, digits),
		Sum:           value(rec.Sum, digits),
		Min:           value(rec.Min, digits),
		Max:           value(rec.Max, digits),
	}
}

func value(v stats.Value, digits int) string {
	if !v.OK {
		return Unavailable
	}
	return float(v.V, digits)
}

func float(x float64, digits int) string {
	if digits < 0 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// token resolves a single-letter format token to its field value.
func (f Fields) token(c rune) (string, bool) {
	switch c {
	case 'M':
		return f.Mean, true
	case 'N':
		return f.Size, true
	case 'S':
		return f.Stdev, true
	case 'E':
		return f.Margin, true
	case 'L':
		return f.Lower, true
	case 'U':
		return f.Upper, true
	case 'C':
		return f.Confidence, true
	case 'c':
		return f.ConfidencePct, true
	case 's':
		return f.Sum, true
	case 'i':
		return f.Min, true
	case 'a':
		return f.Max, true
	}
	return "", false
}
