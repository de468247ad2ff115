package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadFormat reports a malformed output template: an unknown token,
// a predefined-format index out of range, or a trailing unescaped %.
var ErrBadFormat = errors.New("bad output format")

// Default is the template used when no --outformat is given. It is
// also the first predefined format, reachable as %1.
const Default = "%M ± %E (confidence of %C)"

// Predefined is the fixed set of ready-made templates, selectable from
// inside a template with the digit tokens %1 through %5.
var Predefined = [...]string{
	Default,
	"mean %M, stdev %S (n=%N)",
	"[%L, %U] at %c%% confidence",
	"n=%N sum=%s min=%i max=%a",
	"%M ± %E",
}

// Render substitutes the percent tokens of template with the values in
// f. A literal % is written as %%; more generally a run of 2k percent
// signs renders as k literal ones, and a run of 2k+1 renders k literal
// ones and treats the following character as a token. The scan keeps
// an explicit pending-% counter rather than using regular expressions
// so that a template ending mid-escape is detected exactly.
func Render(f Fields, template string) (string, error) {
	var out strings.Builder
	pending := 0
	for _, c := range template {
		if c == '%' {
			pending++
			continue
		}
		out.WriteString(strings.Repeat("%", pending/2))
		odd := pending%2 == 1
		pending = 0
		if !odd {
			out.WriteRune(c)
			continue
		}
		if v, ok := f.token(c); ok {
			out.WriteString(v)
			continue
		}
		if c >= '1' && c <= '9' {
			i := int(c - '1')
			if i >= len(Predefined) {
				return "", fmt.Errorf("%w: no predefined format %%%c", ErrBadFormat, c)
			}
			v, err := Render(f, Predefined[i])
			if err != nil {
				return "", err
			}
			out.WriteString(v)
			continue
		}
		return "", fmt.Errorf("%w: unknown token %%%c", ErrBadFormat, c)
	}
	if pending%2 == 1 {
		return "", fmt.Errorf("%w: template ends inside a %% escape", ErrBadFormat)
	}
	out.WriteString(strings.Repeat("%", pending/2))
	return out.String(), nil
}
