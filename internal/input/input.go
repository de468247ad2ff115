// Package input reads numeric samples from a stream or a file.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadNumber reports a token that does not parse as a floating-point
// value.
var ErrBadNumber = errors.New("invalid number format")

// ReadSamples reads numbers from r, one or more per line. Tokens are
// separated by runs of spaces, commas or semicolons; empty tokens are
// skipped.
func ReadSamples(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, tok := range strings.FieldsFunc(scanner.Text(), isSep) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadNumber, err)
			}
			xs = append(xs, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return xs, nil
}

// ReadSamplesFile reads samples from the named file.
func ReadSamplesFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return ReadSamples(file)
}

func isSep(r rune) bool {
	return r == ' ' || r == ',' || r == ';'
}
