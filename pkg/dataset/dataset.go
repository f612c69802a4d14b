// Package dataset builds and loads the (input, output) samples a search is
// fitted against, and the input points it must stay valid on.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// Sample is one training pair. Input is bound positionally to the search's
// identifiers.
type Sample struct {
	Input  []float64 `json:"input"`
	Output float64   `json:"output"`
}

// FromFunc draws n inputs uniformly from [lo, hi) and labels them with f.
func FromFunc(rng *rand.Rand, f func(float64) float64, lo, hi float64, n int) ([]Sample, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("invalid range [%g, %g)", lo, hi)
	}
	samples := make([]Sample, n)
	for i := range samples {
		x := lo + rng.Float64()*(hi-lo)
		samples[i] = Sample{Input: []float64{x}, Output: f(x)}
	}
	return samples, nil
}

// Grid returns n+1 evenly spaced one-dimensional points covering [lo, hi].
func Grid(lo, hi float64, n int) [][]float64 {
	if n <= 0 {
		return [][]float64{{lo}}
	}
	delta := (hi - lo) / float64(n)
	points := make([][]float64, n+1)
	for j := range points {
		points[j] = []float64{lo + float64(j)*delta}
	}
	return points
}

// Inputs returns the input vectors of samples, in order.
func Inputs(samples []Sample) [][]float64 {
	points := make([][]float64, len(samples))
	for i, s := range samples {
		points[i] = s.Input
	}
	return points
}

// Load reads a whitespace separated table. The header row names the input
// columns followed by the output column; every following non-blank row is a
// sample. Lines starting with '#' are ignored.
func Load(r io.Reader) ([]string, []Sample, error) {
	sc := bufio.NewScanner(r)
	var identifiers []string
	var samples []Sample
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if identifiers == nil {
			if len(fields) < 2 {
				return nil, nil, fmt.Errorf("line %d: header needs at least one input and one output column", line)
			}
			identifiers = fields[:len(fields)-1]
			continue
		}

		if len(fields) != len(identifiers)+1 {
			return nil, nil, fmt.Errorf("line %d: got %d columns, want %d", line, len(fields), len(identifiers)+1)
		}
		values := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			values[i] = v
		}
		samples = append(samples, Sample{Input: values[:len(identifiers)], Output: values[len(identifiers)]})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if identifiers == nil {
		return nil, nil, fmt.Errorf("empty data file")
	}
	return identifiers, samples, nil
}
