// Package sample walks a regular grid of coordinates through a noise
// generator and writes one tab-separated row per point.
package sample

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvnoise/perlin"
)

var (
	// ErrBadGrid indicates mismatched axis lengths or a non-positive count.
	ErrBadGrid = errors.New("sample: invalid grid")
	// ErrBadDimension indicates a dimension other than 1, 2 or 3.
	ErrBadDimension = errors.New("sample: dimension must be 1, 2 or 3")
)

// Func evaluates a field at len(c) coordinates.
type Func func(c []float64) float64

// Grid describes Count[i] points per axis, starting at Origin[i] and spaced
// Step[i] apart. All three slices have one entry per dimension.
type Grid struct {
	Origin []float64
	Step   []float64
	Count  []int
}

// Dim returns the number of axes.
func (g Grid) Dim() int { return len(g.Count) }

// Points returns the total number of samples.
func (g Grid) Points() int {
	n := 1
	for _, c := range g.Count {
		n *= c
	}
	return n
}

// Validate checks axis lengths and counts.
func (g Grid) Validate() error {
	d := len(g.Count)
	if d < 1 || d > 3 {
		return fmt.Errorf("%w: %d axes", ErrBadDimension, d)
	}
	if len(g.Origin) != d || len(g.Step) != d {
		return fmt.Errorf("%w: origin/step/count lengths %d/%d/%d", ErrBadGrid, len(g.Origin), len(g.Step), d)
	}
	for i, c := range g.Count {
		if c < 1 {
			return fmt.Errorf("%w: count[%d]=%d", ErrBadGrid, i, c)
		}
	}
	return nil
}

// New builds a generator of the given dimension and adapts it to Func.
// The seed actually used is returned so callers can report it.
func New(dim int, opts ...perlin.Option) (Func, int64, error) {
	switch dim {
	case 1:
		n, err := perlin.New1D(opts...)
		if err != nil {
			return nil, 0, err
		}
		return From1D(n), n.Seed(), nil
	case 2:
		n, err := perlin.New2D(opts...)
		if err != nil {
			return nil, 0, err
		}
		return From2D(n), n.Seed(), nil
	case 3:
		n, err := perlin.New3D(opts...)
		if err != nil {
			return nil, 0, err
		}
		return From3D(n), n.Seed(), nil
	default:
		return nil, 0, fmt.Errorf("%w: got %d", ErrBadDimension, dim)
	}
}

// From1D adapts a 1D sampler.
func From1D(s perlin.Sampler1D) Func {
	return func(c []float64) float64 { return s.Noise(c[0]) }
}

// From2D adapts a 2D sampler.
func From2D(s perlin.Sampler2D) Func {
	return func(c []float64) float64 { return s.Noise(c[0], c[1]) }
}

// From3D adapts a 3D sampler.
func From3D(s perlin.Sampler3D) Func {
	return func(c []float64) float64 { return s.Noise(c[0], c[1], c[2]) }
}

// Write evaluates f on every point of g and writes rows
// "c0<TAB>…<TAB>value\n", x varying fastest, then y, then z.
// Coordinates are computed as Origin[i] + k·Step[i], never accumulated.
//
// Complexity: O(Points) evaluations, one reused row buffer.
func Write(w io.Writer, f Func, g Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	d := g.Dim()
	idx := make([]int, d)
	coords := make([]float64, d)
	row := make([]byte, 0, 96)

	for p := g.Points(); p > 0; p-- {
		for i := 0; i < d; i++ {
			coords[i] = g.Origin[i] + float64(idx[i])*g.Step[i]
		}
		v := f(coords)

		row = row[:0]
		for i := 0; i < d; i++ {
			row = strconv.AppendFloat(row, coords[i], 'g', -1, 64)
			row = append(row, '\t')
		}
		row = strconv.AppendFloat(row, v, 'g', -1, 64)
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return err
		}

		// odometer increment, x fastest
		for i := 0; i < d; i++ {
			idx[i]++
			if idx[i] < g.Count[i] {
				break
			}
			idx[i] = 0
		}
	}
	return bw.Flush()
}
