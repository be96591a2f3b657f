// SPDX-License-Identifier: MIT

package perlin

import (
	"math"

	"github.com/katalvlaran/lvnoise/rng"
)

// field is the state shared by every engine: the seed, the fractal knobs
// and the permutation table built from the seed. It is never mutated after
// newField returns.
type field struct {
	seed   int64
	params Params
	table  Table
}

// newField resolves opts, validates the parameters and builds the table.
// Validation runs before a seed is drawn, so a rejected configuration has
// no side effects.
func newField(opts []Option) (field, error) {
	cfg := newConfig(opts)
	if err := cfg.params.Validate(); err != nil {
		return field{}, err
	}

	seed := cfg.seed
	if !cfg.hasSeed {
		seed = rng.RandomSeed()
	}

	return field{
		seed:   seed,
		params: cfg.params,
		table:  NewTable(rng.New(seed)),
	}, nil
}

// Seed returns the seed the permutation table was built from, including a
// randomly chosen one when no WithSeed option was given.
func (f *field) Seed() int64 { return f.seed }

// Params returns the validated fractal parameters.
func (f *field) Params() Params { return f.params }

// Table returns a copy of the permutation table.
func (f *field) Table() Table { return f.table }

// lattice splits c into the masked indices of its cell's lower and upper
// corners and the fractional offset of c inside the cell.
func lattice(c float64) (i0, i1 int, frac float64) {
	fl := math.Floor(c)
	i0 = int(fl) & latticeMask
	i1 = (i0 + 1) & latticeMask
	return i0, i1, c - fl
}

// fade is the quintic smoothing curve 6t⁵ − 15t⁴ + 10t³, which has zero
// first and second derivatives at t=0 and t=1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}
