// SPDX-License-Identifier: MIT
// Package: lvnoise/perlin
//
// options.go — functional options for the engine constructors.
//
// Contract:
//   • Options only record values; they never panic and never validate.
//   • New1D/New2D/New3D resolve options in order (later overrides earlier)
//     over DefaultParams, then validate once and fail with ErrInvalidParameter.
//   • Seeding is explicit: without WithSeed a seed is drawn by rng.RandomSeed
//     and is readable afterwards through Seed().

package perlin

// Option customizes a generator before its permutation table is built.
type Option func(*config)

// config is the resolved constructor input.
type config struct {
	params  Params
	seed    int64
	hasSeed bool
}

// newConfig applies opts over the documented defaults.
func newConfig(opts []Option) config {
	c := config{params: DefaultParams()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithSeed fixes the seed of the permutation table. Any int64 is accepted;
// see package rng for how seeds map onto the random stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithScale sets the coordinate multiplier (> 0).
func WithScale(scale float64) Option {
	return func(c *config) {
		c.params.Scale = scale
	}
}

// WithOctaves sets the number of fractal layers (≥ 1).
func WithOctaves(n int) Option {
	return func(c *config) {
		c.params.Octaves = n
	}
}

// WithLacunarity sets the per-octave frequency multiplier (≥ 1).
func WithLacunarity(l float64) Option {
	return func(c *config) {
		c.params.Lacunarity = l
	}
}

// WithPersistence sets the per-octave amplitude multiplier, in (0, 1].
func WithPersistence(p float64) Option {
	return func(c *config) {
		c.params.Persistence = p
	}
}

// WithParams replaces all four fractal knobs at once.
func WithParams(p Params) Option {
	return func(c *config) {
		c.params = p
	}
}
