// SPDX-License-Identifier: MIT

// Package perlin generates classic Perlin gradient noise in one, two and
// three dimensions, with fractal (multi-octave) summation.
//
// 🚀 Pipeline
//
//	seed ─► rng.LCG ─► permutation table (512 entries)
//	     ─► lattice hash ─► gradient · offset ─► quintic fade ─► lerp
//	     ─► octave sum ─► scalar in [-1, 1]
//
// Every generator owns one permutation table, shuffled once at construction
// by a seeded Fisher–Yates pass (255 draws, i = 255 … 1). The table is never
// written again, so a generator is safe for any number of concurrent readers.
//
// ✨ Engines
//
//   - Noise1D — 2 lattice corners, gradient ±d chosen by hash parity.
//   - Noise2D — 4 corners, 8 gradient vectors (diagonals + axes), index h & 7.
//   - Noise3D — 8 corners, 12 cube-edge gradients, index h & 11.
//
// Interpolation always runs along x, then y, then z.
//
// ⚙️ Usage
//
//	n, err := perlin.New3D(
//		perlin.WithSeed(42),
//		perlin.WithOctaves(6),
//		perlin.WithPersistence(0.45),
//	)
//	if err != nil {
//		// errors.Is(err, perlin.ErrInvalidParameter)
//	}
//	v := n.Noise(x, y, z)
//
// Defaults: scale 0.01, octaves 4, lacunarity 2, persistence 0.5, seed drawn
// from [0, 2^31−1] when WithSeed is not given.
//
// Complexity: Noise is O(octaves); Octave is O(1) and allocation-free.
package perlin
