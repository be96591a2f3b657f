// Package lvnoise is a small toolbox for deterministic, seedable gradient
// noise — classic Perlin noise in one, two and three dimensions with fractal
// (multi-octave) summation.
//
// 🚀 What is in the box?
//
//	• perlin/ — permutation tables, the 1D/2D/3D engines and the octave compositor
//	• rng/    — the fixed seeded random source the permutation tables are built from
//	• interp/ — interpolation primitives (Lerp, Coserp, Cuberp, Smoothstep)
//	• cmd/lvnoise — evaluate a point or sample a grid from the command line
//
// ✨ Guarantees:
//
//   - Same seed and parameters ⇒ same field, on every run and every platform
//     (within floating-point tolerance).
//   - Generators are immutable after construction and safe for concurrent reads.
//   - Invalid parameters are rejected at construction with perlin.ErrInvalidParameter,
//     never surfaced later as NaN.
//
// Quick start:
//
//	n, err := perlin.New2D(perlin.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, perlin.ErrInvalidParameter)
//	}
//	v := n.Noise(0.5, 0.5) // ≈ -0.015130
//
//	go get github.com/katalvlaran/lvnoise/perlin
package lvnoise
