// Package rng is the seeded random source behind every permutation table.
//
// The generator is fixed, because a noise field is only reproducible when the
// draws that shuffle its permutation table are reproducible:
//
//	state ← (state·9301 + 49297) mod 233280
//	draw  = state / 233280            (state advanced before each draw)
//
// Seeds are reduced modulo 233280 with a non-negative remainder, so every
// int64 is a valid seed and seeds congruent modulo 233280 yield identical
// streams. For seeds in [0, 2^53/9301) the stream matches the reference
// generator draw for draw.
//
// Concurrency:
//   - An *LCG is NOT goroutine-safe. Each permutation table build owns its own.
//   - RandomSeed is safe for concurrent use.
package rng
