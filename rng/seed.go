package rng

import "math/rand"

// MaxSeed is the upper bound (inclusive) of seeds chosen by RandomSeed.
const MaxSeed int64 = 1<<31 - 1

// RandomSeed picks a seed uniformly from [0, MaxSeed]. It is used when a
// generator is constructed without an explicit seed; record the result
// (e.g. via Seed() on the generator) to reproduce the field later.
func RandomSeed() int64 {
	return rand.Int63n(MaxSeed + 1)
}
