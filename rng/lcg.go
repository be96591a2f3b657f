package rng

// LCG constants (Numerical Recipes "quick and dirty" generator).
const (
	lcgMultiplier int64 = 9301
	lcgIncrement  int64 = 49297
	lcgModulus    int64 = 233280
)

// Source yields a deterministic stream of draws in [0,1).
type Source interface {
	Float64() float64
}

// LCG is the linear congruential Source used to build permutation tables.
// The zero value is a valid generator seeded with 0.
type LCG struct {
	state int64
}

// New returns an LCG positioned at the start of the stream for seed.
//
// Complexity: O(1).
func New(seed int64) *LCG {
	return &LCG{state: reduce(seed)}
}

// Float64 advances the state and returns state/233280, a value in [0,1).
//
// Complexity: O(1).
func (g *LCG) Float64() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / float64(lcgModulus)
}

// reduce maps any int64 onto [0, lcgModulus).
func reduce(seed int64) int64 {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return s
}
