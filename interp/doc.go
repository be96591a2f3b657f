// Package interp provides the scalar interpolation primitives used by the
// noise engines and exposed for standalone use.
//
//	Lerp(a, b, t)            — linear:  a + t·(b−a)
//	Coserp(a, b, t)          — cosine:  t₂ = (1 − cos(t·π)) / 2, then a·(1−t₂) + b·t₂
//	Cuberp(v0, v1, v2, v3, t) — cubic through four samples, blending v1 → v2
//	Smoothstep(w)            — clamped Hermite step w²(3 − 2w)
//
// All functions are pure, allocation-free and O(1). None of them clamp t;
// values outside [0,1] extrapolate (Smoothstep excepted).
package interp
