package interp

import "math"

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Coserp interpolates between a and b along a half cosine wave, which eases
// in and out of both endpoints.
func Coserp(a, b, t float64) float64 {
	t2 := (1 - math.Cos(t*math.Pi)) / 2
	return a*(1-t2) + b*t2
}

// Cuberp interpolates between v1 (t=0) and v2 (t=1) using the neighbouring
// samples v0 and v3 to shape the curve.
//
// Coefficients:
//
//	p = v3 − v2 − (v0 − v1)
//	q = v0 − v1 − p
//	r = v2 − v0
//	s = v1
//	result = p·t³ + q·t² + r·t + s
func Cuberp(v0, v1, v2, v3, t float64) float64 {
	p := v3 - v2 - (v0 - v1)
	q := v0 - v1 - p
	r := v2 - v0
	s := v1
	return p*t*t*t + q*t*t + r*t + s
}

// Smoothstep maps w onto [0,1]: 0 for w ≤ 0, 1 for w ≥ 1, w²(3 − 2w) between.
func Smoothstep(w float64) float64 {
	if w <= 0 {
		return 0
	}
	if w >= 1 {
		return 1
	}
	return w * w * (3 - 2*w)
}
