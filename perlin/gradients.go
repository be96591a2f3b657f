// SPDX-License-Identifier: MIT

package perlin

import "math"

// unit is the component of a unit-length diagonal, 1/√2.
var unit = 1 / math.Sqrt(2)

// gradients2D: the four diagonals then the four axis directions.
// Indexed with h & 7.
var gradients2D = [8][2]float64{
	{unit, unit},
	{-unit, unit},
	{unit, -unit},
	{-unit, -unit},
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}

// gradients3D: the twelve cube-edge midpoints, normalised.
// Indexed with h & 11, which reaches entries 0–3 and 8–11 only.
var gradients3D = [12][3]float64{
	{unit, unit, 0},
	{unit, -unit, 0},
	{-unit, unit, 0},
	{-unit, -unit, 0},
	{unit, 0, unit},
	{unit, 0, -unit},
	{-unit, 0, unit},
	{-unit, 0, -unit},
	{0, unit, unit},
	{0, unit, -unit},
	{0, -unit, unit},
	{0, -unit, -unit},
}

// grad1 returns +d for even hashes and −d for odd ones.
func grad1(h uint8, d float64) float64 {
	if h&1 == 0 {
		return d
	}
	return -d
}

func grad2(h uint8, dx, dy float64) float64 {
	g := &gradients2D[h&7]
	return dx*g[0] + dy*g[1]
}

func grad3(h uint8, dx, dy, dz float64) float64 {
	g := &gradients3D[h&11]
	return dx*g[0] + dy*g[1] + dz*g[2]
}
