// SPDX-License-Identifier: MIT

package perlin

import "github.com/katalvlaran/lvnoise/interp"

// Noise3D is a three-dimensional Perlin noise generator.
type Noise3D struct {
	field
}

// New3D builds a 3D generator. It fails with ErrInvalidParameter when the
// resolved parameters do not validate.
func New3D(opts ...Option) (*Noise3D, error) {
	f, err := newField(opts)
	if err != nil {
		return nil, err
	}
	return &Noise3D{field: f}, nil
}

// Noise returns the fractal sum at (x, y, z), nominally in [-1, 1].
func (n *Noise3D) Noise(x, y, z float64) float64 {
	scale := n.params.Scale
	return n.fractal(func(freq float64) float64 {
		return n.Octave(x*freq*scale, y*freq*scale, z*freq*scale)
	})
}

// Octave evaluates one octave at (x, y, z), with no scaling applied.
//
// Corner naming: hXYZ, where each digit is 0 for the lower and 1 for the
// upper corner on that axis.
func (n *Noise3D) Octave(x, y, z float64) float64 {
	x0, x1, xf := lattice(x)
	y0, y1, yf := lattice(y)
	z0, z1, zf := lattice(z)
	u, v, w := fade(xf), fade(yf), fade(zf)

	p := &n.table
	a, b := int(p[x0]), int(p[x1])
	a0, a1 := int(p[a+y0]), int(p[a+y1])
	b0, b1 := int(p[b+y0]), int(p[b+y1])

	h000 := p[p[a0+z0]]
	h001 := p[p[a0+z1]]
	h010 := p[p[a1+z0]]
	h011 := p[p[a1+z1]]
	h100 := p[p[b0+z0]]
	h101 := p[p[b0+z1]]
	h110 := p[p[b1+z0]]
	h111 := p[p[b1+z1]]

	n000 := grad3(h000, xf, yf, zf)
	n001 := grad3(h001, xf, yf, zf-1)
	n010 := grad3(h010, xf, yf-1, zf)
	n011 := grad3(h011, xf, yf-1, zf-1)
	n100 := grad3(h100, xf-1, yf, zf)
	n101 := grad3(h101, xf-1, yf, zf-1)
	n110 := grad3(h110, xf-1, yf-1, zf)
	n111 := grad3(h111, xf-1, yf-1, zf-1)

	// x
	n00 := interp.Lerp(n000, n100, u)
	n01 := interp.Lerp(n001, n101, u)
	n10 := interp.Lerp(n010, n110, u)
	n11 := interp.Lerp(n011, n111, u)
	// y
	n0 := interp.Lerp(n00, n10, v)
	n1 := interp.Lerp(n01, n11, v)
	// z
	return interp.Lerp(n0, n1, w)
}
