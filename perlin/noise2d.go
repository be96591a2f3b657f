// SPDX-License-Identifier: MIT

package perlin

import "github.com/katalvlaran/lvnoise/interp"

// Noise2D is a two-dimensional Perlin noise generator.
type Noise2D struct {
	field
}

// New2D builds a 2D generator. It fails with ErrInvalidParameter when the
// resolved parameters do not validate.
func New2D(opts ...Option) (*Noise2D, error) {
	f, err := newField(opts)
	if err != nil {
		return nil, err
	}
	return &Noise2D{field: f}, nil
}

// Noise returns the fractal sum at (x, y), nominally in [-1, 1].
func (n *Noise2D) Noise(x, y float64) float64 {
	scale := n.params.Scale
	return n.fractal(func(freq float64) float64 {
		return n.Octave(x*freq*scale, y*freq*scale)
	})
}

// Octave evaluates one octave at (x, y), with no scaling applied.
func (n *Noise2D) Octave(x, y float64) float64 {
	x0, x1, xf := lattice(x)
	y0, y1, yf := lattice(y)
	u, v := fade(xf), fade(yf)

	// hash: x first, then y, then one more scramble per corner
	p := &n.table
	a, b := int(p[x0]), int(p[x1])
	h00 := p[p[a+y0]]
	h01 := p[p[a+y1]]
	h10 := p[p[b+y0]]
	h11 := p[p[b+y1]]

	n00 := grad2(h00, xf, yf)
	n01 := grad2(h01, xf, yf-1)
	n10 := grad2(h10, xf-1, yf)
	n11 := grad2(h11, xf-1, yf-1)

	nx0 := interp.Lerp(n00, n10, u)
	nx1 := interp.Lerp(n01, n11, u)
	return interp.Lerp(nx0, nx1, v)
}
