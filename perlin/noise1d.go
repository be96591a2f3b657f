// SPDX-License-Identifier: MIT

package perlin

import "github.com/katalvlaran/lvnoise/interp"

// Noise1D is a one-dimensional Perlin noise generator.
type Noise1D struct {
	field
}

// New1D builds a 1D generator. It fails with ErrInvalidParameter when the
// resolved parameters do not validate.
func New1D(opts ...Option) (*Noise1D, error) {
	f, err := newField(opts)
	if err != nil {
		return nil, err
	}
	return &Noise1D{field: f}, nil
}

// Noise returns the fractal sum at x, nominally in [-1, 1].
func (n *Noise1D) Noise(x float64) float64 {
	scale := n.params.Scale
	return n.fractal(func(freq float64) float64 {
		return n.Octave(x * freq * scale)
	})
}

// Octave evaluates one octave at x, with no scaling applied.
//
// Corner hashes are single lookups p[x0] and p[x1]; the parity of each
// picks the gradient +d or −d.
func (n *Noise1D) Octave(x float64) float64 {
	x0, x1, xf := lattice(x)
	u := fade(xf)

	p := &n.table
	h0, h1 := p[x0], p[x1]

	return interp.Lerp(grad1(h0, xf), grad1(h1, xf-1), u)
}
