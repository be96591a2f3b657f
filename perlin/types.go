// SPDX-License-Identifier: MIT

package perlin

// Documented defaults, applied by DefaultParams.
const (
	DefaultScale       = 0.01
	DefaultOctaves     = 4
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// Params holds the fractal-sum knobs shared by all engines.
//
// Fields:
//   - Scale       — spatial frequency multiplier applied to input coordinates (> 0).
//   - Octaves     — number of summed layers (≥ 1).
//   - Lacunarity  — frequency multiplier per octave (≥ 1).
//   - Persistence — amplitude multiplier per octave, in (0, 1].
//
// All values must be finite; see Validate.
type Params struct {
	Scale       float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
}

// DefaultParams returns Params{Scale: 0.01, Octaves: 4, Lacunarity: 2, Persistence: 0.5}.
func DefaultParams() Params {
	return Params{
		Scale:       DefaultScale,
		Octaves:     DefaultOctaves,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
	}
}

// Sampler1D is implemented by *Noise1D.
type Sampler1D interface {
	Noise(x float64) float64
}

// Sampler2D is implemented by *Noise2D.
type Sampler2D interface {
	Noise(x, y float64) float64
}

// Sampler3D is implemented by *Noise3D.
type Sampler3D interface {
	Noise(x, y, z float64) float64
}

var (
	_ Sampler1D = (*Noise1D)(nil)
	_ Sampler2D = (*Noise2D)(nil)
	_ Sampler3D = (*Noise3D)(nil)
)
