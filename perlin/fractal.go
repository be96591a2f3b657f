// SPDX-License-Identifier: MIT

package perlin

// fractal sums Params.Octaves layers of a single-octave kernel.
//
// sample receives the octave frequency (1, L, L², …) and must evaluate the
// kernel at coords·frequency·Scale. Per octave:
//
//	value  += sample(freq) · amp
//	maxAmp += amp
//	amp    *= Persistence
//	freq   *= Lacunarity
//
// The result is value / maxAmp, so the output range of the kernel is kept
// whatever the octave count. Octaves ≥ 1 is guaranteed by validation, hence
// maxAmp ≥ 1.
//
// Complexity: O(Octaves) kernel calls.
func (f *field) fractal(sample func(freq float64) float64) float64 {
	var value, maxAmp float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.params.Octaves; i++ {
		value += sample(freq) * amp
		maxAmp += amp
		amp *= f.params.Persistence
		freq *= f.params.Lacunarity
	}
	return value / maxAmp
}
