// SPDX-License-Identifier: MIT
// Package: lvnoise/perlin
//
// errors.go — the sentinel error and parameter validation.
//
// Error policy:
//   • One sentinel, ErrInvalidParameter, covers every rejected knob.
//   • Validation wraps it with the field name and value via %w; callers
//     branch with errors.Is, never on message text.
//   • Queries (Noise/Octave) never return errors and never panic.

package perlin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter indicates a generator parameter outside its domain:
// octaves < 1, or a non-finite / out-of-range scale, lacunarity or persistence.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* fix the option */ }.
var ErrInvalidParameter = errors.New("perlin: invalid parameter")

// Validate reports the first violated constraint, in field order
// Octaves → Scale → Lacunarity → Persistence.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves=%d, must be >= 1", ErrInvalidParameter, p.Octaves)
	}
	if !finite(p.Scale) || p.Scale <= 0 {
		return fmt.Errorf("%w: scale=%v, must be finite and > 0", ErrInvalidParameter, p.Scale)
	}
	if !finite(p.Lacunarity) || p.Lacunarity < 1 {
		return fmt.Errorf("%w: lacunarity=%v, must be finite and >= 1", ErrInvalidParameter, p.Lacunarity)
	}
	if !finite(p.Persistence) || p.Persistence <= 0 || p.Persistence > 1 {
		return fmt.Errorf("%w: persistence=%v, must be in (0, 1]", ErrInvalidParameter, p.Persistence)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
