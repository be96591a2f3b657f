// SPDX-License-Identifier: MIT

package perlin

import (
	"math"

	"github.com/katalvlaran/lvnoise/rng"
)

const (
	// latticeSize is the period of the lattice hash; coordinates wrap every 256 cells.
	latticeSize = 256
	latticeMask = latticeSize - 1

	// TableSize is the length of a permutation table: two copies of 0..255.
	TableSize = 2 * latticeSize
)

// Table is a seeded permutation of 0..255 followed by an exact copy of
// itself. The second half lets hash chains index p[h+y] and p[h+z] with
// h, y, z ≤ 255 without any modulus.
type Table [TableSize]uint8

// NewTable shuffles 0..255 with src and duplicates the result.
//
// Algorithm (Fisher–Yates, descending):
//  1. t[i] = i for i in 0..255.
//  2. For i = 255 down to 1: j = floor(src.Float64()·(i+1)); swap t[i], t[j].
//  3. t[256+i] = t[i].
//
// Exactly 255 draws are consumed, in that order; changing the order changes
// every noise value derived from the table.
//
// Complexity: O(256) time, no allocations.
func NewTable(src rng.Source) Table {
	var t Table
	for i := 0; i < latticeSize; i++ {
		t[i] = uint8(i)
	}
	for i := latticeMask; i > 0; i-- {
		j := int(math.Floor(src.Float64() * float64(i+1)))
		if j > i {
			// a Source returning 1.0 would otherwise break the permutation
			j = i
		}
		t[i], t[j] = t[j], t[i]
	}
	copy(t[latticeSize:], t[:latticeSize])
	return t
}

// IsPermutation reports whether the first half holds every value 0..255
// exactly once and the second half mirrors it.
func (t *Table) IsPermutation() bool {
	var seen [latticeSize]bool
	for i := 0; i < latticeSize; i++ {
		v := t[i]
		if seen[v] || t[latticeSize+i] != v {
			return false
		}
		seen[v] = true
	}
	return true
}
