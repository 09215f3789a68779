// SPDX-License-Identifier: MIT

// Package sparsegrid: domain types for sparse→dense construction.
package sparsegrid

// Index is a D-dimensional integer coordinate. All indices passed to one
// builder call must share the same length D ≥ 1; D determines the rank of
// the output's leading (grid) axes. Coordinates may be negative — the
// builder translates them into array positions.
type Index []int

// Clone returns an independent copy of the index.
func (ix Index) Clone() Index {
	out := make(Index, len(ix))
	copy(out, ix)

	return out
}

// Entry assigns a cell value to one index. Cell is the flat row-major
// content of the output's trailing (cell) dimensions: a single element for
// scalar grids, three for RGB images, and so on. All entries in one call
// must have equal cell sizes.
type Entry[T comparable] struct {
	At   Index
	Cell []T
}

// RGB is a packed red/green/blue triple used by the colormap image builder.
type RGB [3]uint8
