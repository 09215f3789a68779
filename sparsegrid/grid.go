// SPDX-License-Identifier: MIT

package sparsegrid

import (
	"fmt"

	"github.com/katalvlaran/ndpack/ndarray"
)

// FromIndices materializes a dense array from an ordered list of indices,
// assigning foreground at every listed coordinate and the background value
// everywhere else. It is the iterable form of FromEntries: every index
// receives the same scalar cell.
//
// Complexity: O(len(indices) × D + output size).
func FromIndices[T comparable](indices []Index, foreground T, opts ...Option[T]) (*ndarray.Array[T], error) {
	entries := make([]Entry[T], len(indices))
	for i, ix := range indices {
		entries[i] = Entry[T]{At: ix, Cell: []T{foreground}}
	}

	return FromEntries(entries, opts...)
}

// FromEntries materializes a dense array from ordered index→cell entries.
// Stage 1 (Validate): nonempty input; every index shares one rank D ≥ 1;
// every cell shares one size; options broadcast cleanly onto D axes.
// Stage 2 (Resolve): derive per-axis bounds from the indices unless
// overridden, apply padding, and verify every translated coordinate lands
// inside the output (explicit bounds may exclude indices).
// Stage 3 (Build): allocate the output filled with background and write
// the cells in entry order — duplicate indices are last-write-wins, which
// is documented behavior, not an error.
//
// The output shape is, per axis, max-min+2*pad+1 on the leading D axes,
// followed by the cell dimensions (declared via WithCellShape or inferred:
// cell size 1 → none, size L → one axis of extent L).
//
// Errors: ErrNoIndices, ErrIndexRank, ErrCellSize, ErrBadBounds,
// ErrOutOfBounds.
//
// Complexity: O(len(entries) × D + output size) time.
func FromEntries[T comparable](entries []Entry[T], opts ...Option[T]) (*ndarray.Array[T], error) {
	if len(entries) == 0 {
		return nil, ErrNoIndices
	}
	o := gatherOptions(opts...)

	d := len(entries[0].At)
	if d == 0 {
		return nil, ErrIndexRank
	}
	cellLen := len(entries[0].Cell)
	if cellLen == 0 {
		return nil, ErrCellSize
	}
	for _, e := range entries {
		if len(e.At) != d {
			return nil, fmt.Errorf("index %v: %w", []int(e.At), ErrIndexRank)
		}
		if len(e.Cell) != cellLen {
			return nil, fmt.Errorf("index %v: %w", []int(e.At), ErrCellSize)
		}
	}

	cellShape, background, err := resolveCell(o, cellLen)
	if err != nil {
		return nil, err
	}
	iMin, iMax, pad, explicit, err := resolveBounds(entries, d, o)
	if err != nil {
		return nil, err
	}

	lead := make(ndarray.Shape, d)
	offset := make([]int, d)
	for ax := 0; ax < d; ax++ {
		lead[ax] = iMax[ax] - iMin[ax] + 2*pad[ax] + 1
		offset[ax] = pad[ax] - iMin[ax]
	}
	// With derived bounds every index is inside by construction; explicit
	// bounds may exclude indices and must fail before allocation.
	if explicit {
		for _, e := range entries {
			for ax, i := range e.At {
				if t := i + offset[ax]; t < 0 || t >= lead[ax] {
					return nil, fmt.Errorf("index %v: %w", []int(e.At), ErrOutOfBounds)
				}
			}
		}
	}

	out, err := ndarray.FullTiled(append(lead.Clone(), cellShape...), background)
	if err != nil {
		return nil, err
	}
	strides := lead.Strides()
	data := out.Data()
	for _, e := range entries {
		flat := 0
		for ax, i := range e.At {
			flat += (i + offset[ax]) * strides[ax]
		}
		copy(data[flat*cellLen:(flat+1)*cellLen], e.Cell)
	}

	return out, nil
}

// resolveCell reconciles the declared/inferred cell shape with the entry
// cell size and normalizes the background to a full cell.
func resolveCell[T comparable](o options[T], cellLen int) (ndarray.Shape, []T, error) {
	var cellShape ndarray.Shape
	switch {
	case o.cellSet:
		if o.cellShape.Size() != cellLen {
			return nil, nil, ErrCellSize
		}
		cellShape = o.cellShape
	case cellLen > 1:
		cellShape = ndarray.Shape{cellLen}
	}

	background := o.background
	switch len(background) {
	case 0:
		background = make([]T, 1) // zero value of T
	case 1, cellLen:
	default:
		return nil, nil, ErrCellSize
	}

	return cellShape, background, nil
}

// resolveBounds derives per-axis min/max from the indices, applies explicit
// overrides and padding, and reports whether any bound was explicit.
func resolveBounds[T comparable](entries []Entry[T], d int, o options[T]) (iMin, iMax, pad []int, explicit bool, err error) {
	iMin = make([]int, d)
	iMax = make([]int, d)
	copy(iMin, entries[0].At)
	copy(iMax, entries[0].At)
	for _, e := range entries[1:] {
		for ax, i := range e.At {
			if i < iMin[ax] {
				iMin[ax] = i
			}
			if i > iMax[ax] {
				iMax[ax] = i
			}
		}
	}
	var ok bool
	if o.min != nil {
		explicit = true
		if iMin, ok = broadcastAxes(o.min, d, 0); !ok {
			return nil, nil, nil, false, ErrIndexRank
		}
	}
	if o.max != nil {
		explicit = true
		if iMax, ok = broadcastAxes(o.max, d, 0); !ok {
			return nil, nil, nil, false, ErrIndexRank
		}
	}
	for ax := 0; ax < d; ax++ {
		if iMin[ax] > iMax[ax] {
			return nil, nil, nil, false, ErrBadBounds
		}
	}
	if pad, ok = broadcastAxes(o.pad, d, DefaultPad); !ok {
		return nil, nil, nil, false, ErrIndexRank
	}

	return iMin, iMax, pad, explicit, nil
}
