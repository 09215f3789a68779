// SPDX-License-Identifier: MIT

// Package ndarray: Array is a concrete, row-major implementation of a dense
// N-dimensional container, storing elements in a flat slice for performance
// and cache friendliness.
package ndarray

import (
	"fmt"
	"strings"
)

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, index []int, err error) error {
	return fmt.Errorf("Array.%s%v: %w", method, index, err)
}

// Array is a row-major N-dimensional container of comparable elements.
// shape holds the per-axis extents, stride the row-major element strides,
// and data holds shape.Size() elements in row-major order. A rank-0 Array
// holds exactly one element.
type Array[T comparable] struct {
	shape  Shape
	stride []int
	data   []T
}

// New creates an Array of the given shape with zero-valued elements.
// Stage 1 (Validate): every extent must be non-negative (zero-size arrays
// are legal and participate in bounding-box searches).
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Array or ErrBadShape.
// Complexity: O(size) time and memory.
func New[T comparable](shape Shape) (*Array[T], error) {
	for _, dim := range shape {
		if dim < 0 {
			return nil, ErrBadShape
		}
	}

	return &Array[T]{
		shape:  shape.Clone(),
		stride: shape.Strides(),
		data:   make([]T, shape.Size()),
	}, nil
}

// Full creates an Array of the given shape with every element set to fill.
// Complexity: O(size) time and memory.
func Full[T comparable](shape Shape, fill T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fill
	}

	return a, nil
}

// FullTiled creates an Array of the given shape with the cell replicated
// across it in row-major order. The cell must be nonempty and its length
// must divide the total element count (it covers a contiguous trailing
// block, e.g. an RGB triple tiled over an image).
// Returns ErrShapeMismatch when the cell does not tile the shape evenly.
// Complexity: O(size) time and memory.
func FullTiled[T comparable](shape Shape, cell []T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(cell) == 0 || (len(a.data) > 0 && len(a.data)%len(cell) != 0) {
		return nil, ErrShapeMismatch
	}
	a.fillTiled(cell)

	return a, nil
}

// Scalar creates a rank-0 Array holding the single value v.
// Complexity: O(1).
func Scalar[T comparable](v T) *Array[T] {
	return &Array[T]{data: []T{v}}
}

// FromSlice creates an Array of the given shape from row-major data.
// The input slice is deep-copied to keep the Array independent.
// Returns ErrShapeMismatch when len(data) != shape.Size().
// Complexity: O(size) time and memory.
func FromSlice[T comparable](shape Shape, data []T) (*Array[T], error) {
	a, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, ErrShapeMismatch
	}
	copy(a.data, data)

	return a, nil
}

// From2D creates a rank-2 Array from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrBadShape if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func From2D[T comparable](rows [][]T) (*Array[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	a, _ := New[T](Shape{h, w})
	for y, row := range rows {
		copy(a.data[y*w:(y+1)*w], row)
	}

	return a, nil
}

// Rank returns the number of axes.
// Complexity: O(1).
func (a *Array[T]) Rank() int { return len(a.shape) }

// Shape returns an independent copy of the per-axis extents.
// Complexity: O(rank).
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// Len returns the total number of elements.
// Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Data exposes the flat row-major backing slice. Mutating it mutates the
// Array; treat it as read-only unless the Array is caller-owned.
// Complexity: O(1).
func (a *Array[T]) Data() []T { return a.data }

// flatIndex computes the flat offset for a full coordinate tuple or returns
// ErrOutOfRange/ErrRankMismatch.
// Stage 1 (Validate): len(index) == rank and 0 ≤ index[i] < shape[i].
// Stage 2 (Execute): accumulate stride-weighted offset.
// Complexity: O(rank).
func (a *Array[T]) flatIndex(index []int) (int, error) {
	if len(index) != len(a.shape) {
		return 0, ErrRankMismatch
	}
	flat := 0
	for ax, i := range index {
		if i < 0 || i >= a.shape[ax] {
			return 0, ErrOutOfRange
		}
		flat += i * a.stride[ax]
	}

	return flat, nil
}

// At retrieves the element at the given coordinates (one per axis; none for
// a rank-0 Array).
// Returns ErrRankMismatch or ErrOutOfRange on invalid coordinates.
// Complexity: O(rank).
func (a *Array[T]) At(index ...int) (T, error) {
	flat, err := a.flatIndex(index)
	if err != nil {
		var zero T
		return zero, arrayErrorf("At", index, err)
	}

	return a.data[flat], nil
}

// Set assigns v at the given coordinates.
// Returns ErrRankMismatch or ErrOutOfRange on invalid coordinates.
// Complexity: O(rank).
func (a *Array[T]) Set(v T, index ...int) error {
	flat, err := a.flatIndex(index)
	if err != nil {
		return arrayErrorf("Set", index, err)
	}
	a.data[flat] = v

	return nil
}

// Clone returns a deep copy of the Array.
// Complexity: O(size) time and memory.
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{
		shape:  a.shape.Clone(),
		stride: append([]int(nil), a.stride...),
		data:   make([]T, len(a.data)),
	}
	copy(out.data, a.data)

	return out
}

// Equal reports whether two arrays have identical shape and elements.
// Complexity: O(size).
func (a *Array[T]) Equal(b *Array[T]) bool {
	if b == nil || !a.shape.Equal(b.shape) {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// Slice returns a copy of the half-open region [lo[i], hi[i]) per axis.
// Stage 1 (Validate): len(lo) == len(hi) == rank, 0 ≤ lo ≤ hi ≤ extent.
// Stage 2 (Execute): gather contiguous last-axis runs into a fresh Array.
// Complexity: O(region size).
func (a *Array[T]) Slice(lo, hi []int) (*Array[T], error) {
	if len(lo) != len(a.shape) || len(hi) != len(a.shape) {
		return nil, ErrRankMismatch
	}
	outShape := make(Shape, len(a.shape))
	for ax := range a.shape {
		if lo[ax] < 0 || hi[ax] < lo[ax] || hi[ax] > a.shape[ax] {
			return nil, arrayErrorf("Slice", lo, ErrOutOfRange)
		}
		outShape[ax] = hi[ax] - lo[ax]
	}
	out, err := New[T](outShape)
	if err != nil {
		return nil, err
	}
	if out.Len() == 0 {
		return out, nil
	}
	if out.Rank() == 0 {
		out.data[0] = a.data[0]
		return out, nil
	}

	// Walk all leading coordinates; copy contiguous runs along the last axis.
	rank := out.Rank()
	rowLen := outShape[rank-1]
	odo := make([]int, rank-1)
	for {
		srcOff := lo[rank-1]
		dstOff := 0
		for ax := 0; ax < rank-1; ax++ {
			srcOff += (lo[ax] + odo[ax]) * a.stride[ax]
			dstOff += odo[ax] * out.stride[ax]
		}
		copy(out.data[dstOff:dstOff+rowLen], a.data[srcOff:srcOff+rowLen])
		if !advance(odo, outShape[:rank-1]) {
			break
		}
	}

	return out, nil
}

// WriteAt copies src into a at the given origin, mutating a in place.
// It is the raw in-place overlay primitive: src must have the same rank as
// a, and the region [at[i], at[i]+src.extent[i]) must lie fully inside a on
// every axis. All bounds are validated before the first element is written.
// Returns ErrNilArray, ErrRankMismatch or ErrOutOfRange.
// Complexity: O(src size).
func (a *Array[T]) WriteAt(at []int, src *Array[T]) error {
	if src == nil {
		return ErrNilArray
	}
	if len(at) != len(a.shape) || src.Rank() != a.Rank() {
		return ErrRankMismatch
	}
	for ax := range a.shape {
		if at[ax] < 0 || at[ax]+src.shape[ax] > a.shape[ax] {
			return arrayErrorf("WriteAt", at, ErrOutOfRange)
		}
	}
	a.blit(at, src)

	return nil
}

// blit copies src into a at origin at. Bounds must be pre-validated.
// Complexity: O(src size).
func (a *Array[T]) blit(at []int, src *Array[T]) {
	if src.Len() == 0 {
		return
	}
	rank := src.Rank()
	if rank == 0 {
		a.data[0] = src.data[0]
		return
	}
	rowLen := src.shape[rank-1]
	odo := make([]int, rank-1)
	for {
		dstOff := at[rank-1]
		srcOff := 0
		for ax := 0; ax < rank-1; ax++ {
			dstOff += (at[ax] + odo[ax]) * a.stride[ax]
			srcOff += odo[ax] * src.stride[ax]
		}
		copy(a.data[dstOff:dstOff+rowLen], src.data[srcOff:srcOff+rowLen])
		if !advance(odo, src.shape[:rank-1]) {
			break
		}
	}
}

// fillTiled replicates a nonempty cell across the whole backing slice.
// len(cell) must divide len(data); cell length 1 degenerates to Full.
// Complexity: O(size).
func (a *Array[T]) fillTiled(cell []T) {
	if len(a.data) == 0 {
		return
	}
	if len(cell) == 1 {
		for i := range a.data {
			a.data[i] = cell[0]
		}
		return
	}
	for off := 0; off < len(a.data); off += len(cell) {
		copy(a.data[off:off+len(cell)], cell)
	}
}

// advance increments a row-major odometer over the given extents.
// It returns false once every coordinate has been visited.
// Complexity: O(rank) amortized O(1).
func advance(odo []int, extents Shape) bool {
	for ax := len(odo) - 1; ax >= 0; ax-- {
		odo[ax]++
		if odo[ax] < extents[ax] {
			return true
		}
		odo[ax] = 0
	}

	return false
}

// String implements fmt.Stringer for easy debugging. Rank-0 and rank-1
// arrays print as a single bracketed row, rank-2 arrays one row per line;
// higher ranks print a shape summary with the flat data.
// Complexity: O(size) for string construction.
func (a *Array[T]) String() string {
	var b strings.Builder
	switch a.Rank() {
	case 0, 1:
		writeRow(&b, a.data)
	case 2:
		w := a.shape[1]
		for y := 0; y < a.shape[0]; y++ {
			writeRow(&b, a.data[y*w:(y+1)*w])
			b.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&b, "ndarray.Array%v", []int(a.shape))
		writeRow(&b, a.data)
	}

	return b.String()
}

// writeRow appends one bracketed, comma-separated row of values.
func writeRow[T comparable](b *strings.Builder, row []T) {
	b.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%v", v)
	}
	b.WriteByte(']')
}
