// SPDX-License-Identifier: MIT

package assemble

import (
	"fmt"

	"github.com/katalvlaran/ndpack/ndarray"
)

// Arrays packs the input arrays into one grid-aligned output array.
// Stage 1 (Validate): nonempty input, grid shape resolved via
// ndarray.FitShape against the array count, equal ranks, identical tail
// dimensions, options broadcast onto the grid, every alignment code
// recognized — all before any allocation.
// Stage 2 (Layout): assign arrays to grid cells in row-major order (cells
// beyond the array count are zero-extent placeholders); per axis, each
// cell's length is the maximum extent of the arrays sharing that axis
// coordinate; cell origins are cumulative sums of lengths plus spacing;
// round-to-even grows the last cell by one on axes with odd total extent.
// Stage 3 (Compose): allocate the output filled with background and write
// every input array at its aligned position inside its cell.
//
// The output shape is the packed leading extents followed by the shared
// tail dimensions. Written regions never overlap and every input appears
// fully and unclipped.
//
// Errors: ErrNoArrays, ErrNilArray, ErrRankMismatch, ErrTailMismatch,
// ErrOptionShape; ndarray.ErrBadShape propagated from shape resolution and
// ndarray.ErrBadAlign for unrecognized alignment codes.
//
// Complexity: O(len(arrays) × gridRank + grid cells + output size) time,
// O(output size) memory.
func Arrays[T comparable](arrays []*ndarray.Array[T], grid ndarray.Shape, opts ...Option[T]) (*ndarray.Array[T], error) {
	num := len(arrays)
	if num == 0 {
		return nil, ErrNoArrays
	}
	for i, a := range arrays {
		if a == nil {
			return nil, fmt.Errorf("array %d: %w", i, ErrNilArray)
		}
	}
	fit, err := ndarray.FitShape(grid, num)
	if err != nil {
		return nil, fmt.Errorf("resolve grid: %w", err)
	}
	gridRank := fit.Rank()

	rank := arrays[0].Rank()
	if rank < gridRank {
		return nil, ErrRankMismatch
	}
	tail := arrays[0].Shape()[gridRank:]
	for i, a := range arrays {
		if a.Rank() != rank {
			return nil, fmt.Errorf("array %d: %w", i, ErrRankMismatch)
		}
		if !tail.Equal(a.Shape()[gridRank:]) {
			return nil, fmt.Errorf("array %d: %w", i, ErrTailMismatch)
		}
	}

	o := gatherOptions(opts...)
	aligns, err := resolveAligns(o, num, gridRank)
	if err != nil {
		return nil, err
	}
	spacing, ok := broadcastInts(o.spacing, gridRank, DefaultSpacing)
	if !ok {
		return nil, ErrOptionShape
	}
	roundEven, ok := broadcastBools(o.roundEven, gridRank)
	if !ok {
		return nil, ErrOptionShape
	}
	background := o.background
	switch len(background) {
	case 0:
		background = make([]T, 1) // zero value of T
	case 1, tail.Size():
	default:
		return nil, ErrOptionShape
	}

	// Leading extents of every grid cell; placeholders beyond num stay zero.
	cells := fit.Size()
	heads := make([][]int, cells)
	for c := range heads {
		heads[c] = make([]int, gridRank)
	}
	for i, a := range arrays {
		copy(heads[i], a.Shape()[:gridRank])
	}

	lengths, origins, extents := layoutAxes(fit, heads, spacing, roundEven)

	out, err := ndarray.FullTiled(append(extents, tail...), background)
	if err != nil {
		return nil, err
	}
	gridStrides := fit.Strides()
	at := make([]int, rank) // trailing entries stay zero
	for i, a := range arrays {
		shape := a.Shape()
		for ax := 0; ax < gridRank; ax++ {
			coord := (i / gridStrides[ax]) % fit[ax]
			off, aerr := ndarray.AlignOffset(lengths[ax][coord], shape[ax], aligns[i][ax])
			if aerr != nil {
				return nil, aerr // unreachable: codes validated up front
			}
			at[ax] = origins[ax][coord] + off
		}
		if err = out.WriteAt(at, a); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// layoutAxes computes, per grid axis, the cell lengths (max extent over all
// cells sharing the axis coordinate), the cell origins (cumulative lengths
// plus spacing), and the total output extent after round-to-even.
// Complexity: O(grid cells × gridRank).
func layoutAxes(fit ndarray.Shape, heads [][]int, spacing []int, roundEven []bool) (lengths, origins [][]int, extents ndarray.Shape) {
	gridRank := fit.Rank()
	gridStrides := fit.Strides()
	lengths = make([][]int, gridRank)
	origins = make([][]int, gridRank)
	extents = make(ndarray.Shape, gridRank)
	for ax := 0; ax < gridRank; ax++ {
		k := fit[ax]
		lengths[ax] = make([]int, k)
		for c, head := range heads {
			coord := (c / gridStrides[ax]) % k
			if head[ax] > lengths[ax][coord] {
				lengths[ax][coord] = head[ax]
			}
		}
		total := spacing[ax] * (k - 1)
		for _, l := range lengths[ax] {
			total += l
		}
		if roundEven[ax] && total%2 == 1 {
			lengths[ax][k-1]++
			total++
		}
		origins[ax] = make([]int, k)
		for j := 1; j < k; j++ {
			origins[ax][j] = origins[ax][j-1] + lengths[ax][j-1] + spacing[ax]
		}
		extents[ax] = total
	}

	return lengths, origins, extents
}

// resolveAligns normalizes the alignment configuration into one code per
// array per grid axis, validating dimensions and codes.
func resolveAligns[T comparable](o options[T], num, gridRank int) ([][]ndarray.Align, error) {
	if o.aligns == nil {
		if !validAlign(o.align) {
			return nil, ndarray.ErrBadAlign
		}
		row := make([]ndarray.Align, gridRank)
		for ax := range row {
			row[ax] = o.align
		}
		aligns := make([][]ndarray.Align, num)
		for i := range aligns {
			aligns[i] = row
		}
		return aligns, nil
	}

	if len(o.aligns) != num {
		return nil, ErrOptionShape
	}
	for i, row := range o.aligns {
		if len(row) != gridRank {
			return nil, fmt.Errorf("array %d: %w", i, ErrOptionShape)
		}
		for ax, al := range row {
			if !validAlign(al) {
				return nil, fmt.Errorf("array %d axis %d: %w", i, ax, ndarray.ErrBadAlign)
			}
		}
	}

	return o.aligns, nil
}

// validAlign reports whether the alignment code is one of start/center/stop.
func validAlign(al ndarray.Align) bool {
	return al == ndarray.AlignStart || al == ndarray.AlignCenter || al == ndarray.AlignStop
}

// broadcastInts resolves a per-axis int option: nil → fallback replicated,
// one value → replicated, gridRank values → as is.
func broadcastInts(vals []int, d, fallback int) ([]int, bool) {
	out := make([]int, d)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = fallback
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case d:
		copy(out, vals)
	default:
		return nil, false
	}

	return out, true
}

// broadcastBools resolves a per-axis bool option with a false default.
func broadcastBools(vals []bool, d int) ([]bool, bool) {
	out := make([]bool, d)
	switch len(vals) {
	case 0:
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case d:
		copy(out, vals)
	default:
		return nil, false
	}

	return out, true
}
