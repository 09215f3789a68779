// SPDX-License-Identifier: MIT

package ndarray

// Overlay writes src into dst in place, anchored at the coordinates in at
// under the per-axis alignment codes. It is the documented in-place
// variant: dst is a caller-owned buffer and is mutated; callers sharing dst
// across goroutines must serialize access themselves.
//
// at and aligns cover the leading len(at) axes. Per axis the source's
// leading edge lands at:
//
//	AlignStart:  at[ax]
//	AlignCenter: at[ax] - extent/2
//	AlignStop:   at[ax] - extent
//
// Axes beyond len(at) are not positioned and must have identical extents in
// src and dst. A nil aligns defaults every covered axis to AlignStart.
//
// Every bound is validated before the first element is written: on error
// dst is untouched.
//
// Errors:
//   - ErrNilArray when dst or src is nil.
//   - ErrRankMismatch when the ranks differ, len(at) exceeds the rank, or
//     len(aligns) differs from len(at).
//   - ErrShapeMismatch when an unpositioned trailing extent differs.
//   - ErrBadAlign for an unrecognized alignment code.
//   - ErrOutOfRange when the aligned region does not fit inside dst.
//
// Complexity: O(src size) time, O(rank) memory.
func Overlay[T comparable](dst, src *Array[T], at []int, aligns []Align) error {
	if dst == nil || src == nil {
		return ErrNilArray
	}
	if src.Rank() != dst.Rank() || len(at) > dst.Rank() {
		return ErrRankMismatch
	}
	if aligns == nil {
		aligns = make([]Align, len(at))
	}
	if len(aligns) != len(at) {
		return ErrRankMismatch
	}
	for ax := len(at); ax < dst.Rank(); ax++ {
		if src.shape[ax] != dst.shape[ax] {
			return ErrShapeMismatch
		}
	}

	origin := make([]int, dst.Rank())
	for ax := range at {
		extent := src.shape[ax]
		var lead int
		switch aligns[ax] {
		case AlignStart:
			lead = at[ax]
		case AlignCenter:
			lead = at[ax] - extent/2
		case AlignStop:
			lead = at[ax] - extent
		default:
			return ErrBadAlign
		}
		if lead < 0 || lead+extent > dst.shape[ax] {
			return arrayErrorf("Overlay", at, ErrOutOfRange)
		}
		origin[ax] = lead
	}
	dst.blit(origin, src)

	return nil
}
