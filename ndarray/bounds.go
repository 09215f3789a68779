// SPDX-License-Identifier: MIT

package ndarray

// BoundingSlices returns, per axis, the half-open span from the first to
// the last position holding an element different from background, as if
// the array were reduced by logical OR over all other axes.
// Stage 1 (Scan): a single row-major pass updates the per-axis first/last
// positions of every non-background element.
// Stage 2 (Finalize): an axis with no such position yields the empty span
// [0,0); a rank-0 array is treated as rank-1 with a single element.
//
// Behavior highlights:
//   - Zero-size arrays (any extent 0) yield [0,0) on every axis without
//     any indexing error.
//   - Spans always lie within [0, extent) per axis.
//
// Errors:
//   - ErrNilArray when a is nil.
//
// Complexity: O(size × rank) time, O(rank) memory.
func BoundingSlices[T comparable](a *Array[T], background T) ([]Span, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if a.Rank() == 0 {
		if a.data[0] != background {
			return []Span{{Lo: 0, Hi: 1}}, nil
		}
		return []Span{{}}, nil
	}

	lo := make([]int, a.Rank())
	hi := make([]int, a.Rank())
	for ax := range lo {
		lo[ax] = a.shape[ax] // sentinel: nothing seen yet
		hi[ax] = -1
	}
	odo := make([]int, a.Rank())
	for _, v := range a.data {
		if v != background {
			for ax, i := range odo {
				if i < lo[ax] {
					lo[ax] = i
				}
				if i > hi[ax] {
					hi[ax] = i
				}
			}
		}
		advance(odo, a.shape)
	}

	spans := make([]Span, a.Rank())
	for ax := range spans {
		if hi[ax] < lo[ax] {
			continue // all background: keep the empty span [0,0)
		}
		spans[ax] = Span{Lo: lo[ax], Hi: hi[ax] + 1}
	}

	return spans, nil
}

// BoundingCrop returns the array cropped to the tight bounding box of
// elements that differ from ref, then re-padded by margin with ref as fill.
// ref may cover trailing axes (e.g. an RGB triple): the box is searched
// over the leading rank(a) - rank(ref) axes, and a cell counts as occupied
// when any of its elements differs from ref. A margin of zero (or nil)
// yields the tight crop; an array entirely equal to ref crops to zero
// extent along every searched axis before the margin is applied.
//
// Errors:
//   - ErrNilArray when a or ref is nil.
//   - ErrRankMismatch when ref outranks a or margin has the wrong length.
//   - ErrShapeMismatch when ref's shape differs from the trailing extents.
//   - ErrNegativePad for a negative margin width.
//
// Complexity: O(size) time, O(output size) memory.
func BoundingCrop[T comparable](a, ref *Array[T], margin []PadWidth) (*Array[T], error) {
	if a == nil || ref == nil {
		return nil, ErrNilArray
	}
	searched := a.Rank() - ref.Rank()
	if searched < 0 {
		return nil, ErrRankMismatch
	}
	if !ref.shape.Equal(a.shape[searched:]) {
		return nil, ErrShapeMismatch
	}
	if margin == nil {
		margin = make([]PadWidth, searched)
	}
	if len(margin) != searched {
		return nil, ErrRankMismatch
	}

	spans := cellSpans(a, ref, searched)
	lo := make([]int, a.Rank())
	hi := make([]int, a.Rank())
	for ax := 0; ax < searched; ax++ {
		lo[ax], hi[ax] = spans[ax].Lo, spans[ax].Hi
	}
	copy(hi[searched:], a.shape[searched:]) // trailing axes stay whole
	cropped, err := a.Slice(lo, hi)
	if err != nil {
		return nil, err
	}

	return Pad(cropped, margin, ref)
}

// cellSpans finds, per searched leading axis, the span of cells whose
// contents differ anywhere from ref. Cells are the contiguous trailing
// blocks of ref.Len() elements.
// Complexity: O(size) time.
func cellSpans[T comparable](a, ref *Array[T], searched int) []Span {
	lead := a.shape[:searched]
	lo := make([]int, searched)
	hi := make([]int, searched)
	for ax := range lo {
		lo[ax] = lead[ax]
		hi[ax] = -1
	}
	cellLen := ref.Len()
	if a.Len() > 0 && cellLen > 0 {
		odo := make([]int, searched)
		for off := 0; off < len(a.data); off += cellLen {
			if !equalRun(a.data[off:off+cellLen], ref.data) {
				for ax, i := range odo {
					if i < lo[ax] {
						lo[ax] = i
					}
					if i > hi[ax] {
						hi[ax] = i
					}
				}
			}
			advance(odo, lead)
		}
	}

	spans := make([]Span, searched)
	for ax := range spans {
		if hi[ax] >= lo[ax] {
			spans[ax] = Span{Lo: lo[ax], Hi: hi[ax] + 1}
		}
	}

	return spans
}

// equalRun reports whether two equal-length runs match element-wise.
func equalRun[T comparable](run, ref []T) bool {
	for i, v := range run {
		if v != ref[i] {
			return false
		}
	}

	return true
}
