// SPDX-License-Identifier: MIT

package ndarray

// Pad returns a copy of the array padded along its leading axes.
// The pad specification covers the first len(pad) axes; unspecified trailing
// axes receive no padding. The fill value is itself an Array whose shape
// must exactly equal the input's extents on the uncovered trailing axes
// (use Scalar for a plain value), so a structured fill (e.g. an RGB triple)
// replicates element-wise across the padded region.
//
// Behavior highlights:
//   - A zero-width specification on every axis returns an equal array that
//     never aliases the input.
//   - The padded region is tiled with fill; the interior is a verbatim copy.
//
// Errors:
//   - ErrNilArray when a or fill is nil.
//   - ErrRankMismatch when len(pad) exceeds the array rank.
//   - ErrNegativePad for a negative width.
//   - ErrShapeMismatch when fill's shape differs from the trailing extents.
//
// Complexity: O(output size) time and memory.
func Pad[T comparable](a *Array[T], pad []PadWidth, fill *Array[T]) (*Array[T], error) {
	if a == nil || fill == nil {
		return nil, ErrNilArray
	}
	if len(pad) > a.Rank() {
		return nil, ErrRankMismatch
	}
	for _, w := range pad {
		if w.Before < 0 || w.After < 0 {
			return nil, ErrNegativePad
		}
	}
	if !fill.shape.Equal(a.shape[len(pad):]) {
		return nil, ErrShapeMismatch
	}

	outShape := a.shape.Clone()
	origin := make([]int, a.Rank())
	for ax, w := range pad {
		outShape[ax] += w.Before + w.After
		origin[ax] = w.Before
	}
	out, err := New[T](outShape)
	if err != nil {
		return nil, err
	}
	// Tile the fill across the whole output, then blit the interior over it.
	if out.Len() > 0 {
		out.fillTiled(fill.data)
	}
	out.blit(origin, a)

	return out, nil
}

// PadUniform pads by n slices before and after each leading axis not
// covered by the fill's own shape, mirroring the scalar-pad broadcast rule:
// the specification spans exactly rank(a) - rank(fill) axes.
// Complexity: O(output size) time and memory.
func PadUniform[T comparable](a *Array[T], n int, fill *Array[T]) (*Array[T], error) {
	if a == nil || fill == nil {
		return nil, ErrNilArray
	}
	axes := a.Rank() - fill.Rank()
	if axes < 0 {
		return nil, ErrRankMismatch
	}

	return Pad(a, UniformWidths(n, axes), fill)
}
