// SPDX-License-Identifier: MIT

package ndarray

// Shift returns a copy of the array translated by offset, with elements
// shifted past an edge discarded and vacated positions set to fill.
// offset has one entry per axis; positive entries shift toward higher
// indices. An offset of zero on every axis returns an equal copy.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrRankMismatch when len(offset) differs from the rank.
//
// Complexity: O(size) time and memory.
func Shift[T comparable](a *Array[T], offset []int, fill T) (*Array[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if len(offset) != a.Rank() {
		return nil, ErrRankMismatch
	}
	out, err := Full(a.shape, fill)
	if err != nil {
		return nil, err
	}

	// Overlapping region between the shifted source and the output.
	srcLo := make([]int, a.Rank())
	srcHi := make([]int, a.Rank())
	dstAt := make([]int, a.Rank())
	for ax, o := range offset {
		dstLo := max(0, o)
		dstHi := min(a.shape[ax], a.shape[ax]+o)
		if dstHi <= dstLo {
			return out, nil // shifted entirely out of view
		}
		dstAt[ax] = dstLo
		srcLo[ax] = dstLo - o
		srcHi[ax] = dstHi - o
	}
	sub, err := a.Slice(srcLo, srcHi)
	if err != nil {
		return nil, err
	}
	out.blit(dstAt, sub)

	return out, nil
}
