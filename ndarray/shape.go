// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// FitShape resolves a target shape against a required element count n.
// Stage 1 (Validate): n ≥ 1; every entry positive except at most one Auto.
// Stage 2 (Resolve): replace the Auto entry with ceil(n / product(others));
// with no Auto entry, require product(shape) ≥ n.
// Stage 3 (Finalize): return a fresh Shape; the input is never mutated.
//
// Behavior highlights:
//   - Exactly the Auto entry changes; all fixed entries are preserved.
//   - The result always satisfies result.Size() ≥ n.
//
// Errors:
//   - ErrBadShape when n < 1, an entry is zero/negative (other than Auto),
//     more than one entry is Auto, or a fixed shape is too small for n.
//
// Complexity: O(rank) time, O(rank) memory.
func FitShape(shape Shape, n int) (Shape, error) {
	if n < 1 {
		return nil, fmt.Errorf("fit %d elements: %w", n, ErrBadShape)
	}
	autos, sliceSize := 0, 1
	for _, dim := range shape {
		switch {
		case dim == Auto:
			autos++
		case dim <= 0:
			return nil, fmt.Errorf("extent %d: %w", dim, ErrBadShape)
		default:
			sliceSize *= dim
		}
	}
	if autos > 1 {
		return nil, fmt.Errorf("shape %v has more than one Auto entry: %w", []int(shape), ErrBadShape)
	}

	out := shape.Clone()
	if autos == 0 {
		if sliceSize < n {
			return nil, fmt.Errorf("shape %v too small for %d elements: %w", []int(shape), n, ErrBadShape)
		}
		return out, nil
	}
	for i, dim := range out {
		if dim == Auto {
			out[i] = (n + sliceSize - 1) / sliceSize // ceil division
		}
	}

	return out, nil
}
