// SPDX-License-Identifier: MIT

// Package ndarray: domain types shared by the container and the composition
// routines. This file intentionally contains ONLY domain-facing types
// (Shape, Span, PadWidth, Align); errors live in errors.go per the global
// conventions.
package ndarray

// Auto marks a single Shape entry as unresolved. FitShape replaces it with
// the smallest extent that fits the required element count. Every other
// non-positive entry is rejected, so Auto cannot be confused with an
// accidental negative extent.
const Auto = -1

// Shape is the per-axis extents of an array, e.g. Shape{2, 3, 4}.
// Rank is len(Shape); a nil/empty Shape describes a rank-0 (scalar) array.
type Shape []int

// Rank returns the number of axes.
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the total number of elements: the product of all extents.
// A rank-0 shape holds exactly one element; any zero extent yields zero.
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}

	return n
}

// Clone returns an independent copy of the shape.
// Complexity: O(rank).
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether two shapes have identical rank and extents.
// Complexity: O(rank).
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i, dim := range s {
		if dim != o[i] {
			return false
		}
	}

	return true
}

// Strides returns row-major element strides: the last axis has stride 1 and
// strides[i] = strides[i+1] * shape[i+1].
// Complexity: O(rank).
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}

	return strides
}

// Span is a half-open index range [Lo, Hi) along one axis.
type Span struct {
	Lo, Hi int
}

// Empty reports whether the span covers no indices.
func (sp Span) Empty() bool { return sp.Hi <= sp.Lo }

// Len returns the number of indices covered by the span.
func (sp Span) Len() int {
	if sp.Empty() {
		return 0
	}

	return sp.Hi - sp.Lo
}

// PadWidth is the number of fill slices inserted before and after one axis.
type PadWidth struct {
	Before, After int
}

// UniformWidths returns a pad specification of n slices before and after
// each of the given axes. It is the broadcast form used by PadUniform and
// BoundingCrop margins.
// Complexity: O(axes).
func UniformWidths(n, axes int) []PadWidth {
	widths := make([]PadWidth, axes)
	for i := range widths {
		widths[i] = PadWidth{Before: n, After: n}
	}

	return widths
}

// Align selects the placement of a smaller extent within a larger cell
// along one axis.
type Align int

const (
	// AlignStart places the element flush with the cell's leading edge.
	AlignStart Align = iota
	// AlignCenter centers the element within the cell, rounding down.
	AlignCenter
	// AlignStop places the element flush with the cell's trailing edge.
	AlignStop
)

// String implements fmt.Stringer for alignment codes.
func (al Align) String() string {
	switch al {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignStop:
		return "stop"
	default:
		return "invalid"
	}
}

// AlignOffset returns the offset of an element of the given size within a
// cell of the given length under the alignment code.
// Returns ErrBadAlign for an unrecognized code.
// Complexity: O(1).
func AlignOffset(length, size int, al Align) (int, error) {
	remainder := length - size
	switch al {
	case AlignStart:
		return 0, nil
	case AlignCenter:
		return remainder / 2, nil
	case AlignStop:
		return remainder, nil
	default:
		return 0, ErrBadAlign
	}
}
