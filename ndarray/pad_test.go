// Package ndarray_test contains unit tests for border padding.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/ndpack/ndarray"
	"github.com/stretchr/testify/require"
)

// arange returns a 2×3 array [[0,1,2],[3,4,5]] used across pad tests.
func arange23(t *testing.T) *ndarray.Array[int] {
	t.Helper()
	a, err := ndarray.FromSlice(ndarray.Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	return a
}

// TestPadUniformScalar surrounds every axis with one ring of the scalar fill.
func TestPadUniformScalar(t *testing.T) {
	out, err := ndarray.PadUniform(arange23(t), 1, ndarray.Scalar(9))
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{4, 5}, out.Shape())
	require.Equal(t, []int{
		9, 9, 9, 9, 9,
		9, 0, 1, 2, 9,
		9, 3, 4, 5, 9,
		9, 9, 9, 9, 9,
	}, out.Data())
}

// TestPadAsymmetric pads one slice before axis 0 and one after axis 1.
func TestPadAsymmetric(t *testing.T) {
	out, err := ndarray.Pad(arange23(t), []ndarray.PadWidth{{Before: 1}, {After: 1}}, ndarray.Scalar(9))
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{3, 4}, out.Shape())
	require.Equal(t, []int{
		9, 9, 9, 9,
		0, 1, 2, 9,
		3, 4, 5, 9,
	}, out.Data())
}

// TestPadStructuredFill pads leading rows with a full-row fill value,
// replicated element-wise rather than broadcast as a single scalar.
func TestPadStructuredFill(t *testing.T) {
	fill, err := ndarray.FromSlice(ndarray.Shape{3}, []int{6, 7, 8})
	require.NoError(t, err)

	out, err := ndarray.Pad(arange23(t), []ndarray.PadWidth{{Before: 2}}, fill)
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{4, 3}, out.Shape())
	require.Equal(t, []int{
		6, 7, 8,
		6, 7, 8,
		0, 1, 2,
		3, 4, 5,
	}, out.Data())
}

// TestPadFillShapeMismatch rejects a fill whose shape differs from the
// trailing extents beyond the pad specification.
func TestPadFillShapeMismatch(t *testing.T) {
	fill, err := ndarray.FromSlice(ndarray.Shape{2}, []int{6, 7})
	require.NoError(t, err)

	_, err = ndarray.Pad(arange23(t), []ndarray.PadWidth{{Before: 1}}, fill) // trailing extent is 3
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestPadZeroWidths returns an equal array that never aliases the input.
func TestPadZeroWidths(t *testing.T) {
	a := arange23(t)
	out, err := ndarray.Pad(a, []ndarray.PadWidth{{}, {}}, ndarray.Scalar(9))
	require.NoError(t, err)
	require.True(t, a.Equal(out)) // equal content

	require.NoError(t, out.Set(99, 0, 0)) // mutate the copy
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v) // input untouched: no aliasing
}

// TestPadInvalidSpec rejects negative widths and over-long specifications.
func TestPadInvalidSpec(t *testing.T) {
	_, err := ndarray.Pad(arange23(t), []ndarray.PadWidth{{Before: -1}}, ndarray.Scalar(9))
	require.ErrorIs(t, err, ndarray.ErrNegativePad)

	fill := ndarray.Scalar(9)
	_, err = ndarray.Pad(arange23(t), make([]ndarray.PadWidth, 3), fill) // rank is 2
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
}

// TestPadRankOne pads a vector on both sides.
func TestPadRankOne(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{3}, []int{1, 2, 3})
	require.NoError(t, err)

	out, err := ndarray.PadUniform(a, 1, ndarray.Scalar(9))
	require.NoError(t, err)
	require.Equal(t, []int{9, 1, 2, 3, 9}, out.Data())
}
