// Package ndarray_test contains unit tests for the gonum converters.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/ndpack/ndarray"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToDenseRoundTrip exports to gonum and imports back without loss.
func TestToDenseRoundTrip(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	d, err := ndarray.ToDense(a)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2)) // row-major order preserved

	back, err := ndarray.FromDense(d)
	require.NoError(t, err)
	require.True(t, a.Equal(back))
}

// TestToDenseIndependentCopy ensures the exported matrix does not alias
// the array's storage.
func TestToDenseIndependentCopy(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	d, err := ndarray.ToDense(a)
	require.NoError(t, err)
	d.Set(0, 0, 99)

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // array untouched
}

// TestToDenseRejectsNonMatrix rejects ranks other than 2 and zero extents.
func TestToDenseRejectsNonMatrix(t *testing.T) {
	v, err := ndarray.FromSlice(ndarray.Shape{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = ndarray.ToDense(v)
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)

	empty, err := ndarray.New[float64](ndarray.Shape{0, 3})
	require.NoError(t, err)
	_, err = ndarray.ToDense(empty)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestFromDenseUsesGonumViews accepts any mat.Matrix implementation.
func TestFromDenseUsesGonumViews(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	a, err := ndarray.FromDense(d.T()) // transposed view
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, a.Data())
}
