// SPDX-License-Identifier: MIT

// Package ndarray: converters from Array to gonum matrix representations,
// for handing composed arrays to linear-algebra routines.
package ndarray

import "gonum.org/v1/gonum/mat"

// ToDense exports a rank-2 float64 Array as a gonum *mat.Dense.
// The returned matrix owns an independent copy of the data.
// Returns ErrNilArray, ErrRankMismatch for rank ≠ 2, or ErrBadShape for a
// zero extent (gonum dense matrices require positive dimensions).
//
// Time Complexity: O(r×c)
// Memory: O(r×c)
func ToDense(a *Array[float64]) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if a.Rank() != 2 {
		return nil, ErrRankMismatch
	}
	r, c := a.shape[0], a.shape[1]
	if r == 0 || c == 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, len(a.data))
	copy(data, a.data)

	return mat.NewDense(r, c, data), nil
}

// FromDense imports any gonum mat.Matrix as a rank-2 float64 Array.
// Returns ErrNilArray for a nil matrix.
//
// Time Complexity: O(r×c)
// Memory: O(r×c)
func FromDense(m mat.Matrix) (*Array[float64], error) {
	if m == nil {
		return nil, ErrNilArray
	}
	r, c := m.Dims()
	a, err := New[float64](Shape{r, c})
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}

	return a, nil
}
