// Package ndarray provides the core dense N-dimensional container and the
// shape/composition primitives built directly on it.
//
// The ndarray package provides:
//
//   - Array[T]: a generic, row-major, rectangular N-dimensional container
//     with explicit bounds-checked element access.
//   - FitShape: resolution of a target Shape with at most one wildcard
//     (Auto) dimension against a required element count.
//   - Pad / PadUniform: border padding of leading axes with a scalar or
//     tail-shaped fill value.
//   - BoundingSlices / BoundingCrop: per-axis tight spans around elements
//     that differ from a reference value, and crop-then-repad on top of them.
//   - Shift: a shifted copy with constant fill.
//   - WriteAt / Overlay: the documented in-place variants that mutate a
//     caller-owned destination array, validating all bounds before the
//     first write.
//   - ToDense / FromDense: converters for exporting rank-2 float64 arrays
//     to gonum linear-algebra routines.
//
// Arrays are immutable by convention: every operation other than WriteAt
// and Overlay allocates and returns a fresh Array. All operations are
// synchronous and single-threaded; concurrent calls on disjoint inputs are
// safe, while serializing mutation of a shared destination is the caller's
// responsibility.
//
// See the examples in this package and in sparsegrid/assemble for usage
// patterns.
package ndarray
