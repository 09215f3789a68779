// SPDX-License-Identifier: MIT

// Package sparsegrid: functional configuration for the grid builders.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each setting impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package sparsegrid

import "github.com/katalvlaran/ndpack/ndarray"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPad is the number of extra background slices inserted before
	// and after the index range on every axis.
	DefaultPad = 0
)

// Internal panic messages (no magic strings).
const (
	panicPadNegative     = "sparsegrid: WithPad: widths must be non-negative"
	panicBackgroundEmpty = "sparsegrid: WithBackgroundCell: cell must be nonempty"
	panicBoundsEmpty     = "sparsegrid: bounds option requires at least one value"
)

// Option mutates internal options. Safe to apply repeatedly; public entry
// points resolve a sequence of options with last-writer-wins semantics.
type Option[T comparable] func(*options[T])

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type options[T comparable] struct {
	background []T           // cell-shaped fill; nil → zero value of T
	cellShape  ndarray.Shape // trailing dims; nil → inferred from entries
	cellSet    bool          // distinguishes rank-0 from "not declared"
	min, max   []int         // explicit bounds; length 1 broadcasts to all axes
	pad        []int         // per-axis pad; length 1 broadcasts to all axes
}

// WithBackground sets a scalar background value assigned to every element
// not covered by an index. For structured cells the scalar broadcasts
// across the whole cell.
func WithBackground[T comparable](v T) Option[T] {
	return func(o *options[T]) { o.background = []T{v} }
}

// WithBackgroundCell sets a structured background cell (flat row-major,
// e.g. an RGB triple). Its length must match the entries' cell size;
// builders reject a disagreement with ErrCellSize.
// Panics when the cell is empty (programmer error).
func WithBackgroundCell[T comparable](cell []T) Option[T] {
	if len(cell) == 0 {
		panic(panicBackgroundEmpty)
	}

	return func(o *options[T]) { o.background = append([]T(nil), cell...) }
}

// WithCellShape declares the trailing (cell) dimensions of the output
// explicitly, e.g. ndarray.Shape{3} for RGB. Without it, a cell size of 1
// yields scalar elements and a size L > 1 yields one trailing axis of
// extent L.
func WithCellShape[T comparable](shape ndarray.Shape) Option[T] {
	return func(o *options[T]) {
		o.cellShape = shape.Clone()
		o.cellSet = true
	}
}

// WithMin sets the explicit per-axis minimum index coordinate mapped to
// array position zero. One value broadcasts to every axis; otherwise one
// value per axis is required. Panics when called with no values.
func WithMin[T comparable](vals ...int) Option[T] {
	if len(vals) == 0 {
		panic(panicBoundsEmpty)
	}

	return func(o *options[T]) { o.min = append([]int(nil), vals...) }
}

// WithMax sets the explicit per-axis maximum index coordinate mapped to
// the last array position. One value broadcasts to every axis.
// Panics when called with no values.
func WithMax[T comparable](vals ...int) Option[T] {
	if len(vals) == 0 {
		panic(panicBoundsEmpty)
	}

	return func(o *options[T]) { o.max = append([]int(nil), vals...) }
}

// WithPad inserts extra background slices before and after the index range.
// One value broadcasts to every axis; otherwise one value per axis.
// Panics on negative widths or no values (programmer error).
func WithPad[T comparable](vals ...int) Option[T] {
	if len(vals) == 0 {
		panic(panicBoundsEmpty)
	}
	for _, v := range vals {
		if v < 0 {
			panic(panicPadNegative)
		}
	}

	return func(o *options[T]) { o.pad = append([]int(nil), vals...) }
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k options.
func gatherOptions[T comparable](user ...Option[T]) options[T] {
	var o options[T] // zero value encodes every default (DefaultPad, tight bounds, inferred cell)
	for _, set := range user {
		set(&o)
	}

	return o
}

// broadcastAxes resolves a per-axis option value: nil → fallback replicated,
// one value → replicated, D values → as is. Any other length is an
// ErrIndexRank condition reported by the caller.
func broadcastAxes(vals []int, d, fallback int) ([]int, bool) {
	out := make([]int, d)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = fallback
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case d:
		copy(out, vals)
	default:
		return nil, false
	}

	return out, true
}
