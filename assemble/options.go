// SPDX-License-Identifier: MIT

// Package assemble: functional configuration for the grid assembler.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each setting impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package assemble

import "github.com/katalvlaran/ndpack/ndarray"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlign centers every array within its grid cell.
	DefaultAlign = ndarray.AlignCenter

	// DefaultSpacing inserts no space between grid cells.
	DefaultSpacing = 0
)

// Internal panic messages (no magic strings).
const (
	panicSpacingNegative = "assemble: WithSpacing: spacing must be non-negative"
	panicSpacingEmpty    = "assemble: WithSpacing requires at least one value"
	panicBackgroundEmpty = "assemble: WithBackgroundCell: cell must be nonempty"
)

// Option mutates internal options. Public entry points resolve a sequence
// of options with last-writer-wins semantics.
type Option[T comparable] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T comparable] struct {
	background []T              // tail-shaped fill cell; nil → zero value of T
	align      ndarray.Align    // uniform alignment; DefaultAlign
	aligns     [][]ndarray.Align // full per-array-per-axis matrix; nil → uniform
	spacing    []int            // per-axis; length 1 broadcasts; nil → DefaultSpacing
	roundEven  []bool           // per-axis; length 1 broadcasts; nil → false
}

// WithBackground sets a scalar background value for unassigned elements.
// For arrays with tail dimensions the scalar broadcasts across each cell.
func WithBackground[T comparable](v T) Option[T] {
	return func(o *options[T]) { o.background = []T{v} }
}

// WithBackgroundCell sets a tail-shaped background cell (flat row-major).
// Its length must equal the tail element count; Arrays rejects a
// disagreement with ErrOptionShape. Panics when the cell is empty.
func WithBackgroundCell[T comparable](cell []T) Option[T] {
	if len(cell) == 0 {
		panic(panicBackgroundEmpty)
	}

	return func(o *options[T]) { o.background = append([]T(nil), cell...) }
}

// WithAlign sets one alignment code for every array on every grid axis.
// The code itself is validated by Arrays (ndarray.ErrBadAlign).
func WithAlign[T comparable](al ndarray.Align) Option[T] {
	return func(o *options[T]) {
		o.align = al
		o.aligns = nil
	}
}

// WithAligns sets the full alignment matrix: one row per input array, one
// code per grid axis. Arrays validates the dimensions (ErrOptionShape) and
// every code (ndarray.ErrBadAlign) before allocating output.
func WithAligns[T comparable](aligns [][]ndarray.Align) Option[T] {
	return func(o *options[T]) {
		o.aligns = make([][]ndarray.Align, len(aligns))
		for i, row := range aligns {
			o.aligns[i] = append([]ndarray.Align(nil), row...)
		}
	}
}

// WithSpacing inserts extra space between grid cells. One value broadcasts
// to every grid axis; otherwise one value per axis is required.
// Panics on negative spacing or no values (programmer error).
func WithSpacing[T comparable](vals ...int) Option[T] {
	if len(vals) == 0 {
		panic(panicSpacingEmpty)
	}
	for _, v := range vals {
		if v < 0 {
			panic(panicSpacingNegative)
		}
	}

	return func(o *options[T]) { o.spacing = append([]int(nil), vals...) }
}

// WithRoundToEven grows the last grid cell by one unit on any axis whose
// total output extent would otherwise be odd. With no arguments every axis
// rounds; with one flag the value broadcasts; otherwise one flag per axis.
func WithRoundToEven[T comparable](flags ...bool) Option[T] {
	if len(flags) == 0 {
		flags = []bool{true}
	}

	return func(o *options[T]) { o.roundEven = append([]bool(nil), flags...) }
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k options.
func gatherOptions[T comparable](user ...Option[T]) options[T] {
	o := options[T]{align: DefaultAlign}
	for _, set := range user {
		set(&o)
	}

	return o
}
