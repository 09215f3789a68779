// SPDX-License-Identifier: MIT

// Package assemble: sentinel error set. Shape-resolution failures propagate
// ndarray.ErrBadShape from FitShape and unrecognized alignment codes
// propagate ndarray.ErrBadAlign; both remain matchable via errors.Is.

package assemble

import "errors"

var (
	// ErrNoArrays indicates that the input list was empty.
	ErrNoArrays = errors.New("assemble: at least one input array is required")

	// ErrNilArray indicates a nil entry in the input list.
	ErrNilArray = errors.New("assemble: nil input array")

	// ErrRankMismatch indicates input arrays of differing ranks, or ranks
	// below the grid rank.
	ErrRankMismatch = errors.New("assemble: input ranks disagree with the grid")

	// ErrTailMismatch indicates input arrays whose trailing dimensions
	// beyond the grid rank are not identical.
	ErrTailMismatch = errors.New("assemble: trailing dimensions disagree")

	// ErrOptionShape indicates an option (alignment matrix, spacing,
	// round-to-even flags, background cell) whose dimensions cannot be
	// broadcast onto the grid.
	ErrOptionShape = errors.New("assemble: option dimensions disagree with the grid")
)
