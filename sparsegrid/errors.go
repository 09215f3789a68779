// SPDX-License-Identifier: MIT

// Package sparsegrid: sentinel error set. All builders return these
// sentinels and tests check them via errors.Is; no builder panics on
// user-triggered conditions.

package sparsegrid

import "errors"

var (
	// ErrNoIndices indicates that a builder requiring at least one index or
	// entry received none (the output shape would be undefined).
	ErrNoIndices = errors.New("sparsegrid: at least one index is required")

	// ErrIndexRank indicates indices of differing lengths, an empty index,
	// or a per-axis option (min/max/pad) whose length matches neither 1 nor
	// the index rank.
	ErrIndexRank = errors.New("sparsegrid: indices must share one rank")

	// ErrCellSize indicates structured entry values of inconsistent sizes,
	// or a declared cell shape/background cell that disagrees with them.
	// Uniform value shape across entries is a documented restriction.
	ErrCellSize = errors.New("sparsegrid: entry cell sizes disagree")

	// ErrBadBounds indicates an explicit minimum bound above the maximum.
	ErrBadBounds = errors.New("sparsegrid: min bound exceeds max bound")

	// ErrOutOfBounds indicates an index outside the resolved
	// [min-pad, max+pad] range under explicitly supplied bounds.
	ErrOutOfBounds = errors.New("sparsegrid: index outside explicit bounds")

	// ErrEmptyString indicates text-grid input with no lines.
	ErrEmptyString = errors.New("sparsegrid: string has no lines")

	// ErrRaggedLines indicates text-grid lines of differing widths.
	ErrRaggedLines = errors.New("sparsegrid: lines have differing lengths")

	// ErrUnmappedRune indicates a grid rune missing from the mapping.
	ErrUnmappedRune = errors.New("sparsegrid: rune missing from mapping")

	// ErrUnmappedValue indicates a grid value missing from the mapping.
	ErrUnmappedValue = errors.New("sparsegrid: value missing from mapping")
)
