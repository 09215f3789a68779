// SPDX-License-Identifier: MIT

// Package ndarray: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// ndarray package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (if any).

package ndarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (a negative
	// extent, more than one Auto entry, or a fixed shape whose element count
	// cannot hold the required number of elements).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates two values that must agree on shape (an
	// array and its fill value, a data slice and its declared shape, the
	// trailing extents of an overlay) disagree.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrRankMismatch indicates that a per-axis specification (pad widths,
	// offsets, margins, alignment codes) has the wrong number of entries for
	// the array it applies to.
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrOutOfRange indicates that an index or placement region is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNegativePad indicates a negative pad/margin width.
	ErrNegativePad = errors.New("ndarray: negative pad width")

	// ErrBadAlign indicates an unrecognized alignment code.
	ErrBadAlign = errors.New("ndarray: alignment code not recognized")

	// ErrNonRectangular indicates rows of differing lengths in 2-D input.
	ErrNonRectangular = errors.New("ndarray: all rows must have the same length")

	// ErrNilArray indicates that a nil *Array was passed where a value is
	// required.
	ErrNilArray = errors.New("ndarray: nil array")
)
