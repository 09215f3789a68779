// SPDX-License-Identifier: MIT

// Package sparsegrid: text-grid codec. A multiline string maps to a rank-2
// array with one rune per element, and back.
package sparsegrid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndpack/ndarray"
)

// FromString returns a rank-2 rune array built from a multiline string.
// Lines are rows; a trailing newline is ignored. All lines must have the
// same rune width.
// Returns ErrEmptyString or ErrRaggedLines.
// Complexity: O(H×W).
func FromString(s string) (*ndarray.Array[rune], error) {
	rows, err := splitLines(s)
	if err != nil {
		return nil, err
	}

	return ndarray.From2D(rows)
}

// FromStringMapped returns a rank-2 array built from a multiline string by
// translating every rune through the mapping.
// Returns ErrEmptyString, ErrRaggedLines, or ErrUnmappedRune for a rune
// absent from the mapping.
// Complexity: O(H×W).
func FromStringMapped[T comparable](s string, mapping map[rune]T) (*ndarray.Array[T], error) {
	rows, err := splitLines(s)
	if err != nil {
		return nil, err
	}
	out := make([][]T, len(rows))
	for y, row := range rows {
		out[y] = make([]T, len(row))
		for x, ch := range row {
			v, known := mapping[ch]
			if !known {
				return nil, fmt.Errorf("rune %q: %w", ch, ErrUnmappedRune)
			}
			out[y][x] = v
		}
	}

	return ndarray.From2D(out)
}

// GridString returns the multiline string form of a rank-2 rune array.
// Returns ndarray.ErrRankMismatch for any other rank.
// Complexity: O(H×W).
func GridString(a *ndarray.Array[rune]) (string, error) {
	if a == nil {
		return "", ndarray.ErrNilArray
	}
	if a.Rank() != 2 {
		return "", ndarray.ErrRankMismatch
	}
	shape, data := a.Shape(), a.Data()
	w := shape[1]
	lines := make([]string, shape[0])
	for y := range lines {
		lines[y] = string(data[y*w : (y+1)*w])
	}

	return strings.Join(lines, "\n"), nil
}

// GridStringMapped returns the multiline string form of a rank-2 array by
// translating every element through the mapping.
// Returns ndarray.ErrRankMismatch or ErrUnmappedValue.
// Complexity: O(H×W).
func GridStringMapped[T comparable](a *ndarray.Array[T], mapping map[T]rune) (string, error) {
	if a == nil {
		return "", ndarray.ErrNilArray
	}
	if a.Rank() != 2 {
		return "", ndarray.ErrRankMismatch
	}
	shape, data := a.Shape(), a.Data()
	w := shape[1]
	var b strings.Builder
	for y := 0; y < shape[0]; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			ch, known := mapping[data[y*w+x]]
			if !known {
				return "", fmt.Errorf("value %v: %w", data[y*w+x], ErrUnmappedValue)
			}
			b.WriteRune(ch)
		}
	}

	return b.String(), nil
}

// splitLines splits a string into equal-width rune rows.
func splitLines(s string) ([][]rune, error) {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmptyString
	}
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) != len(rows[0]) {
			return nil, ErrRaggedLines
		}
	}

	return rows, nil
}
