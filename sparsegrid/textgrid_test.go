// Package sparsegrid_test contains unit tests for the text-grid codec.
package sparsegrid_test

import (
	"testing"

	"github.com/katalvlaran/ndpack/ndarray"
	"github.com/katalvlaran/ndpack/sparsegrid"
	"github.com/stretchr/testify/require"
)

// TestFromStringBasic parses a multiline string into a rank-2 rune grid.
func TestFromStringBasic(t *testing.T) {
	g, err := sparsegrid.FromString("..B\nB.A\n") // trailing newline ignored
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{2, 3}, g.Shape())

	ch, err := g.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 'B', ch)
}

// TestFromStringMapped translates runes to integers while parsing.
func TestFromStringMapped(t *testing.T) {
	mapping := map[rune]int{'.': 0, 'A': 1, 'B': 2}
	g, err := sparsegrid.FromStringMapped("..B\nB.A\n", mapping)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 2, 2, 0, 1}, g.Data())

	_, err = sparsegrid.FromStringMapped("..X\n...\n", mapping)
	require.ErrorIs(t, err, sparsegrid.ErrUnmappedRune) // X is not mapped
}

// TestFromStringValidation rejects empty and ragged input.
func TestFromStringValidation(t *testing.T) {
	_, err := sparsegrid.FromString("")
	require.ErrorIs(t, err, sparsegrid.ErrEmptyString)

	_, err = sparsegrid.FromString("abc\nab\n")
	require.ErrorIs(t, err, sparsegrid.ErrRaggedLines)
}

// TestGridStringRoundTrip re-renders a parsed grid identically.
func TestGridStringRoundTrip(t *testing.T) {
	const text = "..B\nB.A"
	g, err := sparsegrid.FromString(text)
	require.NoError(t, err)

	back, err := sparsegrid.GridString(g)
	require.NoError(t, err)
	require.Equal(t, text, back)
}

// TestGridStringMapped renders integers through a reverse mapping.
func TestGridStringMapped(t *testing.T) {
	g, err := ndarray.From2D([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)

	s, err := sparsegrid.GridStringMapped(g, map[int]rune{0: '.', 1: '#'})
	require.NoError(t, err)
	require.Equal(t, ".#\n..", s)

	_, err = sparsegrid.GridStringMapped(g, map[int]rune{0: '.'}) // 1 missing
	require.ErrorIs(t, err, sparsegrid.ErrUnmappedValue)
}

// TestGridStringRankCheck rejects non-2D arrays.
func TestGridStringRankCheck(t *testing.T) {
	v, err := ndarray.FromSlice(ndarray.Shape{2}, []rune{'a', 'b'})
	require.NoError(t, err)

	_, err = sparsegrid.GridString(v)
	require.ErrorIs(t, err, ndarray.ErrRankMismatch)
}
