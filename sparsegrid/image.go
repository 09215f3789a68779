// SPDX-License-Identifier: MIT

// Package sparsegrid: colormap image construction. A sparse map of scalar
// cell values becomes a uint8 image with one RGB triple per grid element.
package sparsegrid

import (
	"fmt"

	"github.com/katalvlaran/ndpack/ndarray"
)

// Image materializes a uint8 image from sparse scalar cells and a
// value→RGB colormap. The grid of values is built exactly as FromEntries
// would (background fills unassigned elements, per-axis padding applies
// via options), then every value is translated through cmap, producing an
// output of shape leading-dims + {3}.
//
// Every entry must carry a scalar cell (size 1); the colormap must cover
// the background and every assigned value.
//
// Errors: everything FromEntries returns, ErrCellSize for structured
// cells, ErrUnmappedValue for a value absent from cmap.
//
// Complexity: O(len(cells) × D + output size).
func Image[T comparable](cells []Entry[T], background T, cmap map[T]RGB, opts ...Option[T]) (*ndarray.Array[uint8], error) {
	for _, e := range cells {
		if len(e.Cell) != 1 {
			return nil, fmt.Errorf("index %v: %w", []int(e.At), ErrCellSize)
		}
	}
	full := append([]Option[T]{WithBackground(background)}, opts...)
	grid, err := FromEntries(cells, full...)
	if err != nil {
		return nil, err
	}

	values := grid.Data()
	out, err := ndarray.New[uint8](append(grid.Shape(), 3))
	if err != nil {
		return nil, err
	}
	pixels := out.Data()
	for i, v := range values {
		rgb, known := cmap[v]
		if !known {
			return nil, fmt.Errorf("value %v: %w", v, ErrUnmappedValue)
		}
		copy(pixels[i*3:(i+1)*3], rgb[:])
	}

	return out, nil
}
