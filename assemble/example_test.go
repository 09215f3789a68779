// File: assemble/example_test.go
package assemble_test

import (
	"fmt"

	"github.com/katalvlaran/ndpack/assemble"
	"github.com/katalvlaran/ndpack/ndarray"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Arrays
////////////////////////////////////////////////////////////////////////////////

// ExampleArrays demonstrates packing five small 2-D arrays into a 2×3 grid.
// Scenario:
//
//   - Inputs of shapes 1×3, 2×1, 1×1, 1×2 and 1×3, assigned to grid cells
//     in row-major order (the sixth cell stays empty)
//   - Each grid row is as tall as its tallest member, each grid column as
//     wide as its widest member
//   - Arrays are centered within their cells; unassigned elements hold the
//     background value 0
//
// Complexity: O(len(arrays) × gridRank + output size)
func ExampleArrays() {
	a, _ := ndarray.From2D([][]int{{1, 2, 3}})
	b, _ := ndarray.From2D([][]int{{5}, {6}})
	c, _ := ndarray.From2D([][]int{{7}})
	d, _ := ndarray.From2D([][]int{{8, 9}})
	e, _ := ndarray.From2D([][]int{{3, 4, 5}})

	out, _ := assemble.Arrays([]*ndarray.Array[int]{a, b, c, d, e}, ndarray.Shape{2, 3})
	fmt.Print(out)

	// Output:
	// [1, 2, 3, 0, 5, 0, 7]
	// [0, 0, 0, 0, 6, 0, 0]
	// [8, 9, 0, 3, 4, 5, 0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: spacing
////////////////////////////////////////////////////////////////////////////////

// ExampleArrays_spacing separates grid cells with one column and one row of
// background between neighbors.
func ExampleArrays_spacing() {
	a, _ := ndarray.From2D([][]int{{1, 1}})
	b, _ := ndarray.From2D([][]int{{2, 2}})

	out, _ := assemble.Arrays([]*ndarray.Array[int]{a, b}, ndarray.Shape{1, 2},
		assemble.WithSpacing[int](1))
	fmt.Print(out)

	// Output:
	// [1, 1, 0, 2, 2]
}
