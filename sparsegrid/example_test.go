// File: sparsegrid/example_test.go
package sparsegrid_test

import (
	"fmt"

	"github.com/katalvlaran/ndpack/sparsegrid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromIndices
////////////////////////////////////////////////////////////////////////////////

// ExampleFromIndices demonstrates materializing a dense grid from sparse
// 2-D indices with negative coordinates.
// Scenario:
//
//   - Indices (-1,-2), (-1,1), (1,0) with foreground 1, background 0
//   - The grid spans the tight bounding box of the indices: 3×4
//   - Each index lands at its coordinate translated by -min per axis
//
// Complexity: O(len(indices) + output size)
func ExampleFromIndices() {
	indices := []sparsegrid.Index{{-1, -2}, {-1, 1}, {1, 0}}
	grid, _ := sparsegrid.FromIndices(indices, 1)
	fmt.Print(grid)

	// Output:
	// [1, 0, 0, 1]
	// [0, 0, 0, 0]
	// [0, 0, 1, 0]
}

////////////////////////////////////////////////////////////////////////////////
// Example: text grids
////////////////////////////////////////////////////////////////////////////////

// ExampleFromStringMapped demonstrates the text-grid codec round trip:
// characters to integers and back through a reverse mapping.
func ExampleFromStringMapped() {
	grid, _ := sparsegrid.FromStringMapped("..B\nB.A\n", map[rune]int{'.': 0, 'A': 1, 'B': 2})
	text, _ := sparsegrid.GridStringMapped(grid, map[int]rune{0: '.', 1: 'A', 2: 'B'})

	fmt.Println(grid.Shape())
	fmt.Println(text)

	// Output:
	// [2 3]
	// ..B
	// B.A
}
