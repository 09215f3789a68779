// Package ndpack is your in-memory toolbox for building, cropping and
// packing dense N-dimensional arrays — from sparse coordinate data all the
// way to a single grid-aligned composite.
//
// 🚀 What is ndpack?
//
//	A small, deterministic library that brings together:
//		• Core container: generic row-major Array[T] with explicit bounds checks
//		• Shape fitting: resolve a grid shape with one wildcard (Auto) dimension
//		• Border padding: pad leading axes with scalar or tail-shaped fill
//		• Bounding boxes: per-axis tight spans around non-background elements
//		• Bounding crop: trim to the box, then re-pad by a margin
//		• Sparse grids: materialize dense arrays from coordinate→value data
//		• Assembly: pack differently-shaped arrays into one aligned output
//
// ✨ Why choose ndpack?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Deterministic – ordered inputs, documented last-write-wins rules
//   - Interoperable – converters to gonum mat for linear-algebra consumers
//
// Under the hood, everything is organized under three subpackages:
//
//	ndarray/    — Array[T], Shape, FitShape, Pad, BoundingSlices/Crop, Shift, Overlay
//	sparsegrid/ — dense grids from sparse indices, text grids, colormap images
//	assemble/   — pack a list of arrays into one grid-aligned array
//
// Quick ASCII example:
//
//	    ┌───┬───┐
//	    │ A │ B │
//	    ├───┼───┤
//	    │ C │ D │
//	    └───┴───┘
//
//	four small arrays packed into one 2×2 grid, each centered in its cell.
//
// Dive into the package docs for full examples and the error contracts of
// every operation.
//
//	go get github.com/katalvlaran/ndpack
package ndpack
