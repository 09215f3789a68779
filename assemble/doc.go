// Package assemble packs a list of differently-shaped arrays into a single
// grid-aligned output array.
//
// Inputs share an element type and identical trailing ("tail") dimensions
// beyond the grid rank; their leading dimensions may differ and are packed
// into a grid of the requested shape (one dimension may be ndarray.Auto, in
// which case it is resolved against the array count). Arrays fill grid
// cells in row-major order; each cell is sized to the maximum extent, per
// axis, of the arrays sharing that axis coordinate, cells are separated by
// a configurable spacing, and every array is positioned inside its cell by
// a per-array, per-axis alignment code (start, center, stop). A per-axis
// flag can round the final output extent up to an even number.
//
// The background value fills everywhere not covered by an input array;
// input arrays always appear fully and unclipped, and cells never overlap.
// All validation (emptiness, rank and tail agreement, alignment codes,
// option broadcasting) happens before the output is allocated.
package assemble
