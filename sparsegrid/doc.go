// Package sparsegrid materializes dense arrays from sparse coordinate data.
// It supports:
//
//   - FromIndices: an ordered list of D-dimensional integer indices, all
//     assigned a single foreground value
//   - FromEntries: an ordered list of index→cell assignments, where a cell
//     is a scalar or a structured value (e.g. an RGB triple)
//   - Explicit per-axis minimum/maximum bounds and per-axis padding around
//     the (default tight) bounding box of the indices
//   - Text-grid codecs (FromString/GridString and their mapped variants)
//   - Colormap images (Image) built from sparse cells and a value→RGB map
//
// The output array spans, per axis, the range [min-pad, max+pad] of the
// index coordinates; coordinates are translated by pad-min before writing.
// Duplicate indices follow a last-write-wins rule over the input slice
// order, which is deterministic (the API takes ordered slices, not maps,
// precisely so this rule is reproducible).
//
// All builders validate their input fully before allocating the output;
// no partially-written array is ever returned alongside an error.
package sparsegrid
