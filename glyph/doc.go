// Package glyph implements the pixel grid behind a single monochrome glyph.
//
// Coordinates are 0-based (X, Y) with X the column and Y the row.
// A glyph is Narrow (8 columns) or Wide (16 columns) and has a fixed height.
package glyph
