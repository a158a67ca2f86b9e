package glyph

import "errors"

const (
	// Narrow is the column count of a one-byte-per-row glyph.
	Narrow = 8
	// Wide is the column count of a two-byte-per-row glyph.
	Wide = 16

	// DefaultHeight is the row count of a UEFI glyph cell.
	DefaultHeight = 19
)

var (
	ErrInvalidDimension = errors.New("glyph: invalid dimension")
	ErrOutOfBounds      = errors.New("glyph: pixel out of bounds")
	ErrMalformedGrid    = errors.New("glyph: malformed grid")
)

// Pos addresses one pixel.
type Pos struct {
	X int
	Y int
}

// ValidWidth reports whether w is Narrow or Wide.
func ValidWidth(w int) bool {
	return w == Narrow || w == Wide
}

// Planes returns how many bytes encode one row of a glyph w columns wide.
func Planes(w int) int {
	return (w + 7) / 8
}

// ClampPos clamps p into a width × height grid.
func ClampPos(p Pos, width, height int) Pos {
	return Pos{
		X: clampInt(p.X, 0, width-1),
		Y: clampInt(p.Y, 0, height-1),
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
