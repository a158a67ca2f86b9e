package glyph

import "fmt"

// Buffer is the canonical pixel state of one glyph.
//
// Every row holds exactly Width() cells. The version increases on each
// effective mutation and is left alone by no-ops.
type Buffer struct {
	width  int
	height int
	pixels [][]bool

	version uint64
}

// New returns a cleared width × height buffer.
func New(width, height int) (*Buffer, error) {
	if !ValidWidth(width) {
		return nil, fmt.Errorf("width %d not %d or %d: %w", width, Narrow, Wide, ErrInvalidDimension)
	}
	if height <= 0 {
		return nil, fmt.Errorf("height %d: %w", height, ErrInvalidDimension)
	}
	return &Buffer{
		width:  width,
		height: height,
		pixels: NewGrid(width, height),
	}, nil
}

func (b *Buffer) Width() int { return b.width }

func (b *Buffer) Height() int { return b.height }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y). Pixels outside the grid are off.
func (b *Buffer) At(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.pixels[y][x]
}

// Count returns the number of pixels that are on.
func (b *Buffer) Count() int {
	n := 0
	for _, row := range b.pixels {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Toggle flips the pixel at (x, y) and nothing else.
func (b *Buffer) Toggle(x, y int) error {
	if !b.InBounds(x, y) {
		return b.boundsError(x, y)
	}
	b.pixels[y][x] = !b.pixels[y][x]
	b.version++
	return nil
}

// Set assigns the pixel at (x, y).
func (b *Buffer) Set(x, y int, on bool) error {
	if !b.InBounds(x, y) {
		return b.boundsError(x, y)
	}
	if b.pixels[y][x] == on {
		return nil
	}
	b.pixels[y][x] = on
	b.version++
	return nil
}

// SetWidth switches between Narrow and Wide and returns the width in effect
// before the call.
//
// Columns present in both widths keep their value, new columns start off and
// dropped columns are discarded. Setting the current width is a no-op.
func (b *Buffer) SetWidth(width int) (int, error) {
	prev := b.width
	if !ValidWidth(width) {
		return prev, fmt.Errorf("width %d not %d or %d: %w", width, Narrow, Wide, ErrInvalidDimension)
	}
	if width == prev {
		return prev, nil
	}
	for y, row := range b.pixels {
		b.pixels[y] = resizeRow(row, width)
	}
	b.width = width
	b.version++
	return prev, nil
}

// Clear turns every pixel off.
func (b *Buffer) Clear() {
	changed := false
	for _, row := range b.pixels {
		for x, on := range row {
			if on {
				row[x] = false
				changed = true
			}
		}
	}
	if changed {
		b.version++
	}
}

// Grid returns a Height() × Width() copy of the pixels.
func (b *Buffer) Grid() [][]bool {
	return CloneGrid(b.pixels)
}

// SetGrid replaces the pixels with the top-left Width() × Height() region of g.
//
// Rows past Height() and columns past Width() are ignored; rows shorter than
// Width() read as off in the missing columns. g must have at least Height()
// rows and every row used must have at least one column. On error the buffer
// is left unchanged.
func (b *Buffer) SetGrid(g [][]bool) error {
	if len(g) < b.height {
		return fmt.Errorf("%d rows, need %d: %w", len(g), b.height, ErrMalformedGrid)
	}
	for y := 0; y < b.height; y++ {
		if len(g[y]) == 0 {
			return fmt.Errorf("row %d is empty: %w", y, ErrMalformedGrid)
		}
	}

	next := make([][]bool, b.height)
	for y := range next {
		next[y] = resizeRow(g[y], b.width)
	}
	if EqualGrids(next, b.pixels) {
		return nil
	}
	b.pixels = next
	b.version++
	return nil
}

func (b *Buffer) boundsError(x, y int) error {
	return fmt.Errorf("(%d,%d) outside %dx%d: %w", x, y, b.width, b.height, ErrOutOfBounds)
}
