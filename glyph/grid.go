package glyph

// NewGrid returns a height × width grid with every cell off.
func NewGrid(width, height int) [][]bool {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := make([][]bool, height)
	for y := range g {
		g[y] = make([]bool, width)
	}
	return g
}

// CloneGrid deep-copies g, keeping ragged row lengths.
func CloneGrid(g [][]bool) [][]bool {
	if g == nil {
		return nil
	}
	out := make([][]bool, len(g))
	for y, row := range g {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// EqualGrids reports whether a and b have the same shape and cells.
func EqualGrids(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// resizeRow copies the overlap of row into a fresh slice of width cells.
// Missing cells are off; cells past width are dropped.
func resizeRow(row []bool, width int) []bool {
	out := make([]bool, width)
	copy(out, row)
	return out
}
