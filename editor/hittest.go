package editor

import "github.com/iw2rmb/glyphgrid/glyph"

// cellWidth is the number of terminal columns one pixel spans.
func (m *Model) cellWidth() int { return 2 * m.zoom }

// cellHeight is the number of terminal rows one pixel spans.
func (m *Model) cellHeight() int { return m.zoom }

// gutterWidth is the width of the row ruler, zero when offsets are hidden.
func (m *Model) gutterWidth() int {
	if !m.showOffsets {
		return 0
	}
	return m.cellWidth()
}

// headerLines is the height of the column ruler, zero when offsets are hidden.
func (m *Model) headerLines() int {
	if !m.showOffsets {
		return 0
	}
	return 1
}

// screenToPixel maps viewport-local mouse coordinates to a pixel.
//
// (0,0) is the top-left of the visible content region. ok is false for
// ruler cells and for points past the glyph.
func (m *Model) screenToPixel(x, y int) (p glyph.Pos, ok bool) {
	if m.buf == nil || x < 0 || y < 0 {
		return glyph.Pos{}, false
	}
	cx := x - m.gutterWidth()
	cy := y + m.viewport.YOffset - m.headerLines()
	if cx < 0 || cy < 0 {
		return glyph.Pos{}, false
	}
	p = glyph.Pos{X: cx / m.cellWidth(), Y: cy / m.cellHeight()}
	if !m.buf.InBounds(p.X, p.Y) {
		return glyph.Pos{}, false
	}
	return p, true
}

// pixelToScreen maps a pixel to the viewport-local coordinates of its
// top-left terminal cell. ok is false when that cell is scrolled out of view.
func (m *Model) pixelToScreen(p glyph.Pos) (x, y int, ok bool) {
	if m.buf == nil || !m.buf.InBounds(p.X, p.Y) {
		return 0, 0, false
	}
	x = m.gutterWidth() + p.X*m.cellWidth()
	y = m.headerLines() + p.Y*m.cellHeight() - m.viewport.YOffset
	if y < 0 || (m.viewport.Height > 0 && y >= m.viewport.Height) {
		return x, y, false
	}
	return x, y, true
}
