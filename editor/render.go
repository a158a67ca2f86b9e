package editor

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/glyphgrid/internal/cells"
)

const statusLines = 1

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	st := m.cfg.Style
	cw, ch := m.cellWidth(), m.cellHeight()
	on := cells.Fit(m.cfg.OnCell, cw)
	off := cells.Fit(m.cfg.OffCell, cw)
	blankGutter := strings.Repeat(" ", m.gutterWidth())

	out := make([]string, 0, m.headerLines()+m.buf.Height()*ch)
	if m.showOffsets {
		var sb strings.Builder
		sb.WriteString(st.Ruler.Render(blankGutter))
		for x := 0; x < m.buf.Width(); x++ {
			sb.WriteString(st.Ruler.Render(rulerLabel(x, cw)))
		}
		out = append(out, sb.String())
	}

	for y := 0; y < m.buf.Height(); y++ {
		for line := 0; line < ch; line++ {
			var sb strings.Builder
			if m.showOffsets {
				label := blankGutter
				if line == 0 {
					label = rulerLabel(y, cw)
				}
				sb.WriteString(st.Ruler.Render(label))
			}
			for x := 0; x < m.buf.Width(); x++ {
				cell, style := off, st.Off
				if m.buf.At(x, y) {
					cell, style = on, st.On
				}
				if m.focused && x == m.cursor.X && y == m.cursor.Y {
					style = st.Cursor.Inherit(style)
				}
				sb.WriteString(style.Render(cell))
			}
			out = append(out, sb.String())
		}
	}
	return strings.Join(out, "\n")
}

// rulerLabel left-aligns the decimal offset i in w cells.
func rulerLabel(i, w int) string {
	return cells.PadRight(cells.Truncate(strconv.Itoa(i), w, ""), w)
}
