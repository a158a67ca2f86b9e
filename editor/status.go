package editor

import (
	"fmt"

	"github.com/iw2rmb/glyphgrid/internal/cells"
)

// Status returns the unstyled status line text.
func (m Model) Status() string {
	if m.buf == nil {
		return ""
	}
	s := fmt.Sprintf("Width = %d Height = %d", m.buf.Width(), m.buf.Height())
	if m.message != "" {
		s += "  " + m.message
	}
	return s
}

func (m Model) renderStatus() string {
	s := m.Status()
	if m.width > 0 {
		s = cells.Truncate(s, m.width, "…")
	}
	if m.err != nil {
		return m.cfg.Style.Error.Render(s)
	}
	return m.cfg.Style.Status.Render(s)
}
