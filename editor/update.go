package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphgrid"
	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events carry glyph text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.dispatch(m.intent(IntentImport, ImportPayload{Text: normalizeNewlines(string(msg.Runes))}))
		return m, nil
	}

	km := m.cfg.KeyMap
	cur := m.cursor

	switch {
	case key.Matches(msg, km.Left):
		m.moveCursor(glyph.Pos{X: cur.X - 1, Y: cur.Y})
	case key.Matches(msg, km.Right):
		m.moveCursor(glyph.Pos{X: cur.X + 1, Y: cur.Y})
	case key.Matches(msg, km.Up):
		m.moveCursor(glyph.Pos{X: cur.X, Y: cur.Y - 1})
	case key.Matches(msg, km.Down):
		m.moveCursor(glyph.Pos{X: cur.X, Y: cur.Y + 1})

	case key.Matches(msg, km.Toggle):
		m.dispatch(m.intent(IntentToggle, TogglePayload{Pos: cur}))
	case key.Matches(msg, km.Wide):
		next := glyph.Wide
		if m.buf.Width() == glyph.Wide {
			next = glyph.Narrow
		}
		m.dispatch(m.intent(IntentSetWidth, SetWidthPayload{Width: next}))

	case key.Matches(msg, km.ZoomIn):
		if m.zoom < MaxZoom {
			m.dispatch(m.intent(IntentZoom, ZoomPayload{Level: m.zoom + 1}))
		}
	case key.Matches(msg, km.ZoomOut):
		if m.zoom > MinZoom {
			m.dispatch(m.intent(IntentZoom, ZoomPayload{Level: m.zoom - 1}))
		}
	case key.Matches(msg, km.Offsets):
		m.dispatch(m.intent(IntentOffsets, OffsetsPayload{Show: !m.showOffsets}))
	case key.Matches(msg, km.Clear):
		m.dispatch(m.intent(IntentClear, ClearPayload{}))

	case key.Matches(msg, km.Export):
		m.dispatch(m.intent(IntentExport, ExportPayload{Text: hexcodec.Encode(m.buf)}))
	case key.Matches(msg, km.Import):
		m.importClipboard()
	case key.Matches(msg, km.About):
		m.setMessage(glyphgrid.About())
	}

	return m, nil
}

func (m *Model) moveCursor(p glyph.Pos) {
	next := glyph.ClampPos(p, m.buf.Width(), m.buf.Height())
	if next == m.cursor {
		return
	}
	m.dispatch(m.intent(IntentMove, MovePayload{Pos: next}))
}

func (m *Model) importClipboard() {
	if m.cfg.Clipboard == nil {
		m.setError("Import Error", errNoClipboard)
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.setError("Import Error", err)
		return
	}
	m.dispatch(m.intent(IntentImport, ImportPayload{Text: normalizeNewlines(s)}))
}

// normalizeNewlines converts line endings from external sources to "\n".
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
