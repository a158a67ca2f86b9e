package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, cmd
	}

	// Only left button interactions draw.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		p, ok := m.screenToPixel(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		// Dragging after the press paints the value the press produced.
		m.paintValue = !m.buf.At(p.X, p.Y)
		m.painting = true
		m.dispatch(m.intent(IntentToggle, TogglePayload{Pos: p}))

	case tea.MouseActionMotion:
		if !m.painting {
			return m, cmd
		}
		p, ok := m.screenToPixel(msg.X, msg.Y)
		if !ok || m.buf.At(p.X, p.Y) == m.paintValue {
			return m, cmd
		}
		m.dispatch(m.intent(IntentPaint, PaintPayload{Pos: p, On: m.paintValue}))

	case tea.MouseActionRelease:
		m.painting = false
	}

	return m, cmd
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
