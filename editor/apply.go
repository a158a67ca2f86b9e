package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

var (
	errNoClipboard = errors.New("no clipboard configured")
	errReadOnly    = errors.New("glyph is read-only")
)

// dispatch routes intents according to the mutation mode.
func (m *Model) dispatch(intents ...Intent) {
	if len(intents) == 0 {
		return
	}
	switch m.cfg.MutationMode {
	case EmitIntentsOnly:
		m.emit(intents)
	case EmitIntentsAndMutate:
		if m.emit(intents).ApplyLocally {
			m.applyAll(intents)
		}
	default:
		m.applyAll(intents)
	}
}

func (m *Model) emit(intents []Intent) IntentDecision {
	if m.cfg.OnIntent == nil {
		return IntentDecision{ApplyLocally: true}
	}
	batch := IntentBatch{Intents: append([]Intent(nil), intents...)}
	return m.cfg.OnIntent(batch)
}

func (m *Model) applyAll(intents []Intent) {
	for _, in := range intents {
		m.apply(in)
	}
}

func (m *Model) apply(in Intent) {
	if m.buf == nil {
		return
	}
	if m.cfg.ReadOnly && in.Kind.mutates() {
		m.setError(in.Kind.String(), errReadOnly)
		return
	}

	switch p := in.Payload.(type) {
	case TogglePayload:
		if err := m.buf.Toggle(p.Pos.X, p.Pos.Y); err != nil {
			m.setError("Toggle Error", err)
			return
		}
		m.cursor = p.Pos
		m.clearMessage()

	case PaintPayload:
		if err := m.buf.Set(p.Pos.X, p.Pos.Y, p.On); err != nil {
			m.setError("Paint Error", err)
			return
		}
		m.cursor = p.Pos
		m.clearMessage()

	case MovePayload:
		m.cursor = glyph.ClampPos(p.Pos, m.buf.Width(), m.buf.Height())

	case SetWidthPayload:
		prev, err := m.buf.SetWidth(p.Width)
		if err != nil {
			m.setError("Width Error", err)
			return
		}
		m.cursor = glyph.ClampPos(m.cursor, m.buf.Width(), m.buf.Height())
		if prev != m.buf.Width() {
			m.setMessage(fmt.Sprintf("switched from %d to %d pixels wide", prev, m.buf.Width()))
		}

	case ZoomPayload:
		m.zoom = clampInt(p.Level, MinZoom, MaxZoom)

	case OffsetsPayload:
		m.showOffsets = p.Show

	case ClearPayload:
		m.buf.Clear()
		m.setMessage("cleared")

	case ExportPayload:
		if m.cfg.Clipboard == nil {
			m.setError("Export Error", errNoClipboard)
			return
		}
		if err := m.cfg.Clipboard.WriteText(p.Text); err != nil {
			m.setError("Export Error", err)
			return
		}
		m.setMessage(fmt.Sprintf("copied %d rows to clipboard", m.buf.Height()))

	case ImportPayload:
		if err := hexcodec.Import(m.buf, p.Text); err != nil {
			m.setError("Import Error", err)
			return
		}
		m.setMessage("imported from clipboard")
	}
}

// intent builds an Intent capturing the current editor state.
func (m *Model) intent(kind IntentKind, payload any) Intent {
	return Intent{Kind: kind, Before: m.editorState(), Payload: payload}
}

func (m *Model) setMessage(s string) {
	m.message = s
	m.err = nil
}

func (m *Model) setError(title string, err error) {
	m.err = err
	m.message = title + ": " + err.Error()
}

func (m *Model) clearMessage() {
	m.message = ""
	m.err = nil
}
