package editor

import "github.com/iw2rmb/glyphgrid/glyph"

// MutationMode controls whether input handling mutates the local glyph,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInEditor applies every intent locally and never calls OnIntent.
	MutateInEditor MutationMode = iota
	// EmitIntentsOnly emits intents and does not apply them locally.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and applies them locally when the
	// host decision allows it.
	EmitIntentsAndMutate
)

// IntentKind identifies the action requested by input handling.
type IntentKind uint8

const (
	IntentToggle IntentKind = iota
	IntentPaint
	IntentMove
	IntentSetWidth
	IntentZoom
	IntentOffsets
	IntentClear
	IntentExport
	IntentImport
)

func (k IntentKind) String() string {
	switch k {
	case IntentToggle:
		return "toggle"
	case IntentPaint:
		return "paint"
	case IntentMove:
		return "move"
	case IntentSetWidth:
		return "set-width"
	case IntentZoom:
		return "zoom"
	case IntentOffsets:
		return "offsets"
	case IntentClear:
		return "clear"
	case IntentExport:
		return "export"
	case IntentImport:
		return "import"
	default:
		return "unknown"
	}
}

// mutates reports whether applying k changes glyph pixels or shape.
func (k IntentKind) mutates() bool {
	switch k {
	case IntentToggle, IntentPaint, IntentSetWidth, IntentClear, IntentImport:
		return true
	default:
		return false
	}
}

// EditorState captures editor state before an intent is executed.
type EditorState struct {
	Version uint64
	Width   int
	Height  int
	Cursor  glyph.Pos
	Zoom    int
}

// Intent is a typed action emitted from key or mouse processing.
type Intent struct {
	Kind    IntentKind
	Before  EditorState
	Payload any
}

// IntentBatch groups intents produced from one input event.
type IntentBatch struct {
	Intents []Intent
}

// IntentDecision controls whether the editor applies intents locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

// TogglePayload flips the pixel at Pos.
type TogglePayload struct {
	Pos glyph.Pos
}

// PaintPayload sets the pixel at Pos to On (mouse drag).
type PaintPayload struct {
	Pos glyph.Pos
	On  bool
}

// MovePayload moves the cell cursor to Pos.
type MovePayload struct {
	Pos glyph.Pos
}

// SetWidthPayload switches the glyph to Width columns.
type SetWidthPayload struct {
	Width int
}

// ZoomPayload sets the zoom level.
type ZoomPayload struct {
	Level int
}

// OffsetsPayload shows or hides the ruler.
type OffsetsPayload struct {
	Show bool
}

// ClearPayload marks a clear request.
type ClearPayload struct{}

// ExportPayload carries the encoded glyph about to be written to the clipboard.
type ExportPayload struct {
	Text string
}

// ImportPayload carries text read from the clipboard or pasted.
type ImportPayload struct {
	Text string
}

func (m *Model) editorState() EditorState {
	if m.buf == nil {
		return EditorState{}
	}
	return EditorState{
		Version: m.buf.Version(),
		Width:   m.buf.Width(),
		Height:  m.buf.Height(),
		Cursor:  m.cursor,
		Zoom:    m.zoom,
	}
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInEditor, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInEditor
	}
}
