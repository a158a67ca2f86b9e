package editor

import (
	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

// ChangeEvent describes the glyph after an effective mutation.
type ChangeEvent struct {
	Version uint64
	Width   int
	Height  int
	Grid    [][]bool

	// Text is the glyph in hex-token form, as export would write it.
	Text string
}

func buildChangeEvent(b *glyph.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Width:   b.Width(),
		Height:  b.Height(),
		Grid:    b.Grid(),
		Text:    hexcodec.Encode(b),
	}
}
