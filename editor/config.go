package editor

import "github.com/iw2rmb/glyphgrid/glyph"

const (
	MinZoom = 1
	MaxZoom = 8

	defaultOnCell  = "█"
	defaultOffCell = "."
)

// Config configures the editor Model.
type Config struct {
	// Glyph shape. Width must be glyph.Narrow or glyph.Wide; zero values
	// select glyph.Narrow and glyph.DefaultHeight.
	Width  int
	Height int

	// Text, when set, is imported into the new glyph. An import failure leaves
	// the glyph blank and is reported in the status line.
	Text string

	// Zoom is the pixel size: one pixel spans 2*Zoom columns and Zoom rows.
	Zoom        int
	ShowOffsets bool

	// OnCell and OffCell are repeated to fill a pixel.
	OnCell  string
	OffCell string

	Style    Style
	KeyMap   KeyMap
	ReadOnly bool

	// Clipboard backs export and import. Without it both report an error.
	Clipboard Clipboard

	MutationMode MutationMode
	// OnIntent is called for every intent batch in EmitIntentsOnly and
	// EmitIntentsAndMutate modes.
	OnIntent func(IntentBatch) IntentDecision
	// OnChange is called once per effective glyph mutation.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if !glyph.ValidWidth(cfg.Width) {
		cfg.Width = glyph.Narrow
	}
	if cfg.Height <= 0 {
		cfg.Height = glyph.DefaultHeight
	}
	cfg.Zoom = clampInt(cfg.Zoom, MinZoom, MaxZoom)
	if cfg.OnCell == "" {
		cfg.OnCell = defaultOnCell
	}
	if cfg.OffCell == "" {
		cfg.OffCell = defaultOffCell
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	cfg.MutationMode = normalizeMutationMode(cfg.MutationMode)
	return cfg
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
