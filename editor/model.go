package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

// Model is a Bubble Tea component that renders and edits one glyph.
type Model struct {
	cfg Config
	buf *glyph.Buffer

	cursor      glyph.Pos
	zoom        int
	showOffsets bool
	focused     bool

	width    int
	viewport viewport.Model

	message string
	err     error

	painting   bool
	paintValue bool

	lastBufVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	// Dimensions are normalized above, so New cannot fail here.
	buf, _ := glyph.New(cfg.Width, cfg.Height)

	m := Model{
		cfg:         cfg,
		buf:         buf,
		zoom:        cfg.Zoom,
		showOffsets: cfg.ShowOffsets,
		focused:     true,
		viewport:    viewport.New(0, 0),
	}
	if cfg.Text != "" {
		if err := hexcodec.Import(buf, cfg.Text); err != nil {
			m.setError("Import Error", err)
		}
	}
	m.lastBufVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *glyph.Buffer { return m.buf }

func (m Model) Cursor() glyph.Pos { return m.cursor }

func (m Model) Zoom() int { return m.zoom }

func (m Model) ShowOffsets() bool { return m.showOffsets }

// Err returns the error reported by the last intent, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. The last row is used by the status line.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-statusLines, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

// SetZoom sets the pixel size, clamped to [MinZoom, MaxZoom].
func (m Model) SetZoom(level int) Model {
	m.zoom = clampInt(level, MinZoom, MaxZoom)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.painting = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	follow := false
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
		follow = true
	case tea.MouseMsg:
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m, cmd = m.updateMouse(msg)
	}

	// The host may have mutated the buffer directly.
	m.syncFromBuffer()
	m.rebuildContent()
	if follow {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	m.lastBufVersion = ver
	m.cursor = glyph.ClampPos(m.cursor, m.buf.Width(), m.buf.Height())
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	top := m.headerLines() + m.cursor.Y*m.zoom
	bottom := top + m.zoom - 1
	y := m.viewport.YOffset
	if top < y {
		m.viewport.SetYOffset(top)
		return
	}
	if bottom >= y+h {
		m.viewport.SetYOffset(bottom - h + 1)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
