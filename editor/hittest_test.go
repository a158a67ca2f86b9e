package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphgrid/glyph"
)

func TestHitTest_ZoomOneNoOffsets(t *testing.T) {
	m := New(Config{})

	cases := []struct {
		x, y int
		want glyph.Pos
		ok   bool
	}{
		{x: 0, y: 0, want: glyph.Pos{X: 0, Y: 0}, ok: true},
		{x: 1, y: 0, want: glyph.Pos{X: 0, Y: 0}, ok: true},
		{x: 2, y: 0, want: glyph.Pos{X: 1, Y: 0}, ok: true},
		{x: 15, y: 18, want: glyph.Pos{X: 7, Y: 18}, ok: true},
		{x: 16, y: 0, ok: false},
		{x: 0, y: 19, ok: false},
		{x: -1, y: 0, ok: false},
	}
	for _, tc := range cases {
		got, ok := m.screenToPixel(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("screenToPixel(%d,%d): got (%v,%v), want (%v,%v)", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHitTest_OffsetsSkipRuler(t *testing.T) {
	m := New(Config{ShowOffsets: true})

	if _, ok := m.screenToPixel(1, 3); ok {
		t.Fatalf("click in row ruler should not hit a pixel")
	}
	if _, ok := m.screenToPixel(5, 0); ok {
		t.Fatalf("click in column ruler should not hit a pixel")
	}
	if got, ok := m.screenToPixel(2, 1); !ok || got != (glyph.Pos{}) {
		t.Fatalf("first pixel: got (%v,%v), want ((0,0),true)", got, ok)
	}
}

func TestHitTest_ZoomAndYOffset(t *testing.T) {
	m := New(Config{Zoom: 2})
	m.viewport.YOffset = 2

	got, ok := m.screenToPixel(4, 0)
	if want := (glyph.Pos{X: 1, Y: 1}); !ok || got != want {
		t.Fatalf("screenToPixel(4,0) with yoffset=2: got (%v,%v), want (%v,true)", got, ok, want)
	}

	x, y, ok := m.pixelToScreen(glyph.Pos{X: 3, Y: 2})
	if !ok || x != 12 || y != 2 {
		t.Fatalf("pixelToScreen((3,2)): got (%d,%d,%v), want (12,2,true)", x, y, ok)
	}
	if _, _, ok := m.pixelToScreen(glyph.Pos{X: 0, Y: 0}); ok {
		t.Fatalf("pixel scrolled above the viewport should not be visible")
	}
}

func TestHitTest_RoundTrip(t *testing.T) {
	m := New(Config{Width: glyph.Wide, Zoom: 3, ShowOffsets: true})
	for y := 0; y < m.Buffer().Height(); y++ {
		for x := 0; x < m.Buffer().Width(); x++ {
			sx, sy, ok := m.pixelToScreen(glyph.Pos{X: x, Y: y})
			if !ok {
				t.Fatalf("pixelToScreen((%d,%d)) not visible", x, y)
			}
			got, ok := m.screenToPixel(sx+m.cellWidth()-1, sy+m.cellHeight()-1)
			if !ok || got != (glyph.Pos{X: x, Y: y}) {
				t.Fatalf("round trip (%d,%d): got (%v,%v)", x, y, got, ok)
			}
		}
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickTogglesAndDragPaints(t *testing.T) {
	m := New(Config{Height: 4})
	m = m.SetSize(40, 10)

	m = press(m, mouse(tea.MouseActionPress, 2, 1))
	if !m.Buffer().At(1, 1) {
		t.Fatalf("click at (2,1) should turn pixel (1,1) on")
	}
	if got, want := m.Cursor(), (glyph.Pos{X: 1, Y: 1}); got != want {
		t.Fatalf("cursor after click: got %v, want %v", got, want)
	}

	m = press(m, mouse(tea.MouseActionMotion, 4, 1), mouse(tea.MouseActionMotion, 6, 2))
	if !m.Buffer().At(2, 1) || !m.Buffer().At(3, 2) {
		t.Fatalf("drag should paint pixels on: %v", m.Buffer().Grid())
	}

	m = press(m, mouse(tea.MouseActionRelease, 6, 2), mouse(tea.MouseActionMotion, 8, 3))
	if m.Buffer().At(4, 3) {
		t.Fatalf("motion after release should not paint")
	}
	if got, want := m.Buffer().Count(), 3; got != want {
		t.Fatalf("pixels on: got %d, want %d", got, want)
	}

	// Pressing an on pixel erases while dragging.
	m = press(m, mouse(tea.MouseActionPress, 2, 1), mouse(tea.MouseActionMotion, 4, 1))
	if m.Buffer().At(1, 1) || m.Buffer().At(2, 1) {
		t.Fatalf("erase drag should turn pixels off: %v", m.Buffer().Grid())
	}
}

func TestMouse_IgnoresOtherButtonsAndOutside(t *testing.T) {
	m := New(Config{Height: 2})
	m = m.SetSize(40, 10)

	m = press(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = press(m, mouse(tea.MouseActionPress, 30, 0))
	m = press(m, mouse(tea.MouseActionPress, 0, 5))
	if got := m.Buffer().Count(); got != 0 {
		t.Fatalf("pixels on: got %d, want 0", got)
	}
}
