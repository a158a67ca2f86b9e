package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainConfig() Config {
	return Config{OnCell: "#", OffCell: "."}
}

func TestRender_PixelsAtZoomOne(t *testing.T) {
	cfg := plainConfig()
	cfg.Height = 2
	cfg.Text = "{0xc1},{0x0}"
	m := New(cfg).Blur()

	want := strings.Join([]string{
		"####..........##",
		"................",
	}, "\n")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ZoomRepeatsRows(t *testing.T) {
	cfg := plainConfig()
	cfg.Height = 1
	cfg.Zoom = 2
	cfg.Text = "{0x80}"
	m := New(cfg).Blur()

	row := "####" + strings.Repeat("....", 7)
	if got, want := m.renderContent(), row+"\n"+row; got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_OffsetsRuler(t *testing.T) {
	cfg := plainConfig()
	cfg.Height = 2
	cfg.ShowOffsets = true
	cfg.Text = "{0x1},{0x0}"
	m := New(cfg).Blur()

	want := strings.Join([]string{
		"  0 1 2 3 4 5 6 7 ",
		"0 ..............##",
		"1 ................",
	}, "\n")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_WideRulerLabels(t *testing.T) {
	cfg := plainConfig()
	cfg.Width = 16
	cfg.Height = 1
	cfg.ShowOffsets = true
	m := New(cfg).Blur()

	header := strings.Split(m.renderContent(), "\n")[0]
	if want := "  0 1 2 3 4 5 6 7 8 9 101112131415"; header != want {
		t.Fatalf("wide header:\n got: %q\nwant: %q", header, want)
	}
}

func TestRender_CursorUsesCursorStyle(t *testing.T) {
	cfg := plainConfig()
	cfg.Height = 1
	cfg.Style = Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)}
	m := New(cfg)

	if got, want := m.renderContent(), " "+strings.Repeat(".", 16); got != want {
		t.Fatalf("cursor render:\n got: %q\nwant: %q", got, want)
	}

	m = m.Blur()
	if got, want := m.renderContent(), strings.Repeat(".", 16); got != want {
		t.Fatalf("blurred render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatus_ErrorStyleFollowsColorProfile(t *testing.T) {
	for _, tc := range []struct {
		name     string
		profile  termenv.Profile
		wantANSI bool
	}{
		{name: "ansi256", profile: termenv.ANSI256, wantANSI: true},
		{name: "ascii", profile: termenv.Ascii, wantANSI: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := lipgloss.NewRenderer(io.Discard)
			r.SetColorProfile(tc.profile)

			cfg := plainConfig()
			cfg.Height = 1
			cfg.Text = "{0xzz}"
			cfg.Style = Style{Error: r.NewStyle().Foreground(lipgloss.Color("203"))}
			m := New(cfg)
			if m.Err() == nil {
				t.Fatalf("expected import error")
			}

			got := m.renderStatus()
			if has := strings.Contains(got, "\x1b["); has != tc.wantANSI {
				t.Fatalf("escape sequences: got %v, want %v (status %q)", has, tc.wantANSI, got)
			}
			if !strings.Contains(got, "Import Error") {
				t.Fatalf("status %q does not mention the import error", got)
			}
		})
	}
}
