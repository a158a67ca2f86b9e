// glyphgrid is a terminal editor for 8- and 16-pixel-wide bitmap glyphs.
//
// Draw with the arrow keys and space (or the mouse), then press ctrl+c to
// copy the glyph as firmware font table bytes:
//
//	{0x0},{0x0},{0x18},{0x24},{0x42},{0x42},{0x7e},{0x42},{0x42},...
//
// ctrl+v imports the same text back. Run with -print to decode text given
// with -import and print it without starting the editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/glyphgrid"
	"github.com/iw2rmb/glyphgrid/editor"
	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

type options struct {
	wide     bool
	height   int
	zoom     int
	offsets  bool
	text     string
	print    bool
	ascii    bool
	logPath  string
	logLevel string
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("glyphgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opt.wide, "wide", false, "start with a 16 pixel wide glyph")
	fs.IntVar(&opt.height, "height", glyph.DefaultHeight, "glyph height in pixels")
	fs.IntVar(&opt.zoom, "zoom", editor.MinZoom, "pixel size")
	fs.BoolVar(&opt.offsets, "offsets", false, "show row and column offsets")
	fs.StringVar(&opt.text, "import", "", "glyph text to start from, e.g. {0x18},{0x24}")
	fs.BoolVar(&opt.print, "print", false, "print the -import glyph and exit")
	fs.BoolVar(&opt.ascii, "ascii", false, "disable colors")
	fs.StringVar(&opt.logPath, "log", "", "append logs to this file")
	fs.StringVar(&opt.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if opt.height <= 0 {
		return opt, fmt.Errorf("-height %d: %w", opt.height, glyph.ErrInvalidDimension)
	}
	if opt.print && opt.text == "" {
		return opt, errors.New("-print needs -import")
	}
	return opt, nil
}

func (o options) width() int {
	if o.wide {
		return glyph.Wide
	}
	return glyph.Narrow
}

func newLogger(path, level string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(io.Discard)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)
	if path == "" {
		return log, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}

// printGlyph writes b as rows of 'X' and '.', followed by its token text.
func printGlyph(w io.Writer, b *glyph.Buffer) error {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(hexcodec.Encode(b))
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opt.version {
		_, err := fmt.Fprintln(stdout, glyphgrid.Name, glyphgrid.VersionTag())
		return err
	}
	if opt.print {
		b, err := glyph.New(opt.width(), opt.height)
		if err != nil {
			return err
		}
		if err := hexcodec.Import(b, opt.text); err != nil {
			return err
		}
		return printGlyph(stdout, b)
	}

	log, closeLog, err := newLogger(opt.logPath, opt.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if opt.ascii {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log.WithFields(logrus.Fields{
		"version": glyphgrid.Version(),
		"width":   opt.width(),
		"height":  opt.height,
		"zoom":    opt.zoom,
	}).Info("starting editor")

	p := tea.NewProgram(newModel(opt, log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("editor stopped")
		return err
	}
	log.Info("editor closed")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
