package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/iw2rmb/glyphgrid"
	"github.com/iw2rmb/glyphgrid/editor"
	"github.com/iw2rmb/glyphgrid/glyph"
	"github.com/iw2rmb/glyphgrid/hexcodec"
)

func TestRun_PrintNarrow(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-print", "-height", "2", "-import", "{0xe0},{0x81}"}, &out, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "XXX.....\nX......X\n{0xe0},{0x81}\n"
	if got := out.String(); got != want {
		t.Fatalf("print output:\n got: %q\nwant: %q", got, want)
	}
}

func TestRun_PrintWide(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-print", "-wide", "-height", "1", "-import", "{0x1}\n{0x80}"}, &out, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := ".......XX.......\n{0x1}\n{0x80}\n"
	if got := out.String(); got != want {
		t.Fatalf("print output:\n got: %q\nwant: %q", got, want)
	}
}

func TestRun_PrintParseError(t *testing.T) {
	err := run([]string{"-print", "-height", "1", "-import", "{0xzz}"}, io.Discard, io.Discard)
	if !errors.Is(err, hexcodec.ErrParse) {
		t.Fatalf("err: got %v, want %v", err, hexcodec.ErrParse)
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-version"}, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), glyphgrid.Name+" "+glyphgrid.VersionTag(); got != want {
		t.Fatalf("version output: got %q, want %q", got, want)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	if _, err := parseFlags([]string{"-height", "0"}, io.Discard); !errors.Is(err, glyph.ErrInvalidDimension) {
		t.Fatalf("height 0 err: got %v, want %v", err, glyph.ErrInvalidDimension)
	}
	if _, err := parseFlags([]string{"-print"}, io.Discard); err == nil {
		t.Fatalf("-print without -import should fail")
	}
	opt, err := parseFlags([]string{"-wide", "-zoom", "3"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.width() != glyph.Wide || opt.zoom != 3 || opt.height != glyph.DefaultHeight {
		t.Fatalf("options: got %+v", opt)
	}
}

func TestNewLogger_RejectsBadLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLogIntents_AppliesLocally(t *testing.T) {
	log, closeLog, err := newLogger("", "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()

	decide := logIntents(log)
	d := decide(editor.IntentBatch{Intents: []editor.Intent{
		{Kind: editor.IntentExport, Payload: editor.ExportPayload{Text: "{0x0}"}},
		{Kind: editor.IntentToggle, Payload: editor.TogglePayload{}},
	}})
	if !d.ApplyLocally {
		t.Fatalf("intents should apply locally")
	}
}
