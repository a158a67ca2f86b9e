// Package glyphgrid is a bitmap glyph editor for firmware font tables.
//
// The glyph package holds the pixel grid, hexcodec converts it to and from
// the {0xHH} token text, and editor is the Bubble Tea component that draws it.
package glyphgrid

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

// Name is the program name shown in the about text.
const Name = "glyphgrid"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release in SemVer form, without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version prefixed with `v`, matching the git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// About returns the one-paragraph description shown by the editor's about key.
func About() string {
	return fmt.Sprintf("%s %s: draw narrow (8 pixel) and wide (16 pixel) glyphs and copy them as firmware font table bytes.", Name, VersionTag())
}
