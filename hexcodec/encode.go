package hexcodec

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/glyphgrid/glyph"
)

// Encode returns the token text for b: the low plane, followed by a line
// break and the high plane when b is wide.
func Encode(b *glyph.Buffer) string {
	return EncodeGrid(b.Grid(), b.Width())
}

// EncodeGrid encodes the planes a glyph width columns wide needs.
func EncodeGrid(g [][]bool, width int) string {
	var sb strings.Builder
	for p := 0; p < glyph.Planes(width); p++ {
		if p > 0 {
			sb.WriteByte('\n')
		}
		writePlane(&sb, g, Plane(p))
	}
	return sb.String()
}

// EncodePlane returns one line of comma-joined tokens, one per row of g.
// Columns missing from a row encode as off.
func EncodePlane(g [][]bool, p Plane) string {
	var sb strings.Builder
	writePlane(&sb, g, p)
	return sb.String()
}

// RowByte packs columns [off, off+8) of row, leftmost column in the MSB.
func RowByte(row []bool, off int) byte {
	var v byte
	for i := 0; i < PlaneWidth; i++ {
		v <<= 1
		if x := off + i; x < len(row) && row[x] {
			v |= 1
		}
	}
	return v
}

// Token formats v as "{0xHH}" with minimal lowercase digits.
func Token(v byte) string {
	return "{0x" + strconv.FormatUint(uint64(v), 16) + "}"
}

func writePlane(sb *strings.Builder, g [][]bool, p Plane) {
	off := p.Offset()
	for y, row := range g {
		if y > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Token(RowByte(row, off)))
	}
}
