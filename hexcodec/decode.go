package hexcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/glyphgrid/glyph"
)

// DecodePlane parses one line of tokens into a grid of PlaneWidth columns,
// one row per comma-separated token.
//
// Braces are optional and ignored, as is whitespace around a token. A token
// is a hexadecimal byte with or without a 0x prefix.
func DecodePlane(text string) ([][]bool, error) {
	return decodeLine(text, 1)
}

// Decode parses token text for a glyph width columns wide.
//
// A narrow glyph takes exactly one line. A wide glyph takes the low plane
// line and, normally, the high plane line; the two must have the same number
// of tokens. A wide glyph given only a low plane gets blank columns 8-15.
// Line endings may be "\n", "\r\n" or "\r" and trailing line breaks are
// ignored.
func Decode(text string, width int) ([][]bool, error) {
	if !glyph.ValidWidth(width) {
		return nil, fmt.Errorf("decode width %d: %w", width, glyph.ErrInvalidDimension)
	}

	lines := splitLines(text)
	planes := glyph.Planes(width)
	if len(lines) > planes {
		return nil, &ParseError{
			Line:  planes + 1,
			Index: -1,
			Msg:   fmt.Sprintf("%d-pixel glyph takes %d token line(s), got %d", width, planes, len(lines)),
		}
	}

	grid := glyph.NewGrid(width, 0)
	for i, line := range lines {
		plane, err := decodeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			grid = glyph.NewGrid(width, len(plane))
		} else if len(plane) != len(grid) {
			return nil, &ParseError{
				Line:  i + 1,
				Index: -1,
				Msg:   fmt.Sprintf("%s plane has %d rows, low plane has %d", Plane(i), len(plane), len(grid)),
			}
		}
		off := Plane(i).Offset()
		for y, row := range plane {
			copy(grid[y][off:], row)
		}
	}
	return grid, nil
}

// Import decodes text at b's width and replaces b's pixels with the result.
// Any failure leaves b unchanged.
func Import(b *glyph.Buffer, text string) error {
	grid, err := Decode(text, b.Width())
	if err != nil {
		return err
	}
	return b.SetGrid(grid)
}

// ParseToken parses a single token such as "{0x1f}", "0x1f" or "1f".
func ParseToken(tok string) (byte, error) {
	return parseToken(stripBraces(tok), 1, 0)
}

func decodeLine(text string, line int) ([][]bool, error) {
	fields := strings.Split(stripBraces(text), ",")
	out := make([][]bool, 0, len(fields))
	for i, f := range fields {
		v, err := parseToken(f, line, i)
		if err != nil {
			return nil, err
		}
		out = append(out, byteRow(v))
	}
	return out, nil
}

func parseToken(tok string, line, index int) (byte, error) {
	s := strings.TrimSpace(tok)
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" {
		return 0, &ParseError{Line: line, Index: index, Token: s, Msg: "missing hex digits"}
	}
	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		msg := "not a hexadecimal literal"
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			if errors.Is(ne.Err, strconv.ErrRange) {
				msg = "value exceeds 0xff"
			}
			err = ne.Err
		}
		return 0, &ParseError{Line: line, Index: index, Token: s, Msg: msg, Err: err}
	}
	return byte(v), nil
}

// byteRow unpacks v into PlaneWidth cells, MSB first.
func byteRow(v byte) []bool {
	row := make([]bool, PlaneWidth)
	for i := 0; i < PlaneWidth; i++ {
		row[i] = v>>(PlaneWidth-1-i)&1 == 1
	}
	return row
}

func stripBraces(s string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(s)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.Split(text, "\n")
}
