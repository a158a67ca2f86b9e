// Package hexcodec converts glyph pixel grids to and from hex-token text.
//
// Each row of a plane is one token "{0xHH}" whose most significant bit is the
// plane's leftmost column. Tokens of a plane are joined with "," on a single
// line. Narrow glyphs have one plane (columns 0-7); wide glyphs add a second
// line holding the high plane (columns 8-15):
//
//	{0x0},{0x18},{0x24},{0x42},{0x7e},{0x42},{0x42},{0x0}
//
// This is the layout firmware font tables such as EFI_NARROW_GLYPH and
// EFI_WIDE_GLYPH are filled from, so the output must stay bit-for-bit stable.
package hexcodec
