// Package font renders the sign's fixed 5-column glyphs into a frame
// buffer and computes text layout for the three alignments.
package font

import (
	"github.com/BeatGlow/signboard/frame"
)

const (
	// Pitch is the column width of one rendered character, including
	// inter-character spacing.
	Pitch = 5

	// MaxChars is the number of whole characters that fit on screen.
	MaxChars = frame.Columns / Pitch

	// First and Last bound the printable range of the font table.
	First = 0x20
	Last  = 0x7f

	// Unknown is the glyph substituted for codes outside [First, Last].
	Unknown = 0x7f
)

// Column returns the raw font column i of the glyph for code. Bit 0 is
// the top display row. Codes outside the table range resolve to the
// unknown glyph; column indexes outside [0, Pitch) return a blank
// column.
func Column(code byte, i int) byte {
	if i < 0 || i >= Pitch {
		return 0
	}
	if code < First || code > Last {
		code = Unknown
	}
	return glyphs[code-First][i]
}

// DrawChar paints the glyph for code with its leftmost column at col.
// Inverse swaps lit and dark pixels. Columns outside the buffer clip
// silently through SetPixel, so glyphs may hang off either edge.
func DrawChar(b *frame.Buffer, col int, code byte, inverse bool) {
	for i := 0; i < Pitch; i++ {
		pattern := Column(code, i)
		for row := 0; row < frame.Rows; row++ {
			on := pattern&(1<<uint(row)) != 0
			b.SetPixel(col+i, row, on != inverse)
		}
	}
}

// DrawColumn paints a single raw font column pattern at col. Used by
// the scroll routines to feed one column at a time in at the screen
// edge.
func DrawColumn(b *frame.Buffer, col int, pattern byte, inverse bool) {
	for row := 0; row < frame.Rows; row++ {
		on := pattern&(1<<uint(row)) != 0
		b.SetPixel(col, row, on != inverse)
	}
}

// DrawText lays out text per align and draws it left to right,
// advancing Pitch columns per character. Drawing stops at the right
// edge of the screen.
func DrawText(b *frame.Buffer, text []byte, align Align, inverse bool) {
	col, idx := Layout(len(text), align)
	for ; idx < len(text); idx++ {
		if col >= frame.Columns {
			break
		}
		DrawChar(b, col, text[idx], inverse)
		col += Pitch
	}
}
