// Package frame implements the sign's fixed-geometry frame buffer.
//
// The buffer is an 8×120 monochrome bitmap stored row-major as 8-column
// byte groups ("zones"), the exact layout the row driver clocks out to
// the shift registers. Within a zone byte the most significant bit is
// the leftmost column.
package frame

// Display geometry, fixed at design time.
const (
	Rows    = 8
	Columns = 120
	Zones   = Columns / 8
)

// Direction selects the edge a Shift or Rotate moves toward.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "invalid"
	}
}

// Buffer is the display bitmap. The zero value is a cleared screen.
//
// Buffer performs no locking; the engine serializes access between the
// animation path and the refresh reader.
type Buffer struct {
	rows [Rows][Zones]byte
}

// SetPixel sets or clears the pixel at (col, row). Out-of-range
// coordinates are silently dropped, which lets callers paint glyphs
// that partially hang off the screen edge.
func (b *Buffer) SetPixel(col, row int, on bool) {
	if col < 0 || col >= Columns || row < 0 || row >= Rows {
		return
	}
	bit := byte(0x80) >> uint(col&7)
	if on {
		b.rows[row][col>>3] |= bit
	} else {
		b.rows[row][col>>3] &^= bit
	}
}

// Pixel reports whether the pixel at (col, row) is lit; false out of
// range.
func (b *Buffer) Pixel(col, row int) bool {
	if col < 0 || col >= Columns || row < 0 || row >= Rows {
		return false
	}
	return b.rows[row][col>>3]&(0x80>>uint(col&7)) != 0
}

// Fill sets every zone byte of every row to v.
func (b *Buffer) Fill(v byte) {
	for r := range b.rows {
		for z := range b.rows[r] {
			b.rows[r][z] = v
		}
	}
}

// Clear blanks the display.
func (b *Buffer) Clear() {
	b.Fill(0)
}

// Row returns a copy of one row's zone bytes. Out-of-range rows return
// a zero row.
func (b *Buffer) Row(row int) [Zones]byte {
	if row < 0 || row >= Rows {
		return [Zones]byte{}
	}
	return b.rows[row]
}

// Shift moves the whole bitmap one position toward dir. The vacated
// edge fills with zeros and the bits pushed off the far edge are lost.
// Left/Right shift every row's bit pattern across zone boundaries;
// Up/Down move whole rows.
func (b *Buffer) Shift(dir Direction) {
	switch dir {
	case Left:
		for r := range b.rows {
			shiftRowLeft(&b.rows[r], false)
		}
	case Right:
		for r := range b.rows {
			shiftRowRight(&b.rows[r], false)
		}
	case Up:
		copy(b.rows[:], b.rows[1:])
		b.rows[Rows-1] = [Zones]byte{}
	case Down:
		copy(b.rows[1:], b.rows[:Rows-1])
		b.rows[0] = [Zones]byte{}
	}
}

// Rotate moves the bitmap one column toward dir, re-entering the bit
// pushed off one edge at the opposite edge of the same row. Only Left
// and Right are meaningful; other directions are ignored.
func (b *Buffer) Rotate(dir Direction) {
	switch dir {
	case Left:
		for r := range b.rows {
			shiftRowLeft(&b.rows[r], true)
		}
	case Right:
		for r := range b.rows {
			shiftRowRight(&b.rows[r], true)
		}
	}
}

func shiftRowLeft(row *[Zones]byte, wrap bool) {
	carryIn := byte(0)
	if wrap && row[0]&0x80 != 0 {
		carryIn = 1
	}
	for z := Zones - 1; z >= 0; z-- {
		carryOut := row[z] >> 7
		row[z] = row[z]<<1 | carryIn
		carryIn = carryOut
	}
}

func shiftRowRight(row *[Zones]byte, wrap bool) {
	carryIn := byte(0)
	if wrap && row[Zones-1]&0x01 != 0 {
		carryIn = 0x80
	}
	for z := 0; z < Zones; z++ {
		carryOut := (row[z] & 1) << 7
		row[z] = row[z]>>1 | carryIn
		carryIn = carryOut
	}
}
