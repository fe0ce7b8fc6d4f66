package signboard

import (
	"bytes"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// Defaults used when a message carries no routine/speed override.
const (
	DefaultRoutine = ScrollClear
	DefaultSpeed   = 3
)

// Message is one sign message with its animation parameters.
type Message struct {
	Routine int
	Speed   int
	Text    []byte
}

// ParseMessage splits an optional leading |<routine>|<speed>| override
// off raw. Routine must be in [0, 20] and speed in [1, 8]; a malformed
// or out-of-range prefix is left in the text and the defaults are
// kept.
func ParseMessage(raw []byte) Message {
	m := Message{
		Routine: DefaultRoutine,
		Speed:   DefaultSpeed,
		Text:    raw,
	}

	if len(raw) == 0 || raw[0] != '|' {
		return m
	}
	rest := raw[1:]

	i := bytes.IndexByte(rest, '|')
	if i < 0 {
		return m
	}
	routine, err := strconv.Atoi(string(rest[:i]))
	if err != nil || routine < ScrollClear || routine > Random {
		return m
	}
	rest = rest[i+1:]

	j := bytes.IndexByte(rest, '|')
	if j < 0 {
		return m
	}
	speed, err := strconv.Atoi(string(rest[:j]))
	if err != nil || speed < 1 || speed > 8 {
		return m
	}

	m.Routine = routine
	m.Speed = speed
	m.Text = rest[j+1:]
	return m
}

// Normalize converts a UTF-8 message to the single-byte extended ASCII
// the font table indexes, using the Windows-1252 charmap; that is the
// code page the original sign font was laid out for, including the
// euro sign at 0x80. Unmappable runes are dropped.
func Normalize(text []byte) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range string(text) {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
		}
	}
	return out
}
