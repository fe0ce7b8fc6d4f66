package signboard

import (
	"bytes"
	"testing"
)

func TestParseMessage(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		routine int
		speed   int
		text    string
	}{
		{"plain", "HELLO", DefaultRoutine, DefaultSpeed, "HELLO"},
		{"empty", "", DefaultRoutine, DefaultSpeed, ""},
		{"override", "|14|5|HELLO", 14, 5, "HELLO"},
		{"override-max", "|20|8|X", 20, 8, "X"},
		{"override-min", "|0|1|X", 0, 1, "X"},
		{"routine-too-big", "|21|5|X", DefaultRoutine, DefaultSpeed, "|21|5|X"},
		{"speed-zero", "|3|0|X", DefaultRoutine, DefaultSpeed, "|3|0|X"},
		{"speed-too-big", "|3|9|X", DefaultRoutine, DefaultSpeed, "|3|9|X"},
		{"not-numeric", "|abc|5|X", DefaultRoutine, DefaultSpeed, "|abc|5|X"},
		{"unterminated", "|14|5", DefaultRoutine, DefaultSpeed, "|14|5"},
		{"lone-bar", "|", DefaultRoutine, DefaultSpeed, "|"},
		{"empty-text", "|2|3|", 2, 3, ""},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			m := ParseMessage([]byte(test.raw))
			if m.Routine != test.routine {
				t.Errorf("routine = %d, expected %d", m.Routine, test.routine)
			}
			if m.Speed != test.speed {
				t.Errorf("speed = %d, expected %d", m.Speed, test.speed)
			}
			if !bytes.Equal(m.Text, []byte(test.text)) {
				t.Errorf("text = %q, expected %q", m.Text, test.text)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		out  []byte
	}{
		{"ascii", "Hello!", []byte("Hello!")},
		{"latin1", "café", []byte{'c', 'a', 'f', 0xe9}},
		{"euro", "€5", []byte{0x80, '5'}},
		{"umlaut", "Grüße", []byte{'G', 'r', 0xfc, 0xdf, 'e'}},
		{"unmappable-dropped", "a☃b", []byte{'a', 'b'}},
		{"empty", "", []byte{}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if out := Normalize([]byte(test.in)); !bytes.Equal(out, test.out) {
				t.Errorf("Normalize(%q) = %#v, expected %#v", test.in, out, test.out)
			}
		})
	}
}
