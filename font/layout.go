package font

import (
	"github.com/BeatGlow/signboard/frame"
)

// Align selects the horizontal text alignment.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// Layout returns the starting column and starting character index for
// a message of count characters. Messages wider than the screen start
// at column 0 and skip into the text instead: Center shows the central
// window, Right the trailing window.
func Layout(count int, align Align) (col, index int) {
	switch align {
	case Center:
		if count <= MaxChars {
			return frame.Columns/2 - count*Pitch/2, 0
		}
		return 0, (count - MaxChars) / 2
	case Right:
		if count <= MaxChars {
			return frame.Columns - count*Pitch, 0
		}
		return 0, count - MaxChars
	default:
		return 0, 0
	}
}
