// Package signboard drives an 8×120 LED dot-matrix message sign: it
// turns stored message strings into time-sequenced frame-buffer
// animations and clocks the buffer rows out to the panel hardware.
package signboard

import "os"

var debug bool

func init() {
	debug = os.Getenv("SIGNBOARD_DEBUG") != ""
}
