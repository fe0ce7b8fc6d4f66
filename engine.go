package signboard

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/BeatGlow/signboard/font"
	"github.com/BeatGlow/signboard/frame"
)

// Animation routine identifiers. Values outside [ScrollClear, Random]
// are treated as already complete.
const (
	ScrollClear   = iota // smooth scroll, clearing the screen first
	Scroll               // smooth scroll over the current content
	StaticLeft           // static text, left aligned
	StaticCenter         // static text, centered
	StaticRight          // static text, right aligned
	BlinkLeft            // blinking text, left aligned
	BlinkCenter          // blinking text, centered
	BlinkRight           // blinking text, right aligned
	InvertLeft           // inverting text, left aligned
	InvertCenter         // inverting text, centered
	InvertRight          // inverting text, right aligned
	SlideUp              // scroll the screen up, then hold centered text
	SlideDown            // scroll the screen down, then hold centered text
	BlockScroll          // scroll in whole characters at a time
	Zap                  // shoot the text in, hold, shoot it out
	Dissolve             // clear random pixels, then show the text
	SlideChars           // characters slide in from the right one by one
	RollLeft             // show centered text, then roll one revolution left
	RollRight            // show centered text, then roll one revolution right
	Pacman               // pac-man eats the screen, then smooth scroll
	Random               // pick one of the other routines at random
)

// animation is the mutable state of one in-progress message. The v1
// and v2 scratch fields have routine-specific meaning, so Start resets
// them unconditionally; stale values from a prior routine would be
// misread by the next one.
type animation struct {
	routine int
	speed   int
	pause   int // seconds to keep a finished message on screen
	state   int
	v1, v2  int
	msg     []byte

	last       uint32 // millis of the last animation step
	pauseStart uint32 // millis the completion pause started counting from
}

// Engine owns the frame buffer and advances one message animation per
// tick. The caller paces Advance; routines self-pace against the
// millisecond clock, so irregular call intervals stay correct, just
// less smooth.
type Engine struct {
	mu   sync.Mutex
	buf  frame.Buffer
	anim animation

	armed bool
	done  bool

	// now and intn are swapped out by tests.
	now  func() uint32
	intn func(n int) int
}

// NewEngine returns an idle engine with a cleared screen.
func NewEngine() *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		now:  millis,
		intn: rng.Intn,
	}
}

// millis is the engine's monotonic clock. It wraps at 2³²ms; all
// comparisons use unsigned subtraction so the wrap is harmless.
func millis() uint32 {
	return uint32(time.Now().UnixMilli())
}

// Start arms the engine for one message. The previous animation state
// is discarded entirely. The engine borrows text for the duration of
// the animation; the caller must not mutate it until Done reports
// true.
//
// An empty text leaves the engine unarmed and the buffer untouched;
// the caller must not call Advance before the next successful Start.
func (e *Engine) Start(routine, speed, pauseSeconds int, text []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.done = false
	if len(text) == 0 {
		e.armed = false
		return
	}

	if speed < 0 {
		speed = 0
	} else if speed > 10 {
		speed = 10
	}

	e.anim = animation{
		routine:    routine,
		speed:      speed,
		pause:      pauseSeconds,
		msg:        text,
		pauseStart: e.now(),
	}
	e.armed = true

	if debug {
		log.Printf("signboard: start routine=%d speed=%d pause=%ds len=%d",
			routine, speed, pauseSeconds, len(text))
	}
}

// Done reports whether the current message has finished displaying,
// including its pause interval. Start clears it.
func (e *Engine) Done() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Routine returns the currently active routine id. Pacman and Random
// rewrite it mid-animation.
func (e *Engine) Routine() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.anim.routine
}

// Row returns a snapshot of one frame-buffer row for the refresh
// driver. Rows are consistent in themselves; a multi-row mutation in
// progress may tear between rows, which the panel tolerates.
func (e *Engine) Row(row int) [frame.Zones]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Row(row)
}

// Pixel reports the state of one pixel; false out of range.
func (e *Engine) Pixel(col, row int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Pixel(col, row)
}

// Advance runs one animation tick: it reads the clock once, applies
// the current routine's next buffer mutation, and raises the done flag
// when the routine and its pause interval have run out. It never
// blocks.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.armed || e.done {
		return
	}

	now := e.now()
	a := &e.anim

	// Routines still in motion return tail=false to keep the shared
	// pause check from completing the message mid-animation.
	var tail bool
	switch a.routine {
	case ScrollClear, Scroll:
		e.stepScroll(now)
	case StaticLeft, StaticCenter, StaticRight:
		tail = e.stepStatic(font.Align(a.routine - StaticLeft))
	case BlinkLeft, BlinkCenter, BlinkRight:
		tail = e.stepBlink(now, font.Align(a.routine-BlinkLeft))
	case InvertLeft, InvertCenter, InvertRight:
		tail = e.stepInvert(now, font.Align(a.routine-InvertLeft))
	case SlideUp, SlideDown:
		tail = e.stepSlide(now)
	case BlockScroll:
		tail = e.stepBlock(now)
	case Zap:
		e.stepZap(now)
	case Dissolve:
		tail = e.stepDissolve()
	case SlideChars:
		tail = e.stepSlideChars(now)
	case RollLeft, RollRight:
		tail = e.stepRoll(now)
	case Pacman:
		e.stepPacman(now)
	case Random:
		e.stepRandom()
	default:
		e.done = true
		return
	}

	if tail && now-a.pauseStart > uint32(a.pause)*1000 {
		e.done = true
	}
}
