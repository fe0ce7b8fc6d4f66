package signboard

import (
	"github.com/BeatGlow/signboard/font"
	"github.com/BeatGlow/signboard/frame"
)

// stepScroll implements ScrollClear and Scroll. ScrollClear blanks the
// screen on its first tick, then both share the scroll step: every
// interval one font column enters at the right edge until the message
// is exhausted, after which the buffer keeps shifting until the text
// has moved fully off screen. Completion comes after exactly
// len(msg)*Pitch+Columns shifts; the shared pause tail never runs.
func (e *Engine) stepScroll(now uint32) {
	a := &e.anim

	if a.routine == ScrollClear && a.state == 0 {
		e.buf.Clear()
		a.state = 1
	}

	if now-a.last <= uint32(a.speed*10+15) {
		return
	}
	a.last = now

	total := len(a.msg) * font.Pitch
	e.buf.Shift(frame.Left)
	if a.v1 < total {
		pattern := font.Column(a.msg[a.v1/font.Pitch], a.v1%font.Pitch)
		font.DrawColumn(&e.buf, frame.Columns-1, pattern, false)
	}
	a.v1++
	if a.v1 >= total+frame.Columns {
		e.done = true
	}
}

// stepStatic draws the message once on the first tick and then leaves
// the screen alone; the pause tail decides when the message is done.
// The screen is only cleared for messages shorter than the display, so
// a full-width message overwrites the previous content seamlessly.
func (e *Engine) stepStatic(align font.Align) bool {
	a := &e.anim
	if a.state == 0 {
		if len(a.msg) < font.MaxChars {
			e.buf.Clear()
		}
		font.DrawText(&e.buf, a.msg, align, false)
		a.state = 1
	}
	return true
}

// stepBlink toggles between drawn and blank. One toggle per
// threshold-crossing tick, never more, regardless of how much time
// passed since the last call.
func (e *Engine) stepBlink(now uint32, align font.Align) bool {
	a := &e.anim
	if now-a.last > uint32(200+a.speed*100) {
		a.last = now
		if a.v1 == 0 {
			e.buf.Clear()
			font.DrawText(&e.buf, a.msg, align, false)
			a.v1 = 1
		} else {
			e.buf.Clear()
			a.v1 = 0
		}
	}
	return true
}

// stepInvert toggles between normal-on-black and inverted-on-white.
func (e *Engine) stepInvert(now uint32, align font.Align) bool {
	a := &e.anim
	if now-a.last > uint32(400+a.speed*100) {
		a.last = now
		if a.v1 == 0 {
			e.buf.Clear()
			font.DrawText(&e.buf, a.msg, align, false)
			a.v1 = 1
		} else {
			e.buf.Fill(0xff)
			font.DrawText(&e.buf, a.msg, align, true)
			a.v1 = 0
		}
	}
	return true
}

// stepSlide shifts the previous screen content out one row at a time,
// up or down, then draws the new message centered and holds it. The
// pause tail only runs once the hold state is reached.
func (e *Engine) stepSlide(now uint32) bool {
	a := &e.anim
	if a.state == 1 {
		return true
	}

	if now-a.last > uint32(400+a.speed*100) {
		a.last = now
		if a.routine == SlideUp {
			e.buf.Shift(frame.Up)
		} else {
			e.buf.Shift(frame.Down)
		}
		a.v1++
		if a.v1 >= frame.Rows {
			font.DrawText(&e.buf, a.msg, font.Center, false)
			a.state = 1
		}
	}
	return false
}

// stepBlock scrolls in one whole character (all Pitch columns at once)
// per interval until the message is exhausted or the screen is full.
func (e *Engine) stepBlock(now uint32) bool {
	a := &e.anim
	if a.state == 0 && now-a.last > uint32(90+a.speed*100) {
		a.last = now
		for i := 0; i < font.Pitch; i++ {
			e.buf.Shift(frame.Left)
			font.DrawColumn(&e.buf, frame.Columns-1, font.Column(a.msg[a.v1], i), false)
		}
		a.v1++
		if a.v1 >= len(a.msg) || a.v1 >= font.MaxChars {
			a.state = 1
		}
	}
	return true
}

// stepZap shoots the message in one font column per millisecond, holds
// it for the configured pause, shoots it out again, and then signals
// completion itself; the shared pause tail is bypassed throughout.
func (e *Engine) stepZap(now uint32) {
	a := &e.anim
	switch a.state {
	case 0: // shoot in
		if now-a.last >= 1 {
			a.last = now
			e.buf.Shift(frame.Left)
			pattern := font.Column(a.msg[a.v1/font.Pitch], a.v1%font.Pitch)
			font.DrawColumn(&e.buf, frame.Columns-1, pattern, false)
			a.v1++
			if a.v1 >= len(a.msg)*font.Pitch {
				a.state = 1
			}
		}
	case 1: // hold
		if now-a.last > uint32(a.pause)*1000 {
			a.last = now
			a.state = 2
		}
	case 2: // shoot out
		if now-a.last >= 1 {
			a.last = now
			e.buf.Shift(frame.Left)
			a.v2++
			if a.v2 >= frame.Columns {
				a.state = 3
			}
		}
	case 3:
		e.done = true
	}
}

// stepDissolve clears one random pixel per tick. The 6000-tick count
// is inherited from the original firmware; it over-clears the 960
// pixel screen on purpose, sampling with replacement.
func (e *Engine) stepDissolve() bool {
	a := &e.anim
	if a.state == 0 {
		e.buf.SetPixel(e.intn(frame.Columns), e.intn(frame.Rows), false)
		a.v1++
		if a.v1 >= 6000 {
			font.DrawText(&e.buf, a.msg, font.Center, false)
			a.state = 1
		}
	}
	return true
}

// stepSlideChars slides characters in from the right edge one at a
// time, each moving one column per interval and erasing the column it
// just vacated, until every character that fits has reached its slot.
func (e *Engine) stepSlideChars(now uint32) bool {
	a := &e.anim
	if a.state == 1 {
		return true
	}
	if a.state == 0 {
		a.v2 = frame.Columns
		a.state = 2
	}

	if now-a.last > uint32(20+a.speed*10) {
		a.last = now
		font.DrawChar(&e.buf, a.v2, a.msg[a.v1], false)
		font.DrawColumn(&e.buf, a.v2+font.Pitch, 0, false)

		if a.v2 == a.v1*font.Pitch {
			a.v1++
			a.v2 = frame.Columns
			count := len(a.msg)
			if count > font.MaxChars {
				count = font.MaxChars
			}
			if a.v1 >= count {
				a.state = 1
			}
		} else {
			a.v2--
		}
	}
	return false
}

// stepRoll shows the message centered, waits two seconds, then rotates
// the whole screen one full revolution, one column per 90ms. Rotation
// is lossless, so the text returns to its centered position before the
// pause tail takes over.
func (e *Engine) stepRoll(now uint32) bool {
	a := &e.anim
	switch a.state {
	case 0:
		e.buf.Clear()
		font.DrawText(&e.buf, a.msg, font.Center, false)
		a.last = now
		a.state = 1
	case 1:
		if now-a.last > 2000 {
			a.last = now
			a.state = 2
		}
	case 2:
		if now-a.last > 90 {
			a.last = now
			if a.routine == RollLeft {
				e.buf.Rotate(frame.Left)
			} else {
				e.buf.Rotate(frame.Right)
			}
			a.v1++
			if a.v1 >= frame.Columns {
				a.state = 3
			}
		}
	case 3:
		return true
	}
	return false
}

// pacmanSprite holds the two 8×8 animation frames, mouth open and
// mouth closed, as font-style column patterns (bit 0 at the top).
var pacmanSprite = [2][8]byte{
	{0x3c, 0x7e, 0xff, 0xe7, 0xc3, 0x81, 0x42, 0x24},
	{0x3c, 0x7e, 0xff, 0xff, 0xff, 0x7e, 0x3c, 0x00},
}

// stepPacman walks the sprite leftward in 8-column steps, erasing the
// band it just left, and hands the same message over to ScrollClear
// when it reaches the left edge. No completion is signaled here; the
// scroll routine finishes the message.
func (e *Engine) stepPacman(now uint32) {
	a := &e.anim
	if now-a.last <= 100 {
		return
	}
	a.last = now

	if a.state == 0 {
		a.v1 = frame.Columns - 8
		a.state = 1
	} else {
		// Vacate the band the sprite is leaving; everything to his
		// right has been eaten already.
		for i := 0; i < 8; i++ {
			font.DrawColumn(&e.buf, a.v1+i, 0, false)
		}
		a.v1 -= 8
	}

	if a.v1 < 0 {
		e.buf.Clear()
		a.routine = ScrollClear
		a.state = 0
		a.v1 = 0
		a.v2 = 0
		a.last = 0
		return
	}

	for i := 0; i < 8; i++ {
		font.DrawColumn(&e.buf, a.v1+i, pacmanSprite[a.v2][i], false)
	}
	a.v2 ^= 1
}

// stepRandom re-picks the routine: a uniform draw over the non-random
// routines when the message fits on screen, plain smooth scroll when
// it does not. Dispatch of the new routine happens on the next Advance
// call, matching the original firmware's next-pass re-evaluation.
func (e *Engine) stepRandom() {
	a := &e.anim
	if len(a.msg) <= font.MaxChars {
		a.routine = e.intn(Random)
	} else {
		a.routine = ScrollClear
	}
	a.state = 0
	a.v1 = 0
	a.v2 = 0
	a.last = 0
}
