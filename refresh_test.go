package signboard

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/BeatGlow/signboard/frame"
)

// stripeSource marks each row with its index so the shifted-out bytes
// are attributable.
type stripeSource struct{}

func (stripeSource) Row(row int) [frame.Zones]byte {
	var r [frame.Zones]byte
	for z := range r {
		r[z] = byte(row)
	}
	return r
}

func TestRefresherConfig(t *testing.T) {
	if _, err := NewRefresher(stripeSource{}, nil); err != ErrNoPort {
		t.Errorf("expected ErrNoPort, got %v", err)
	}
	if _, err := NewRefresher(stripeSource{}, &RefreshConfig{Port: &spitest.Record{}}); err != ErrNoRowPins {
		t.Errorf("expected ErrNoRowPins, got %v", err)
	}
}

func TestRefresherRowSequence(t *testing.T) {
	var (
		record = &spitest.Record{}
		a      = &gpiotest.Pin{N: "A"}
		b      = &gpiotest.Pin{N: "B"}
		c      = &gpiotest.Pin{N: "C"}
		latch  = &gpiotest.Pin{N: "LATCH"}
	)

	r, err := NewRefresher(stripeSource{}, &RefreshConfig{
		Port:  record,
		A:     a,
		B:     b,
		C:     c,
		Latch: latch,
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.period != DefaultRefreshPeriod {
		t.Errorf("period = %s, expected %s", r.period, DefaultRefreshPeriod)
	}

	// One full frame: every row once, in order, wrapping back to 0.
	for i := 0; i < frame.Rows; i++ {
		if err = r.refreshRow(); err != nil {
			t.Fatal(err)
		}
	}
	if r.row != 0 {
		t.Errorf("row index = %d after a full frame, expected 0", r.row)
	}

	if len(record.Ops) != frame.Rows {
		t.Fatalf("recorded %d SPI transfers, expected %d", len(record.Ops), frame.Rows)
	}
	for i, op := range record.Ops {
		want := bytes.Repeat([]byte{byte(i)}, frame.Zones)
		if !bytes.Equal(op.W, want) {
			t.Errorf("transfer %d wrote % x, expected % x", i, op.W, want)
		}
	}

	// The last refreshed row was 7: address 111, latch back low.
	if a.L != gpio.High || b.L != gpio.High || c.L != gpio.High {
		t.Errorf("row address pins = %v/%v/%v, expected all high", a.L, b.L, c.L)
	}
	if latch.L != gpio.Low {
		t.Error("latch left high after refresh")
	}
}
