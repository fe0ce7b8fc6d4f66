package signboard

import (
	"context"
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/signboard/frame"
)

// DefaultRefreshPeriod is the per-row refresh interval; one full frame
// every Rows×1.7ms ≈ 13.6ms.
const DefaultRefreshPeriod = 1700 * time.Microsecond

// Refresher errors.
var (
	ErrNoPort    = errors.New("signboard: refresh SPI port is required")
	ErrNoRowPins = errors.New("signboard: refresh row-select pins are required")
)

// RowSource yields one display row per refresh period. *Engine
// implements it.
type RowSource interface {
	Row(row int) [frame.Zones]byte
}

// RefreshConfig wires the refresher to the panel hardware.
type RefreshConfig struct {
	// Port carries the pixel data to the column shift registers.
	Port spi.Port

	// A, B, C form the 3-bit row address.
	A, B, C gpio.PinOut

	// Latch strobes the shifted row onto the outputs.
	Latch gpio.PinOut

	// Period between row refreshes; DefaultRefreshPeriod if zero.
	Period time.Duration
}

// Refresher clocks one frame-buffer row per period out to the panel:
// zone bytes MSB-first over SPI, then latch and row address over GPIO.
// It only ever reads the buffer, through RowSource.
type Refresher struct {
	src     RowSource
	conn    spi.Conn
	a, b, c gpio.PinOut
	latch   gpio.PinOut
	period  time.Duration
	row     int
}

// NewRefresher connects to the panel described by config.
func NewRefresher(src RowSource, config *RefreshConfig) (*Refresher, error) {
	if config == nil || config.Port == nil {
		return nil, ErrNoPort
	}
	if config.A == nil || config.B == nil || config.C == nil || config.Latch == nil {
		return nil, ErrNoRowPins
	}

	conn, err := config.Port.Connect(2*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	period := config.Period
	if period <= 0 {
		period = DefaultRefreshPeriod
	}

	return &Refresher{
		src:    src,
		conn:   conn,
		a:      config.A,
		b:      config.B,
		c:      config.C,
		latch:  config.Latch,
		period: period,
	}, nil
}

// Run refreshes rows until the context is cancelled.
func (r *Refresher) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.refreshRow(); err != nil {
				return err
			}
		}
	}
}

func (r *Refresher) refreshRow() error {
	row := r.src.Row(r.row)
	if err := r.conn.Tx(row[:], nil); err != nil {
		return err
	}

	if err := r.selectRow(r.row); err != nil {
		return err
	}
	if err := r.latch.Out(gpio.High); err != nil {
		return err
	}
	if err := r.latch.Out(gpio.Low); err != nil {
		return err
	}

	r.row = (r.row + 1) % frame.Rows
	return nil
}

// Interface check.
var _ RowSource = (*Engine)(nil)

func (r *Refresher) selectRow(row int) error {
	if err := r.a.Out(gpio.Level(row&1 != 0)); err != nil {
		return err
	}
	if err := r.b.Out(gpio.Level(row&2 != 0)); err != nil {
		return err
	}
	return r.c.Out(gpio.Level(row&4 != 0))
}
