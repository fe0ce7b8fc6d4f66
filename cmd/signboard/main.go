package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/signboard"
	"github.com/BeatGlow/signboard/frame"
)

func main() {
	storeFlag := flag.String("store", "signboard.dat", "Message store path")
	spiFlag := flag.String("spi", "", "SPI port name (default: first available)")
	aPinFlag := flag.String("row-a", "GPIO22", "Row address bit 0 GPIO pin")
	bPinFlag := flag.String("row-b", "GPIO23", "Row address bit 1 GPIO pin")
	cPinFlag := flag.String("row-c", "GPIO24", "Row address bit 2 GPIO pin")
	latchPinFlag := flag.String("latch", "GPIO25", "Latch GPIO pin")
	pauseFlag := flag.Int("pause", 3, "Seconds to keep a finished message on screen")
	consoleFlag := flag.Bool("console", false, "Render to the terminal instead of hardware")
	flag.Parse()

	store, err := signboard.OpenStore(*storeFlag)
	if err != nil {
		fatal(err)
	}

	// Any messages on the command line replace the stored ones.
	if args := flag.Args(); len(args) > 0 {
		if len(args) > signboard.StoreSlots {
			fatal(fmt.Errorf("at most %d messages fit in the store", signboard.StoreSlots))
		}
		for slot := 0; slot < signboard.StoreSlots; slot++ {
			var msg []byte
			if slot < len(args) {
				msg = []byte(args[slot])
			}
			if err = store.Put(slot, msg); err != nil {
				fatal(err)
			}
		}
	}

	engine := signboard.NewEngine()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *consoleFlag {
		go consoleRefresh(ctx, engine)
	} else {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		port, err := spireg.Open(*spiFlag)
		if err != nil {
			fatal(err)
		}
		defer port.Close()

		refresher, err := signboard.NewRefresher(engine, &signboard.RefreshConfig{
			Port:  port,
			A:     gpioreg.ByName(*aPinFlag),
			B:     gpioreg.ByName(*bPinFlag),
			C:     gpioreg.ByName(*cPinFlag),
			Latch: gpioreg.ByName(*latchPinFlag),
		})
		if err != nil {
			fatal(err)
		}
		go func() {
			if err := refresher.Run(ctx); err != nil && ctx.Err() == nil {
				fatal(err)
			}
		}()
	}

	// Host loop: cycle the stored messages through the engine.
	slot := -1
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		var raw []byte
		slot, raw, err = store.NextAfter(slot)
		if err != nil {
			fatal(err)
		}

		msg := signboard.ParseMessage(raw)
		text := signboard.Normalize(msg.Text)
		if len(text) == 0 {
			// Nothing displayable survived normalization; an unarmed
			// engine never completes, so skip the slot.
			continue
		}
		engine.Start(msg.Routine, msg.Speed, *pauseFlag, text)

		for !engine.Done() {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				engine.Advance()
			}
		}
	}
}

// consoleRefresh renders the frame buffer as ASCII art a few times per
// second, handy for development without the panel attached.
func consoleRefresh(ctx context.Context, engine *signboard.Engine) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var sb strings.Builder
			sb.WriteString("\033[H\033[2J")
			for r := 0; r < frame.Rows; r++ {
				row := engine.Row(r)
				for z := 0; z < frame.Zones; z++ {
					for bit := 7; bit >= 0; bit-- {
						if row[z]&(1<<uint(bit)) != 0 {
							sb.WriteByte('#')
						} else {
							sb.WriteByte(' ')
						}
					}
				}
				sb.WriteByte('\n')
			}
			fmt.Print(sb.String())
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
