// Package terminal is the tcell frontend. It draws the board in a text
// terminal and feeds key presses to the driver.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-classic/driver"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Run drives d on screen until ctx is cancelled or a quit key is pressed.
// The caller owns screen and finalizes it after Run returns.
func Run(ctx context.Context, d *driver.Driver, screen tcell.Screen) error {
	r := &renderer{screen: screen}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	r.draw(d.State(), d.Stats())

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				in := inputForKey(ev)
				if in.Quit {
					return nil
				}
				d.Update(0, in)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			d.Update(now.Sub(last), driver.Input{})
			last = now
			r.draw(d.State(), d.Stats())
		}
	}
}
