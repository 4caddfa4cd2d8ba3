// Package ui is the raylib frontend: one window, keyboard polling and
// cell-by-cell drawing of the board.
package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/driver"
)

type Options struct {
	ShowFPS   bool
	TargetFPS int32
}

// Run opens the window and drives d until the window is closed.
func Run(d *driver.Driver, opts Options) error {
	renderer := NewRenderer(d.Config(), opts.ShowFPS)
	width, height := renderer.Size()

	rl.SetConfigFlags(rl.FlagVsyncHint)
	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()

	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		in := pollInput(rl.IsKeyDown)
		if in.Quit {
			break
		}
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		d.Update(dt, in)
		renderer.Draw(d.State(), d.Stats())
	}
	return nil
}
