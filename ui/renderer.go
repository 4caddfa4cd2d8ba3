package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
)

var (
	colorBackground = rl.DarkGray
	colorHead       = rl.Purple
	colorBody       = rl.DarkPurple
	colorFood       = rl.Green
	colorScore      = rl.Red
	colorOverlay    = rl.White
	colorFPS        = rl.Blue
)

// cellColor maps a board tag to its fill colour. Empty cells are not drawn.
func cellColor(c game.Cell) (rl.Color, bool) {
	switch c {
	case game.Head:
		return colorHead, true
	case game.Body:
		return colorBody, true
	case game.Food:
		return colorFood, true
	default:
		return rl.Color{}, false
	}
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	showFPS      bool
}

func NewRenderer(cfg game.Config, showFPS bool) *Renderer {
	return &Renderer{
		cellSize:     int32(cfg.CellSize),
		screenWidth:  int32(cfg.Width * cfg.CellSize),
		screenHeight: int32(cfg.Height * cfg.CellSize),
		showFPS:      showFPS,
	}
}

func (r *Renderer) Size() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

func (r *Renderer) Draw(g *game.GameState, stats *game.SessionStats) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colorBackground)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			color, ok := cellColor(g.CellAt(game.Position{X: x, Y: y}))
			if !ok {
				continue
			}
			rl.DrawRectangle(int32(x)*r.cellSize, int32(y)*r.cellSize, r.cellSize, r.cellSize, color)
		}
	}

	if g.GameOver() {
		r.drawGameOver(g, stats)
	} else {
		rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), 20, 10, 20, colorScore)
	}

	if r.showFPS {
		rl.DrawText(fmt.Sprintf("%d", rl.GetFPS()), r.screenWidth-50, 10, 20, colorFPS)
	}
}

func (r *Renderer) drawGameOver(g *game.GameState, stats *game.SessionStats) {
	centerX := r.screenWidth / 2
	centerY := r.screenHeight / 2

	rl.DrawText("Game Over", centerX-100, centerY, 40, colorOverlay)
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), centerX-50, centerY+50, 20, colorOverlay)
	rl.DrawText("Press Enter", centerX-40, centerY+75, 10, colorOverlay)
	rl.DrawText(sessionLine(stats), centerX-100, centerY+95, 10, colorOverlay)
}

// sessionLine summarises the rounds finished so far.
func sessionLine(stats *game.SessionStats) string {
	return fmt.Sprintf("Best: %d  Played: %d  Avg: %.1f",
		stats.MaxScore(), stats.GamesPlayed(), stats.AverageScore())
}
