package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"snake-classic/game"
)

const (
	cellWidth   = 2 // columns per board cell, keeps cells roughly square
	statusLines = 1
)

var (
	styleBoard  = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorPurple).Background(tcell.ColorDarkGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta).Background(tcell.ColorDarkGray)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorDarkGray)
	styleScore  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// cellStyle maps a board tag to the glyph and style it is drawn with.
func cellStyle(c game.Cell) (rune, tcell.Style) {
	switch c {
	case game.Head:
		return '█', styleHead
	case game.Body:
		return '█', styleBody
	case game.Food:
		return '●', styleFood
	default:
		return ' ', styleBoard
	}
}

// requiredSize returns the terminal size needed to show a board.
func requiredSize(g game.Grid) (int, int) {
	return g.Width*cellWidth + 2, g.Height + 2 + statusLines
}

// CheckSize reports an error when screen cannot hold the board.
func CheckSize(screen tcell.Screen, g game.Grid) error {
	w, h := screen.Size()
	needW, needH := requiredSize(g)
	if w < needW || h < needH {
		return errors.Errorf("terminal is %dx%d, a %dx%d board needs %dx%d", w, h, g.Width, g.Height, needW, needH)
	}
	return nil
}

// cellOrigin returns the screen column and row of board cell p.
func cellOrigin(p game.Position) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

type renderer struct {
	screen tcell.Screen
}

func (r *renderer) draw(g *game.GameState, stats *game.SessionStats) {
	r.screen.Clear()

	if err := CheckSize(r.screen, g.Grid()); err != nil {
		r.text(0, 0, err.Error(), styleText)
		r.screen.Show()
		return
	}

	r.border(g.Grid())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := game.Position{X: x, Y: y}
			ch, style := cellStyle(g.CellAt(p))
			col, row := cellOrigin(p)
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(col+i, row, ch, nil, style)
			}
		}
	}

	statusRow := g.Height() + 2
	if g.GameOver() {
		r.gameOver(g, stats)
	} else {
		r.text(1, statusRow, fmt.Sprintf("Score: %d", g.Score()), styleScore)
	}
	r.screen.Show()
}

func (r *renderer) border(g game.Grid) {
	right := g.Width*cellWidth + 1
	bottom := g.Height + 1
	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, styleBorder)
		r.screen.SetContent(x, bottom, '─', nil, styleBorder)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, styleBorder)
		r.screen.SetContent(right, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(0, 0, '┌', nil, styleBorder)
	r.screen.SetContent(right, 0, '┐', nil, styleBorder)
	r.screen.SetContent(0, bottom, '└', nil, styleBorder)
	r.screen.SetContent(right, bottom, '┘', nil, styleBorder)
}

func (r *renderer) gameOver(g *game.GameState, stats *game.SessionStats) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Score: %d", g.Score()),
		"Press Enter",
		fmt.Sprintf("Best: %d  Played: %d", stats.MaxScore(), stats.GamesPlayed()),
	}
	boardW := g.Width() * cellWidth
	top := 1 + (g.Height()-len(lines))/2
	for i, line := range lines {
		col := 1 + (boardW-len([]rune(line)))/2
		r.text(col, top+i, line, styleText)
	}
}

func (r *renderer) text(col, row int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
