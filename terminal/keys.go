package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake-classic/driver"
	"snake-classic/game"
)

var runeDirections = map[rune]game.Direction{
	'w': game.Up, 'W': game.Up,
	's': game.Down, 'S': game.Down,
	'a': game.Left, 'A': game.Left,
	'd': game.Right, 'D': game.Right,
}

var keyDirections = map[tcell.Key]game.Direction{
	tcell.KeyUp:    game.Up,
	tcell.KeyDown:  game.Down,
	tcell.KeyLeft:  game.Left,
	tcell.KeyRight: game.Right,
}

// inputForKey translates one key event. Terminals report presses, not held
// keys, so every event is forwarded on its own.
func inputForKey(ev *tcell.EventKey) driver.Input {
	var in driver.Input
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyEnter:
		in.Confirm = true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			in.Quit = true
		}
		if dir, ok := runeDirections[ev.Rune()]; ok {
			in.Directions = []game.Direction{dir}
		}
	default:
		if dir, ok := keyDirections[ev.Key()]; ok {
			in.Directions = []game.Direction{dir}
		}
	}
	return in
}
