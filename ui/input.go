package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/driver"
	"snake-classic/game"
)

// directionKeys lists the two keys bound to each direction.
var directionKeys = []struct {
	dir  game.Direction
	keys [2]int32
}{
	{game.Up, [2]int32{rl.KeyUp, rl.KeyW}},
	{game.Down, [2]int32{rl.KeyDown, rl.KeyS}},
	{game.Left, [2]int32{rl.KeyLeft, rl.KeyA}},
	{game.Right, [2]int32{rl.KeyRight, rl.KeyD}},
}

// pollInput reads the keys held this frame. Held directions are reported in
// directionKeys order so each one is checked against the last move on its own.
func pollInput(isDown func(key int32) bool) driver.Input {
	var in driver.Input
	for _, binding := range directionKeys {
		if isDown(binding.keys[0]) || isDown(binding.keys[1]) {
			in.Directions = append(in.Directions, binding.dir)
		}
	}
	in.Confirm = isDown(rl.KeyEnter)
	in.Quit = isDown(rl.KeyEscape)
	return in
}
