package game

// Position is a board cell, 0-indexed from the top-left corner.
type Position struct {
	X, Y int
}

// Add returns p moved by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid holds the board dimensions.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Wrap folds a position that stepped one cell off an edge back onto the
// opposite edge. Each axis is checked on its own.
func (g Grid) Wrap(p Position) Position {
	if p.X >= g.Width {
		p.X = 0
	} else if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.Y >= g.Height {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = g.Height - 1
	}
	return p
}

func (g Grid) index(p Position) int {
	return p.X + p.Y*g.Width
}

// Cell tags a board cell for rendering. It is derived from the snake and
// food positions and never read back by the simulation.
type Cell uint8

const (
	Empty Cell = iota
	Head
	Body
	Food
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Head:
		return "head"
	case Body:
		return "body"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Outcome records why a round ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeSelfCollision
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "running"
	case OutcomeSelfCollision:
		return "self-collision"
	case OutcomeBoardFull:
		return "board full"
	default:
		return "unknown"
	}
}
