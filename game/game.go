package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// GameState is one round of Snake. It is owned by a single driver: input
// only touches the pending direction through SetDirection, and Advance is
// the only transition.
type GameState struct {
	ID        string
	StartTime time.Time

	grid  Grid
	board []Cell

	head Position
	// tail[0] sits directly behind the head, tail[len-1] is the tail tip.
	tail []Position

	direction     Direction
	lastDirection Direction

	gameOver bool
	outcome  Outcome
	score    uint32
	ticks    int

	food    Position
	hasFood bool

	rng *rand.Rand
}

// NewRand returns the random source used for food placement. A zero seed
// draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// NewGame creates a fresh round: head centred, tail extending to the left,
// moving right, score 0 and one food item placed. A nil rng seeds from
// cfg.Seed.
func NewGame(cfg Config, rng *rand.Rand) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	grid := cfg.Grid()
	length := cfg.InitialLength

	head := Position{X: grid.Width / 2, Y: grid.Height / 2}
	tail := make([]Position, length)
	for i := range tail {
		tail[i] = grid.Wrap(Position{X: head.X - 1 - i, Y: head.Y})
	}

	return newState(grid, head, tail, Right, rng), nil
}

func newState(grid Grid, head Position, tail []Position, dir Direction, rng *rand.Rand) *GameState {
	s := &GameState{
		ID:            uuid.New().String(),
		StartTime:     time.Now(),
		grid:          grid,
		board:         make([]Cell, grid.Cells()),
		head:          head,
		tail:          tail,
		direction:     dir,
		lastDirection: dir,
		rng:           rng,
	}
	s.food, s.hasFood = s.SpawnFood()
	s.rebuildBoard()
	return s
}

// SetDirection queues the move for the next tick. A direction that would
// reverse the move applied on the last tick is ignored.
func (s *GameState) SetDirection(d Direction) {
	if !d.Valid() || d == s.lastDirection.Opposite() {
		return
	}
	s.direction = d
}

// Advance moves the snake one cell. It is a no-op once the round is over.
func (s *GameState) Advance() {
	if s.gameOver {
		return
	}
	s.lastDirection = s.direction

	oldHead := s.head
	newHead := s.grid.Wrap(s.head.Add(s.direction.Delta()))

	ate := s.hasFood && newHead == s.food
	if ate {
		s.score++
		// The duplicated tip keeps its cell while the rest of the tail shifts.
		s.tail = append(s.tail, s.tail[len(s.tail)-1])
	}

	for i := len(s.tail) - 1; i > 0; i-- {
		s.tail[i] = s.tail[i-1]
		if s.tail[i] == newHead {
			s.gameOver = true
			s.outcome = OutcomeSelfCollision
		}
	}
	s.tail[0] = oldHead
	s.head = newHead
	s.ticks++

	if ate {
		s.food, s.hasFood = s.SpawnFood()
		if !s.hasFood && !s.gameOver {
			s.gameOver = true
			s.outcome = OutcomeBoardFull
		}
	}

	s.rebuildBoard()
}

// rebuildBoard recomputes every cell from head, tail and food.
func (s *GameState) rebuildBoard() {
	for i := range s.board {
		s.board[i] = Empty
	}
	if s.hasFood {
		s.board[s.grid.index(s.food)] = Food
	}
	for _, p := range s.tail {
		s.board[s.grid.index(p)] = Body
	}
	s.board[s.grid.index(s.head)] = Head
}

func (s *GameState) Width() int { return s.grid.Width }
func (s *GameState) Height() int { return s.grid.Height }
func (s *GameState) Grid() Grid { return s.grid }

// CellAt returns the render tag at p, Empty when p is off the board.
func (s *GameState) CellAt(p Position) Cell {
	if !s.grid.Contains(p) {
		return Empty
	}
	return s.board[s.grid.index(p)]
}

func (s *GameState) Head() Position { return s.head }

// Tail returns a copy of the tail, nearest segment first.
func (s *GameState) Tail() []Position {
	tail := make([]Position, len(s.tail))
	copy(tail, s.tail)
	return tail
}

// Length counts the head plus every tail segment.
func (s *GameState) Length() int { return len(s.tail) + 1 }

// Food returns the food position; ok is false only when the board is full.
func (s *GameState) Food() (Position, bool) { return s.food, s.hasFood }

func (s *GameState) Score() uint32 { return s.score }
func (s *GameState) GameOver() bool { return s.gameOver }
func (s *GameState) Outcome() Outcome { return s.outcome }
func (s *GameState) Direction() Direction { return s.direction }
func (s *GameState) LastDirection() Direction { return s.lastDirection }
func (s *GameState) Ticks() int { return s.ticks }
func (s *GameState) Elapsed(now time.Time) time.Duration { return now.Sub(s.StartTime) }
