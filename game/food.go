package game

// maxSpawnAttempts bounds the random draws before falling back to a scan of
// the free cells.
const maxSpawnAttempts = 64

// SpawnFood picks a cell not covered by the snake, uniformly among the free
// cells. It returns false when the snake fills the board. The state is not
// modified.
func (s *GameState) SpawnFood() (Position, bool) {
	occupied := make([]bool, s.grid.Cells())
	taken := 0
	mark := func(p Position) {
		i := s.grid.index(p)
		if !occupied[i] {
			occupied[i] = true
			taken++
		}
	}
	mark(s.head)
	for _, p := range s.tail {
		mark(p)
	}

	free := len(occupied) - taken
	if free == 0 {
		return Position{}, false
	}

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		food := Position{
			X: s.rng.Intn(s.grid.Width),
			Y: s.rng.Intn(s.grid.Height),
		}
		if !occupied[s.grid.index(food)] {
			return food, true
		}
	}

	// Crowded board: pick the n-th free cell instead.
	n := s.rng.Intn(free)
	for i, used := range occupied {
		if used {
			continue
		}
		if n == 0 {
			return Position{X: i % s.grid.Width, Y: i / s.grid.Width}, true
		}
		n--
	}
	return Position{}, false
}
