package game

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.dir, got, tt.want)
		}
		sum := tt.dir.Delta().Add(tt.want.Delta())
		if sum != (Position{}) {
			t.Errorf("%v and %v deltas do not cancel: %v", tt.dir, tt.want, sum)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !d.Valid() {
			t.Errorf("%v reported invalid", d)
		}
	}
	for _, d := range []Direction{0, 5, -1} {
		if d.Valid() {
			t.Errorf("Direction(%d) reported valid", int(d))
		}
		if d.Delta() != (Position{}) {
			t.Errorf("Direction(%d) has a non-zero delta", int(d))
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 40, Height: 30}
	tests := []struct {
		in, want Position
	}{
		{Position{40, 5}, Position{0, 5}},
		{Position{-1, 5}, Position{39, 5}},
		{Position{5, -1}, Position{5, 29}},
		{Position{5, 30}, Position{5, 0}},
		{Position{10, 10}, Position{10, 10}},
		// Both axes are checked independently.
		{Position{40, -1}, Position{0, 29}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := map[Cell]string{
		Empty:   "empty",
		Head:    "head",
		Body:    "body",
		Food:    "food",
		Cell(9): "unknown",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Cell(%d).String() = %q, want %q", c, got, want)
		}
	}
}
