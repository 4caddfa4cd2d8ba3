package game

import (
	"time"

	"github.com/pkg/errors"
)

// Defaults match the classic 800x800 window split into 20px cells.
const (
	DefaultWidth         = 40
	DefaultHeight        = 40
	DefaultCellSize      = 20
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultInitialLength = 3

	minBoardSide = 5
	maxBoardSide = 200
	minCellSize  = 4
	maxCellSize  = 64
	minTick      = 10 * time.Millisecond
	maxTick      = 2 * time.Second
)

type Config struct {
	Width         int
	Height        int
	CellSize      int           // pixels per cell, raylib frontend only
	TickInterval  time.Duration // time between two Advance calls
	InitialLength int           // tail segments at round start
	Seed          uint64        // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		CellSize:      DefaultCellSize,
		TickInterval:  DefaultTickInterval,
		InitialLength: DefaultInitialLength,
	}
}

// Validate checks the ranges every frontend relies on.
func (c Config) Validate() error {
	if c.Width < minBoardSide || c.Width > maxBoardSide {
		return errors.Errorf("board width %d out of range [%d, %d]", c.Width, minBoardSide, maxBoardSide)
	}
	if c.Height < minBoardSide || c.Height > maxBoardSide {
		return errors.Errorf("board height %d out of range [%d, %d]", c.Height, minBoardSide, maxBoardSide)
	}
	if c.CellSize < minCellSize || c.CellSize > maxCellSize {
		return errors.Errorf("cell size %d out of range [%d, %d]", c.CellSize, minCellSize, maxCellSize)
	}
	if c.TickInterval < minTick || c.TickInterval > maxTick {
		return errors.Errorf("tick interval %s out of range [%s, %s]", c.TickInterval, minTick, maxTick)
	}
	// The starting tail is laid out to the left of the centred head.
	if c.InitialLength < 1 || c.InitialLength > c.Width/2 {
		return errors.Errorf("initial length %d out of range [1, %d]", c.InitialLength, c.Width/2)
	}
	return nil
}

func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height}
}
