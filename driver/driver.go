// Package driver runs a game.GameState on a fixed tick cadence on behalf of a
// frontend. Frontends call Update once per rendered frame with the elapsed
// frame time and the input polled for that frame.
package driver

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-classic/game"
	"snake-classic/sound"
)

// Input is what a frontend polled during one frame.
type Input struct {
	Directions []game.Direction // applied in order, empty when no key is held
	Confirm    bool
	Quit       bool
}

// Events reports what happened during one Update call.
type Events struct {
	Ticked    bool
	Ate       bool
	Died      bool
	Restarted bool
}

type Driver struct {
	cfg   game.Config
	state *game.GameState
	stats *game.SessionStats
	rng   *rand.Rand

	accumulated time.Duration

	logger *log.Logger
	cues   sound.Player
	now    func() time.Time
}

type Option func(*Driver)

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithSound plays a cue when the snake eats and when a round ends.
func WithSound(p sound.Player) Option {
	return func(d *Driver) { d.cues = p }
}

// WithClock replaces time.Now for round start and end stamps.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// WithRand sets the random source shared by every round of the session.
func WithRand(r *rand.Rand) Option {
	return func(d *Driver) { d.rng = r }
}

func New(cfg game.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}
	d := &Driver{
		cfg:    cfg,
		stats:  game.NewSessionStats(),
		logger: log.New(io.Discard, "", 0),
		cues:   sound.Nop{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = game.NewRand(cfg.Seed)
	}
	if err := d.startRound(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Driver) startRound() error {
	state, err := game.NewGame(d.cfg, d.rng)
	if err != nil {
		return errors.Wrap(err, "start round")
	}
	d.state = state
	d.state.StartTime = d.now()
	d.accumulated = 0
	d.logger.Printf("round %s started on %dx%d board", d.state.ID, d.cfg.Width, d.cfg.Height)
	return nil
}

// Update advances the session by one frame. At most one tick runs per call;
// a long frame does not catch up missed ticks.
func (d *Driver) Update(dt time.Duration, in Input) Events {
	var ev Events

	for _, dir := range in.Directions {
		d.state.SetDirection(dir)
	}

	if d.state.GameOver() {
		if in.Confirm {
			if err := d.startRound(); err != nil {
				d.logger.Printf("restart failed: %v", err)
				return ev
			}
			ev.Restarted = true
		}
		return ev
	}

	d.accumulated += dt
	if d.accumulated < d.cfg.TickInterval {
		return ev
	}
	d.accumulated = 0

	score := d.state.Score()
	d.state.Advance()
	ev.Ticked = true
	ev.Ate = d.state.Score() > score
	if ev.Ate {
		d.cues.Play(sound.Eat)
	}

	if d.state.GameOver() {
		ev.Died = true
		d.cues.Play(sound.GameOver)
		rec := d.stats.AddGame(d.state, d.now())
		d.logger.Printf("round %s over (%s): score %d, length %d, %d ticks in %s",
			rec.ID, rec.Outcome, rec.Score, rec.Length, d.state.Ticks(), rec.Duration().Round(time.Millisecond))
	}
	return ev
}

// State returns the current round for rendering. Callers must not mutate it.
func (d *Driver) State() *game.GameState { return d.state }

func (d *Driver) Stats() *game.SessionStats { return d.stats }

func (d *Driver) Config() game.Config { return d.cfg }
