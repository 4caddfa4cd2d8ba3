// Package sound plays short synthesized cues for game events.
package sound

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const SampleRate = beep.SampleRate(44100)

type Cue int

const (
	Eat Cue = iota + 1
	GameOver
)

func (c Cue) String() string {
	switch c {
	case Eat:
		return "eat"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(Cue)
	Close()
}

type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	Eat: {{freq: 880, dur: 50 * time.Millisecond}},
	GameOver: {
		{freq: 440, dur: 120 * time.Millisecond},
		{freq: 330, dur: 120 * time.Millisecond},
		{freq: 220, dur: 240 * time.Millisecond},
	},
}

// Streamer builds the finite sample stream for c.
func Streamer(sr beep.SampleRate, c Cue) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, errors.Errorf("no tones for cue %d", int(c))
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "sine tone %.0fHz", t.freq)
		}
		parts = append(parts, beep.Take(sr.N(t.dur), sine))
	}
	return beep.Seq(parts...), nil
}

// Speaker plays cues on the default audio device.
type Speaker struct {
	sr beep.SampleRate
}

func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &Speaker{sr: SampleRate}, nil
}

func (s *Speaker) Play(c Cue) {
	st, err := Streamer(s.sr, c)
	if err != nil {
		log.Printf("play %v: %v", c, err)
		return
	}
	speaker.Play(st)
}

func (s *Speaker) Close() {
	speaker.Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close() {}
