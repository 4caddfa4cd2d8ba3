package game

import (
	"sort"
	"time"
)

// GameRecord describes one finished round.
type GameRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     uint32
	Length    int
	Outcome   Outcome
}

func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats aggregates the rounds played since the process started.
// Nothing is written to disk.
type SessionStats struct {
	Games []GameRecord
}

func NewSessionStats() *SessionStats {
	return &SessionStats{Games: make([]GameRecord, 0)}
}

// AddGame records a finished round.
func (s *SessionStats) AddGame(g *GameState, end time.Time) GameRecord {
	record := GameRecord{
		ID:        g.ID,
		StartTime: g.StartTime,
		EndTime:   end,
		Score:     g.Score(),
		Length:    g.Length(),
		Outcome:   g.Outcome(),
	}
	s.Games = append(s.Games, record)
	return record
}

func (s *SessionStats) GamesPlayed() int {
	return len(s.Games)
}

// MaxScore returns the best score of the session.
func (s *SessionStats) MaxScore() uint32 {
	var best uint32
	for _, g := range s.Games {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

// AverageScore returns the mean score, 0 before the first finished round.
func (s *SessionStats) AverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	var total float64
	for _, g := range s.Games {
		total += float64(g.Score)
	}
	return total / float64(len(s.Games))
}

// MedianScore returns the median score, 0 before the first finished round.
func (s *SessionStats) MedianScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	scores := make([]float64, len(s.Games))
	for i, g := range s.Games {
		scores[i] = float64(g.Score)
	}
	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		return (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	}
	return scores[len(scores)/2]
}

// AverageDuration returns the mean wall-clock length of a round.
func (s *SessionStats) AverageDuration() time.Duration {
	if len(s.Games) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range s.Games {
		total += g.Duration()
	}
	return total / time.Duration(len(s.Games))
}
