package session

import (
	"fmt"
	"strconv"
	"time"

	"conway/internal/core"
	"conway/internal/leaderboard"
)

// Snapshot is a read-only view of the session for frontends.
type Snapshot struct {
	State      State
	Generation int
	Alive      int
	Clicks     int
	Elapsed    time.Duration
	Mode       leaderboard.Mode
	Score      float64
	Skipped    int
}

// Snapshot captures the session counters at now.
func (s *Session) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:      s.state,
		Generation: s.generation,
		Alive:      s.alive,
		Clicks:     s.clicks,
		Elapsed:    s.Elapsed(now),
		Mode:       s.mode,
		Score:      s.Score(now),
		Skipped:    s.skipped,
	}
}

// FormatScore renders a score the way the mode displays it.
func FormatScore(mode leaderboard.Mode, score float64) string {
	if mode == leaderboard.Time {
		return strconv.FormatFloat(score, 'f', 2, 64)
	}
	return strconv.Itoa(int(score))
}

// Parameters groups the session values for HUD display.
func (s *Session) Parameters(now time.Time) core.ParameterSnapshot {
	snap := s.Snapshot(now)
	size := s.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "size", Label: "Cells", Value: fmt.Sprintf("%dx%d", size.W, size.H)},
				{Key: "resolution", Label: "Cell px", Value: strconv.Itoa(s.cfg.Resolution)},
				{Key: "interval", Label: "Tick", Value: s.cfg.Interval.String()},
				{Key: "basis", Label: "Win basis", Value: s.cfg.Basis.String()},
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: snap.State.String()},
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(snap.Generation)},
				{Key: "alive", Label: "Alive", Value: strconv.Itoa(snap.Alive)},
				{Key: "clicks", Label: "Clicks", Value: strconv.Itoa(snap.Clicks)},
				{Key: "time", Label: "Time", Value: strconv.FormatFloat(snap.Elapsed.Seconds(), 'f', 2, 64) + "s"},
			},
		},
		{
			Name: "Scoring",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Value: snap.Mode.String()},
				{Key: "score", Label: snap.Mode.Label(), Value: FormatScore(snap.Mode, snap.Score)},
			},
		},
	}}
}
