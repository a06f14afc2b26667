// Package leaderboard holds the read-only score table shown next to the board.
// Scores are illustrative and never persisted.
package leaderboard

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how a session is scored.
type Mode int

const (
	// Clicks scores by the number of cells painted.
	Clicks Mode = iota
	// Time scores by seconds elapsed since the session started.
	Time
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if m == Time {
		return "time"
	}
	return "clicks"
}

// Label is the column header for scores in this mode.
func (m Mode) Label() string {
	if m == Time {
		return "Time (s)"
	}
	return "Clicks"
}

// Toggle switches between click and time scoring.
func (m Mode) Toggle() Mode {
	if m == Time {
		return Clicks
	}
	return Time
}

// ParseMode maps a configuration name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clicks":
		return Clicks, nil
	case "time":
		return Time, nil
	}
	return Clicks, errors.Errorf("[ParseMode] unknown scoring mode %q", s)
}

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score float64
}

// Board is an ordered, read-only table per scoring mode. Lower scores rank
// higher.
type Board struct {
	entries map[Mode][]Entry
}

// New builds a board from per-mode entries. Input slices are copied.
func New(entries map[Mode][]Entry) *Board {
	b := &Board{entries: make(map[Mode][]Entry, len(entries))}
	for mode, list := range entries {
		sorted := append([]Entry(nil), list...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })
		b.entries[mode] = sorted
	}
	return b
}

// Static returns the illustrative table shipped with the game.
func Static() *Board {
	return New(map[Mode][]Entry{
		Clicks: {
			{Name: "maceo", Score: 41},
			{Name: "glider", Score: 57},
			{Name: "blinker", Score: 63},
			{Name: "toad", Score: 88},
			{Name: "beacon", Score: 102},
		},
		Time: {
			{Name: "maceo", Score: 12.48},
			{Name: "glider", Score: 19.02},
			{Name: "toad", Score: 23.75},
			{Name: "blinker", Score: 31.4},
			{Name: "beacon", Score: 44.9},
		},
	})
}

// Entries returns the rows for mode, best first. The slice is a copy.
func (b *Board) Entries(mode Mode) []Entry {
	if b == nil {
		return nil
	}
	return append([]Entry(nil), b.entries[mode]...)
}

// Top returns at most n rows for mode.
func (b *Board) Top(mode Mode, n int) []Entry {
	rows := b.Entries(mode)
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
