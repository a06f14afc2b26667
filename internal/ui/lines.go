package ui

import (
	"fmt"

	"conway/internal/core"
	"conway/internal/leaderboard"
	"conway/internal/session"
)

// ParameterLines flattens a snapshot into "Label: value" rows with a header
// row per group.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// LeaderboardLines renders the top n rows of board for mode under a header
// carrying the score label.
func LeaderboardLines(board *leaderboard.Board, mode leaderboard.Mode, n int) []string {
	lines := []string{fmt.Sprintf("%-3s %-10s %s", "#", "Name", mode.Label())}
	for i, e := range board.Top(mode, n) {
		lines = append(lines, fmt.Sprintf("%-3d %-10s %s", i+1, e.Name, session.FormatScore(mode, e.Score)))
	}
	return lines
}

// Banner returns the notice shown over the board, or "" while running.
func Banner(snap session.Snapshot) string {
	switch snap.State {
	case session.Won:
		return fmt.Sprintf("You won! %s: %s", snap.Mode.Label(), session.FormatScore(snap.Mode, snap.Score))
	case session.Paused:
		return "Paused"
	}
	return ""
}
