//go:build !ebiten

package ui

import (
	"time"

	"conway/internal/leaderboard"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Controls, *leaderboard.Board, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, time.Time) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
