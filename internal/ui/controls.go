package ui

import (
	"image"
	"time"

	"conway/internal/leaderboard"
	"conway/internal/session"
)

// Controls is the part of the session the page buttons drive.
type Controls interface {
	Reset(now time.Time)
	TogglePause(now time.Time) session.State
	ToggleMode() leaderboard.Mode
}

// Action identifies a page button.
type Action int

const (
	// ActionNone means no button was hit.
	ActionNone Action = iota
	// ActionReset starts a fresh board.
	ActionReset
	// ActionPause toggles between running and paused.
	ActionPause
	// ActionMode toggles between click and time scoring.
	ActionMode
)

// Button is a labelled clickable rectangle in panel coordinates.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// Label returns the button caption for the given session state.
func (b Button) Label(state session.State, mode leaderboard.Mode) string {
	switch b.Action {
	case ActionReset:
		return "Reset"
	case ActionPause:
		if state == session.Paused {
			return "Play"
		}
		return "Pause"
	case ActionMode:
		return "Score: " + mode.String()
	}
	return ""
}

// Enabled reports whether pressing the button would have an effect.
func (b Button) Enabled(state session.State) bool {
	if b.Action == ActionPause {
		return state != session.Won
	}
	return b.Action != ActionNone
}

// LayoutButtons stacks the three page buttons inside a panel of the given
// width, starting at top.
func LayoutButtons(width, top int) []Button {
	actions := []Action{ActionReset, ActionPause, ActionMode}
	buttons := make([]Button, len(actions))
	inner := width - 2*panelPadding
	if inner < buttonMinWidth {
		inner = buttonMinWidth
	}
	for i, action := range actions {
		y := top + i*(buttonHeight+buttonGap)
		buttons[i] = Button{
			Action: action,
			Rect:   image.Rect(panelPadding, y, panelPadding+inner, y+buttonHeight),
		}
	}
	return buttons
}

// HitButton returns the action of the button containing (x, y).
func HitButton(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

// Dispatch applies action to c.
func Dispatch(action Action, c Controls, now time.Time) {
	switch action {
	case ActionReset:
		c.Reset(now)
	case ActionPause:
		c.TogglePause(now)
	case ActionMode:
		c.ToggleMode()
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonHeight   = 24
	buttonGap      = 6
	buttonMinWidth = 60
	headerBaseline = 18
	sectionGap     = 10
)
