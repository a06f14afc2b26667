package ui

import (
	"strings"
	"testing"
	"time"

	"conway/internal/core"
	"conway/internal/leaderboard"
	"conway/internal/session"
)

type fakeControls struct {
	resets, pauses, modes int
}

func (f *fakeControls) Reset(time.Time) { f.resets++ }

func (f *fakeControls) TogglePause(time.Time) session.State {
	f.pauses++
	return session.Paused
}

func (f *fakeControls) ToggleMode() leaderboard.Mode {
	f.modes++
	return leaderboard.Time
}

func TestLayoutAndHit(t *testing.T) {
	buttons := LayoutButtons(200, 100)
	if len(buttons) != 3 {
		t.Fatalf("%d buttons, expected 3", len(buttons))
	}
	for i := 1; i < len(buttons); i++ {
		if buttons[i].Rect.Overlaps(buttons[i-1].Rect) {
			t.Fatalf("button %d overlaps button %d", i, i-1)
		}
	}
	for _, b := range buttons {
		c := b.Rect.Min.Add(b.Rect.Size().Div(2))
		if got := HitButton(buttons, c.X, c.Y); got != b.Action {
			t.Fatalf("hit at %v returned %v, expected %v", c, got, b.Action)
		}
	}
	if HitButton(buttons, 0, 0) != ActionNone {
		t.Fatal("hit outside every button")
	}
	if HitButton(buttons, buttons[0].Rect.Max.X, buttons[0].Rect.Min.Y) != ActionNone {
		t.Fatal("right edge must be exclusive")
	}
}

func TestDispatch(t *testing.T) {
	f := &fakeControls{}
	now := time.Unix(0, 0)
	for _, a := range []Action{ActionReset, ActionPause, ActionPause, ActionMode, ActionNone} {
		Dispatch(a, f, now)
	}
	if f.resets != 1 || f.pauses != 2 || f.modes != 1 {
		t.Fatalf("dispatch counts %+v", *f)
	}
}

func TestButtonLabels(t *testing.T) {
	pause := Button{Action: ActionPause}
	if pause.Label(session.Running, leaderboard.Clicks) != "Pause" || pause.Label(session.Paused, leaderboard.Clicks) != "Play" {
		t.Fatal("pause button label does not follow state")
	}
	if pause.Enabled(session.Won) {
		t.Fatal("pause enabled after winning")
	}
	mode := Button{Action: ActionMode}
	if got := mode.Label(session.Running, leaderboard.Time); got != "Score: time" {
		t.Fatalf("mode label %q", got)
	}
}

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Session", Params: []core.Parameter{{Key: "clicks", Label: "Clicks", Value: "3"}}},
	}}
	lines := ParameterLines(snap)
	if len(lines) != 2 || lines[0] != "Session" || lines[1] != "  Clicks: 3" {
		t.Fatalf("parameter lines %q", lines)
	}

	board := leaderboard.Static()
	rows := LeaderboardLines(board, leaderboard.Time, 2)
	if len(rows) != 3 || !strings.Contains(rows[0], "Time (s)") || !strings.Contains(rows[1], "12.48") {
		t.Fatalf("leaderboard lines %q", rows)
	}

	won := session.Snapshot{State: session.Won, Mode: leaderboard.Clicks, Score: 4}
	if Banner(won) != "You won! Clicks: 4" {
		t.Fatalf("banner %q", Banner(won))
	}
	if Banner(session.Snapshot{State: session.Running}) != "" {
		t.Fatal("banner shown while running")
	}
}
