package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"conway/internal/leaderboard"
	"conway/internal/session"
	"conway/internal/ui"
)

// Frontend connects a session to a terminal screen. All session calls happen
// on the goroutine running Run.
type Frontend struct {
	screen  tcell.Screen
	sess    *session.Session
	board   *leaderboard.Board
	text    tcell.Style
	notice  tcell.Style
	pressed bool
	now     func() time.Time
}

// New attaches a Sink for screen to sess.
func New(screen tcell.Screen, sess *session.Session, board *leaderboard.Board) *Frontend {
	sess.AttachSink(NewSink(screen))
	return &Frontend{
		screen: screen,
		sess:   sess,
		board:  board,
		text:   tcell.StyleDefault,
		notice: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		now:    time.Now,
	}
}

// HandleEvent applies one terminal event to the session. It reports whether
// the user asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	now := f.now()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ', 'p', 'P':
				f.sess.TogglePause(now)
			case 'r', 'R':
				f.sess.Reset(now)
			case 'm', 'M':
				f.sess.ToggleMode()
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !f.pressed {
			x, y := ev.Position()
			f.sess.Pointer(float64(x), float64(y), session.Point{})
		}
		f.pressed = down
	case *tcell.EventResize:
		f.screen.Sync()
		f.sess.Redraw()
	}
	return false
}

// Draw writes the stats and leaderboard below the board.
func (f *Frontend) Draw() {
	now := f.now()
	w, h := f.screen.Size()
	top := f.sess.Grid().Height() + 1
	for y := top - 1; y < h; y++ {
		for x := range w {
			f.screen.SetContent(x, y, ' ', nil, f.text)
		}
	}

	snap := f.sess.Snapshot(now)
	if banner := ui.Banner(snap); banner != "" {
		drawText(f.screen, 0, top, f.notice, banner)
		top++
	}
	drawText(f.screen, 0, top, f.text, "space pause  r reset  m mode  q quit")
	top += 2

	for i, line := range ui.ParameterLines(f.sess.Parameters(now)) {
		drawText(f.screen, 0, top+i, f.text, line)
	}
	for i, line := range ui.LeaderboardLines(f.board, snap.Mode, panelRows) {
		drawText(f.screen, leaderboardColumn, top+i, f.text, line)
	}
	f.screen.Show()
}

// Run polls terminal events and drives session frames every frame interval
// until the user quits or ctx ends. It returns ctx.Err() in the latter case.
func (f *Frontend) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if f.HandleEvent(ev) {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			f.sess.Frame(f.now())
			f.Draw()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// PanelHeight is the number of rows the stats panel needs below the board.
const PanelHeight = 20

const (
	panelRows         = 5
	leaderboardColumn = 36
)
