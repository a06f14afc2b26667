// Package term runs the board in a terminal on tcell, one column per cell.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"conway/internal/core"
	"conway/internal/session"
)

// Sink draws grids onto a tcell screen. It implements session.RenderSink.
type Sink struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
}

// NewSink returns a sink drawing white cells on black.
func NewSink(screen tcell.Screen) *Sink {
	return &Sink{
		screen: screen,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Render paints g at the top-left corner of the screen and shows it.
func (s *Sink) Render(g core.Grid, _, _, _ int) error {
	if s == nil || s.screen == nil {
		return session.ErrNoSurface
	}
	w, h := s.screen.Size()
	if g.Width() > w || g.Height() > h {
		return errors.Errorf("[Sink.Render] screen %dx%d too small for board %dx%d", w, h, g.Width(), g.Height())
	}
	for y := range g.Height() {
		for x := range g.Width() {
			style := s.dead
			if g.At(x, y) == core.Alive {
				style = s.alive
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Config rescales sc to one terminal column per cell. The cell count is kept
// where it fits a screenW*screenH terminal with the panel below the board, and
// clamped otherwise.
func Config(sc session.Config, screenW, screenH int) session.Config {
	size := sc.GridSize()
	sc.BoardWidth = max(min(size.W, screenW), 1)
	sc.BoardHeight = max(min(size.H, screenH-PanelHeight), 1)
	sc.Resolution = 1
	return sc
}
