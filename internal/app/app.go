//go:build ebiten

package app

import (
	"image/color"
	"time"

	"conway/internal/leaderboard"
	"conway/internal/render"
	"conway/internal/session"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the side panel in logical pixels.
const PanelWidth = 220

// pageColor shows through dead cells under the transparent palette.
var pageColor = color.RGBA{R: 236, G: 236, B: 232, A: 255}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	boardW, boardH int
	now            func() time.Time
}

// New constructs a Game for the provided session and attaches a painter as
// its render sink.
func New(sess *session.Session, board *leaderboard.Board, palette render.Palette) *Game {
	cfg := sess.Config()
	size := cfg.GridSize()
	gp := render.NewGridPainter(size.W, size.H, palette)
	sess.AttachSink(gp)
	sess.Redraw()
	return &Game{
		sess:    sess,
		painter: gp,
		hud:     ui.NewHUD(sess, board, PanelWidth),
		overlay: ui.NewOverlay(),
		boardW:  size.W * cfg.Resolution,
		boardH:  size.H * cfg.Resolution,
		now:     time.Now,
	}
}

// Update handles per-frame input and advances the session when a tick is due.
func (g *Game) Update() error {
	now := g.now()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePause(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reset(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sess.ToggleMode()
	}

	if !g.hud.Update(g.boardW, now) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.sess.Pointer(float64(mx), float64(my), session.Point{})
	}

	g.sess.Frame(now)
	g.overlay.Update(g.sess.Snapshot(now))
	return nil
}

// Draw renders the board, the side panel and any notice.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pageColor)
	g.painter.Draw(screen, 0, 0)
	g.overlay.Draw(screen, g.boardW, g.boardH)
	g.hud.Draw(screen, g.boardW, g.boardH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardW + PanelWidth, g.boardH
}
