//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"time"

	"conway/internal/core"
	"conway/internal/leaderboard"
	"conway/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the panel reads from and drives.
type Source interface {
	Controls
	Parameters(now time.Time) core.ParameterSnapshot
	Snapshot(now time.Time) session.Snapshot
}

// HUD renders the stats, leaderboard and page buttons to the right of the
// board.
type HUD struct {
	src        Source
	board      *leaderboard.Board
	width      int
	panel      *ebiten.Image
	lastHeight int

	params       []string
	ranking      []string
	snap         session.Snapshot
	buttons      []Button
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(src Source, board *leaderboard.Board, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, board: board, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.buttons = LayoutButtons(width, headerBaseline+sectionGap)
	return h
}

// Update refreshes the cached text from the session and handles button
// clicks. It reports whether a click landed on the panel.
func (h *HUD) Update(panelOffsetX int, now time.Time) bool {
	if h == nil || h.src == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	consumed := h.handleInput(now)
	h.snap = h.src.Snapshot(now)
	h.params = ParameterLines(h.src.Parameters(now))
	h.ranking = LeaderboardLines(h.board, h.snap.Mode, rankingRows)
	return consumed
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput(now time.Time) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	action := HitButton(h.buttons, mx-h.panelOffsetX, my)
	for _, b := range h.buttons {
		if b.Action == action && b.Enabled(h.src.Snapshot(now).State) {
			Dispatch(action, h.src, now)
		}
	}
	return true
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, b := range h.buttons {
		h.drawButton(b.Rect, b.Label(h.snap.State, h.snap.Mode), b.Enabled(h.snap.State))
	}

	y := h.buttons[len(h.buttons)-1].Rect.Max.Y + sectionGap + lineHeight
	for _, line := range h.params {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	y += sectionGap
	text.Draw(h.panel, "Leaderboard", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	for i, line := range h.ranking {
		fg := color.RGBA{R: 180, G: 180, B: 190, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 140, G: 140, B: 150, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

const rankingRows = 5
