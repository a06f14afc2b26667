//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the paused and won notices centred over the board.
type Overlay struct {
	message string
}

// NewOverlay constructs an empty overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Update picks the notice for the current session snapshot.
func (o *Overlay) Update(snap session.Snapshot) {
	if o == nil {
		return
	}
	o.message = Banner(snap)
}

// Draw paints the notice, if any, centred in a board of the given size.
func (o *Overlay) Draw(screen *ebiten.Image, boardWidth, boardHeight int) {
	if o == nil || o.message == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, o.message)
	w := bounds.Dx() + 2*panelPadding
	h := bounds.Dy() + 2*panelPadding
	x := (boardWidth - w) / 2
	y := (boardHeight - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
	text.Draw(screen, o.message, face, x+panelPadding, y+panelPadding+bounds.Dy(), color.RGBA{R: 240, G: 220, B: 120, A: 255})
}
