//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"conway/internal/core"
	"conway/internal/session"
)

// GridPainter keeps an offscreen image of the board. Render uploads a grid
// snapshot into it; Draw blits it onto the frame, scaled to the cell size.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	cell    int
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), cell: 1, palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Render implements session.RenderSink.
func (gp *GridPainter) Render(g core.Grid, boardWidth, boardHeight, cellSize int) error {
	if gp == nil || gp.img == nil {
		return session.ErrNoSurface
	}
	if g.Width() != gp.w || g.Height() != gp.h {
		return errors.Errorf("[GridPainter.Render] painter sized %dx%d, grid %dx%d", gp.w, gp.h, g.Width(), g.Height())
	}
	fillBinaryRGBA(gp.buf, g, gp.palette.Alive, gp.palette.Dead)
	gp.img.WritePixels(gp.buf)
	gp.cell = cellSize
	return nil
}

// Draw paints the last rendered grid at the given offset.
func (gp *GridPainter) Draw(dst *ebiten.Image, offsetX, offsetY float64) {
	if gp == nil || gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cell), float64(gp.cell))
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
