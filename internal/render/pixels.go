package render

import (
	"image/color"

	"conway/internal/core"
)

// fillBinaryRGBA converts grid cells into RGBA pixels in buf, one pixel per
// cell. buf must hold 4*W*H bytes.
func fillBinaryRGBA(buf []byte, g core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range g.Cells() {
		base := i * 4
		if c != core.Dead {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Palette selects the colours for live and dead cells. A fully transparent
// Dead colour leaves the background showing through.
type Palette struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette paints white cells on black, like the game page.
func DefaultPalette() Palette {
	return Palette{Alive: color.White, Dead: color.Black}
}

// TransparentPalette paints black cells and leaves dead cells transparent.
func TransparentPalette() Palette {
	return Palette{Alive: color.Black, Dead: color.Transparent}
}
