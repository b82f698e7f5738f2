package render

import (
	"image/color"

	"gol-cycle/pkg/sims/life"
)

// PixelBytes is the RGBA buffer length needed for one board.
const PixelBytes = 4 * life.Size * life.Size

// FillRGBA paints the board into buf, one RGBA pixel per cell in row-major
// order. buf must hold at least PixelBytes bytes.
func FillRGBA(buf []byte, b *life.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range b.Cells() {
		base := i * 4
		if c != 0 {
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
