//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gol-cycle/pkg/sims/life"
)

// GridPainter keeps one image the size of the board and repaints it from
// the current cells.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a life board.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(life.Size, life.Size),
		buf: make([]byte, PixelBytes),
	}
}

// Blit uploads the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *life.Board, on, off color.Color, scale int) {
	FillRGBA(gp.buf, b, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
