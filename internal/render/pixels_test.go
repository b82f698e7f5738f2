package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"gol-cycle/internal/core"
	"gol-cycle/pkg/sims/life"
)

func TestFillRGBA(t *testing.T) {
	b := life.FromCoords([]core.Coord{{Row: 0, Col: 1}, {Row: life.Size - 1, Col: life.Size - 1}})
	buf := make([]byte, PixelBytes)
	on := color.RGBA{R: 255, G: 200, B: 100, A: 255}
	off := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	FillRGBA(buf, &b, on, off)

	pixel := func(row, col int) []byte {
		base := 4 * (row*life.Size + col)
		return buf[base : base+4]
	}
	assert.Equal(t, []byte{255, 200, 100, 255}, pixel(0, 1))
	assert.Equal(t, []byte{255, 200, 100, 255}, pixel(life.Size-1, life.Size-1))
	assert.Equal(t, []byte{0, 0, 0, 255}, pixel(0, 0))
	assert.Equal(t, []byte{0, 0, 0, 255}, pixel(1, 1))
}
