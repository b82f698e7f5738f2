//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gol-cycle/pkg/sims/life"
)

// Overlay prints the run status in the top-left corner.
type Overlay struct {
	text string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update refreshes the status text.
func (o *Overlay) Update(g *life.Game, paused bool) {
	o.text = Status(g, paused)
}

// Draw renders the status text.
func (o *Overlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}
