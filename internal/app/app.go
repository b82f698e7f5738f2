//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gol-cycle/internal/core"
	"gol-cycle/internal/render"
	"gol-cycle/internal/ui"
	"gol-cycle/pkg/sims/life"
)

// Game adapts a cycle-detecting run to the ebiten.Game interface. One
// generation is advanced per tick until a repeat is found.
type Game struct {
	start   life.Board
	cfg     core.Config
	run     *life.Game
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided starting board.
func New(start life.Board, cfg core.Config, scale int) *Game {
	g := &Game{
		start:    start,
		cfg:      cfg,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
	g.Reset()
	return g
}

// Reset restarts the run from the starting board.
func (g *Game) Reset() {
	// The window is the renderer; text frames are not wanted here.
	cfg := g.cfg
	cfg.Draws = false
	cfg.SleepTime = 0

	g.run = life.NewGame(g.start)
	g.run.Configure(cfg)
	g.tickOnce = false
}

// Run exposes the underlying run.
func (g *Game) Run() *life.Game { return g.run }

// Update handles per-frame logic and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if (!g.paused || g.tickOnce) && !g.run.Done() {
		g.run.Step()
		g.tickOnce = false
	}
	g.overlay.Update(g.run, g.paused)
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.run.Board(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return life.Size * g.scale, life.Size * g.scale
}
