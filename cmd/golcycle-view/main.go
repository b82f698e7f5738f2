//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gol-cycle/internal/app"
	"gol-cycle/internal/core"
	"gol-cycle/internal/patterns"
	"gol-cycle/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	name := cfg.Pattern
	var coords []core.Coord
	runCfg := core.DefaultConfig()
	if cfg.File != "" {
		f, err := patterns.LoadFile(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		name = f.Name
		coords = f.Coords()
		runCfg = f.Config(runCfg)
	} else {
		factory, ok := core.Patterns()[cfg.Pattern]
		if !ok {
			log.Fatalf("unknown pattern %q", cfg.Pattern)
		}
		coords = factory(cfg.Params.Map())
	}

	game := app.New(life.FromCoords(coords), runCfg, cfg.Scale)

	ebiten.SetWindowTitle("golcycle: " + name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(life.Size*cfg.Scale, life.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
