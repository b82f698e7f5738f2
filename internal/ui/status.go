package ui

import (
	"fmt"

	"gol-cycle/pkg/sims/life"
)

// Status formats the one-line overlay text for a run in progress.
func Status(g *life.Game, paused bool) string {
	line := fmt.Sprintf("gen %d  pop %d", g.Generation(), g.Board().Population())
	if g.Done() {
		res := g.Result()
		line += fmt.Sprintf("  %s (first seen %d)", res.Kind(), res.RepeatingKey)
		if res.Kind() == life.Periodic {
			line += fmt.Sprintf(" period %d", res.Period())
		}
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
