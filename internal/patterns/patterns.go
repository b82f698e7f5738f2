// Package patterns registers the built-in starting patterns and loads
// patterns from YAML files.
package patterns

import (
	"strconv"

	"gol-cycle/internal/core"
	pcore "gol-cycle/pkg/core"
	"gol-cycle/pkg/sims/life"
)

// Default placement of the small patterns, roughly the middle of the board.
const (
	defaultRow = 18
	defaultCol = 18
)

var shapes = map[string][]core.Coord{
	"block":   {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	"blinker": {{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	"toad": {
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	},
	"beacon": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	},
	"glider": {{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	"pulsar": pulsar(),
}

// gun is the demo pattern of the command line program. It uses absolute
// coordinates and is not offset.
var gun = [][2]int{
	{13, 2}, {14, 2}, {13, 3}, {14, 3}, {13, 12}, {14, 12}, {15, 12}, {12, 37},
	{12, 13}, {16, 13}, {11, 14}, {17, 14}, {11, 15}, {17, 15}, {14, 16}, {12, 17},
	{16, 17}, {13, 18}, {16, 18}, {15, 18}, {14, 19}, {11, 2}, {12, 22}, {13, 22},
	{11, 23}, {12, 23}, {13, 23}, {10, 24}, {14, 24}, {9, 26}, {10, 26}, {14, 26},
	{15, 26}, {11, 36}, {12, 36}, {11, 37},
}

func pulsar() []core.Coord {
	var coords []core.Coord
	for _, line := range []int{0, 5, 7, 12} {
		for _, span := range []int{2, 3, 4, 8, 9, 10} {
			coords = append(coords,
				core.Coord{Row: line, Col: span},
				core.Coord{Row: span, Col: line},
			)
		}
	}
	return coords
}

func placed(shape []core.Coord) core.Factory {
	return func(params map[string]string) []core.Coord {
		row := intParam(params, "row", defaultRow)
		col := intParam(params, "col", defaultCol)
		return core.Offset(shape, row, col)
	}
}

func absolute(cells [][2]int) core.Factory {
	return func(map[string]string) []core.Coord {
		coords := make([]core.Coord, 0, len(cells))
		for _, c := range cells {
			coords = append(coords, core.Coord{Row: c[0], Col: c[1]})
		}
		return coords
	}
}

// Soup scatters cells over the board. With no density each cell is a coin
// flip; the same seed always yields the same cells.
func Soup(params map[string]string) []core.Coord {
	rng := pcore.NewRNG(int64(intParam(params, "seed", 1)))
	density, hasDensity := -1.0, false
	if v, ok := params["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			density, hasDensity = parsed, true
		}
	}

	var coords []core.Coord
	for r := 0; r < life.Size; r++ {
		for c := 0; c < life.Size; c++ {
			var alive bool
			if hasDensity {
				alive = rng.Chance(density)
			} else {
				alive = rng.Bool()
			}
			if alive {
				coords = append(coords, core.Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

func intParam(params map[string]string, key string, fallback int) int {
	if v, ok := params[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func init() {
	core.Register("empty", absolute(nil))
	core.Register("gun", absolute(gun))
	core.Register("soup", Soup)
	for name, shape := range shapes {
		core.Register(name, placed(shape))
	}
}
