package core

import (
	"io"
	"sort"
)

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Renderable is implemented by anything that can produce a text view of itself.
type Renderable interface {
	Draw(w io.Writer) error
}

// Configurable is implemented by runners that accept a Config record.
type Configurable interface {
	Configure(cfg Config)
}

// Factory builds the initial alive cells of a pattern using an optional
// parameter map.
type Factory func(params map[string]string) []Coord

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
