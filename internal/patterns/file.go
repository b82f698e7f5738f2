package patterns

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gol-cycle/internal/core"
)

// File is a pattern stored as YAML.
//
//	name: pair-of-blocks
//	description: two still lifes
//	cells: [[1, 1], [1, 2], [2, 1], [2, 2]]
//	config:
//	  draws: "true"
//	  sleeptime: "50"
type File struct {
	// Name identifies the pattern in logs and output.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Cells lists alive cells as [row, column] pairs. Cells outside the
	// board are accepted here and ignored when the board is built.
	Cells [][]int `yaml:"cells"`

	// Settings uses the keys understood by core.Config.Merge.
	Settings map[string]string `yaml:"config,omitempty"`
}

// LoadFile reads and parses a pattern file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a pattern document, rejecting unknown fields.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateFile(&f); err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return &f, nil
}

func validateFile(f *File) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	for i, cell := range f.Cells {
		if len(cell) != 2 {
			return fmt.Errorf("cells[%d]: expected [row, column], got %d values", i, len(cell))
		}
	}
	return nil
}

// Coords converts the cell list.
func (f *File) Coords() []core.Coord {
	coords := make([]core.Coord, 0, len(f.Cells))
	for _, cell := range f.Cells {
		coords = append(coords, core.Coord{Row: cell[0], Col: cell[1]})
	}
	return coords
}

// Config overlays the file's settings on base.
func (f *File) Config(base core.Config) core.Config {
	return base.Merge(f.Settings)
}
