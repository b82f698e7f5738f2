package life

import (
	"bufio"
	"io"
	"strings"
)

// Glyphs used by the text renderer. Every cell is two characters wide.
const (
	WallGlyph  = "# "
	AliveGlyph = "# "
	DeadGlyph  = "  "
)

// frameBytes is the length of one drawn board.
const frameBytes = (Size + 2) * (2*(Size+2) + 1)

var wallRow = strings.Repeat(WallGlyph, Size+2) + "\n"

// Draw writes the board framed by a wall border: Size+2 rows of Size+2
// glyphs. The frame reaches w in a single Write.
func (b *Board) Draw(w io.Writer) error {
	bw := bufio.NewWriterSize(w, frameBytes)
	bw.WriteString(wallRow)
	for _, row := range b.grid {
		bw.WriteString(WallGlyph)
		for _, alive := range row {
			if alive {
				bw.WriteString(AliveGlyph)
			} else {
				bw.WriteString(DeadGlyph)
			}
		}
		bw.WriteString(WallGlyph)
		bw.WriteByte('\n')
	}
	bw.WriteString(wallRow)
	return bw.Flush()
}

// String renders the board as text.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Draw(&sb)
	return sb.String()
}
