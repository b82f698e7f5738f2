package life

import "gol-cycle/internal/core"

// Size is the side length of every board.
const Size = 40

const keyWords = (Size*Size + 63) / 64

// Key is a bit-packed copy of a board, one bit per cell in row-major order.
// Two boards are equal exactly when their keys are equal.
type Key [keyWords]uint64

// Board is a Size×Size grid of cells with clipped (non-wrapping) edges.
// Boards are values: assignment copies every cell.
type Board struct {
	grid  [Size][Size]bool
	flips []core.Coord
}

// FromCoords builds a board with the given cells alive. Coordinates outside
// the grid are ignored.
func FromCoords(coords []core.Coord) Board {
	var b Board
	for _, c := range coords {
		if c.Row < 0 || c.Row >= Size || c.Col < 0 || c.Col >= Size {
			continue
		}
		b.grid[c.Row][c.Col] = true
	}
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() Board {
	return Board{grid: b.grid}
}

// Equal reports whether both boards hold the same cells.
func (b *Board) Equal(other *Board) bool {
	return b.grid == other.grid
}

// Alive reports the state of a cell. Out-of-range coordinates are dead.
func (b *Board) Alive(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return b.grid[row][col]
}

// Population counts the alive cells.
func (b *Board) Population() int {
	n := 0
	for _, row := range b.grid {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// AliveCells lists the alive cells in row-major order.
func (b *Board) AliveCells() []core.Coord {
	var out []core.Coord
	for r, row := range b.grid {
		for c, alive := range row {
			if alive {
				out = append(out, core.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Cells returns the board as a row-major 0/1 buffer.
func (b *Board) Cells() []uint8 {
	cells := make([]uint8, Size*Size)
	for r, row := range b.grid {
		for c, alive := range row {
			if alive {
				cells[r*Size+c] = 1
			}
		}
	}
	return cells
}

// Key packs the board into its canonical history key.
func (b *Board) Key() Key {
	var k Key
	for r, row := range b.grid {
		for c, alive := range row {
			if alive {
				i := r*Size + c
				k[i/64] |= 1 << (i % 64)
			}
		}
	}
	return k
}

// Advance moves the board forward one generation. Every flip is decided
// against the current cells before any of them is applied.
func (b *Board) Advance() {
	b.flips = b.flips[:0]
	for r, row := range b.grid {
		for c, alive := range row {
			n := b.liveNeighbours(r, c)
			if alive {
				if n != 2 && n != 3 {
					b.flips = append(b.flips, core.Coord{Row: r, Col: c})
				}
			} else if n == 3 {
				b.flips = append(b.flips, core.Coord{Row: r, Col: c})
			}
		}
	}
	for _, f := range b.flips {
		b.grid[f.Row][f.Col] = !b.grid[f.Row][f.Col]
	}
}

// Next returns the generation after b without modifying it.
func Next(b Board) Board {
	next := b.Clone()
	next.Advance()
	return next
}

func (b *Board) liveNeighbours(row, col int) int {
	rlo, rhi := core.ClipRange(row, Size)
	clo, chi := core.ClipRange(col, Size)
	n := 0
	for r := rlo; r < rhi; r++ {
		for c := clo; c < chi; c++ {
			if b.grid[r][c] && !(r == row && c == col) {
				n++
			}
		}
	}
	return n
}
