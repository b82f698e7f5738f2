package core

// Offset translates every coordinate by (dr, dc).
func Offset(coords []Coord, dr, dc int) []Coord {
	out := make([]Coord, len(coords))
	for i, c := range coords {
		out[i] = Coord{Row: c.Row + dr, Col: c.Col + dc}
	}
	return out
}

// Bounds returns the inclusive bounding box of coords. ok is false for an
// empty list.
func Bounds(coords []Coord) (min, max Coord, ok bool) {
	if len(coords) == 0 {
		return Coord{}, Coord{}, false
	}
	min, max = coords[0], coords[0]
	for _, c := range coords[1:] {
		if c.Row < min.Row {
			min.Row = c.Row
		}
		if c.Col < min.Col {
			min.Col = c.Col
		}
		if c.Row > max.Row {
			max.Row = c.Row
		}
		if c.Col > max.Col {
			max.Col = c.Col
		}
	}
	return min, max, true
}

// ClipRange returns the half-open index range [lo, hi) of the 3-wide window
// centred on i, clipped to [0, n).
func ClipRange(i, n int) (lo, hi int) {
	lo, hi = i-1, i+2
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
