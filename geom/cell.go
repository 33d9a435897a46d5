package geom

// Cell is an integer grid coordinate. Row grows downward, Col to the right.
type Cell struct {
	Row, Col int
}

// Offsets4 lists the orthogonal neighbor offsets in N, E, S, W order.
var Offsets4 = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Add returns the cell displaced by d.
func (c Cell) Add(d Cell) Cell { return Cell{c.Row + d.Row, c.Col + d.Col} }

// Delta returns the absolute column and row distances between a and b.
func Delta(a, b Cell) (dx, dy int) {
	dx, dy = b.Col-a.Col, b.Row-a.Row
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx, dy
}

// Center maps a cell to the canvas point at the middle of its square,
// given the square side length.
func (c Cell) Center(side float64) Point {
	return Point{X: (float64(c.Col) + 0.5) * side, Y: (float64(c.Row) + 0.5) * side}
}

// CellAt maps a canvas point back to the cell containing it.
func CellAt(p Point, side float64) Cell {
	return Cell{Row: floorDiv(p.Y, side), Col: floorDiv(p.X, side)}
}

func floorDiv(v, side float64) int {
	q := int(v / side)
	if v < 0 && float64(q)*side != v {
		q--
	}

	return q
}
