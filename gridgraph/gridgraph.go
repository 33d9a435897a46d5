package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
)

// New returns a rows×cols grid of open cells.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Rows: rows, Cols: cols, cells: make([]core.State, rows*cols)}, nil
}

// Parse builds a grid from text rows: WallRune marks a wall, any other rune
// an open cell.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len([]rune(lines[0]))
	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), cols)
		}
		for c, ch := range runes {
			if ch == WallRune {
				g.cells[r*cols+c] = core.Wall
			}
		}
	}

	return g, nil
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c geom.Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index maps c to its row-major index.
func (g *Grid) Index(c geom.Cell) int { return c.Row*g.Cols + c.Col }

// Coordinate converts a row-major index back to a cell.
func (g *Grid) Coordinate(i int) geom.Cell { return geom.Cell{Row: i / g.Cols, Col: i % g.Cols} }

// Len returns Rows×Cols.
func (g *Grid) Len() int { return len(g.cells) }

// State returns the display state of c.
func (g *Grid) State(c geom.Cell) core.State { return g.cells[g.Index(c)] }

// Set paints c with s.
func (g *Grid) Set(c geom.Cell, s core.State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[g.Index(c)] = s

	return nil
}

// IsWall reports whether c is a wall. Out-of-bounds cells count as walls.
func (g *Grid) IsWall(c geom.Cell) bool {
	return !g.InBounds(c) || g.cells[g.Index(c)] == core.Wall
}

// Fill paints every cell with s.
func (g *Grid) Fill(s core.State) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Settle resets every non-wall cell whose state is not listed in keep.
func (g *Grid) Settle(keep ...core.State) {
	for i, s := range g.cells {
		if s == core.Wall {
			continue
		}
		kept := false
		for _, k := range keep {
			if s == k {
				kept = true
				break
			}
		}
		if !kept {
			g.cells[i] = core.None
		}
	}
}

// Neighbors returns the in-bounds open 4-neighbors of c in N, E, S, W order.
func (g *Grid) Neighbors(c geom.Cell) []geom.Cell {
	out := make([]geom.Cell, 0, 4)
	for _, d := range geom.Offsets4 {
		n := c.Add(d)
		if !g.IsWall(n) {
			out = append(out, n)
		}
	}

	return out
}

// String renders the grid with WallRune and OpenRune, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r*g.Cols+c] == core.Wall {
				b.WriteRune(WallRune)
			} else {
				b.WriteRune(OpenRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ToGraph converts the open cells into an undirected graph. Each node carries
// its cell and the canvas position of the cell center for the given side;
// each 4-neighbor pair is joined by one edge of weight StepCost.
func (g *Grid) ToGraph(side float64) *Graphed {
	gv := &Graphed{Graph: core.NewGraph(), nodes: make([]core.NodeID, len(g.cells)), grid: g}
	for i := range g.cells {
		c := g.Coordinate(i)
		if g.cells[i] == core.Wall {
			gv.nodes[i] = core.NoNode
			continue
		}
		gv.nodes[i] = gv.Graph.AddCellNode(fmt.Sprintf("%d,%d", c.Row, c.Col), c, side)
	}
	// East and south neighbors only, so each pair is joined once.
	for i, u := range gv.nodes {
		if u == core.NoNode {
			continue
		}
		c := g.Coordinate(i)
		for _, d := range []geom.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}} {
			v := gv.Node(c.Add(d))
			if v == core.NoNode {
				continue
			}
			// Endpoints are distinct, so AddEdge cannot fail.
			_, _ = gv.Graph.AddEdge(u, v, StepCost, core.Undirected)
		}
	}

	return gv
}
