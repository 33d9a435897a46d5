package gridgraph

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/geom"
)

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// StepCost is the weight of every edge produced by ToGraph.
const StepCost = 2

// Runes used by Parse and String.
const (
	WallRune = '#'
	OpenRune = '.'
)

// Grid is a rectangular field of cells.
type Grid struct {
	Rows, Cols int
	cells      []core.State
}

// Graphed is the graph view of a Grid: g plus the cell ↔ node mapping.
type Graphed struct {
	Graph *core.Graph
	nodes []core.NodeID // by cell index, NoNode for walls
	grid  *Grid
}

// Node returns the node of cell c, or core.NoNode for walls and
// out-of-bounds cells.
func (gv *Graphed) Node(c geom.Cell) core.NodeID {
	if !gv.grid.InBounds(c) {
		return core.NoNode
	}

	return gv.nodes[gv.grid.Index(c)]
}
