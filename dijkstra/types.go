// Package dijkstra animates Dijkstra's single-source shortest-path search
// over a core.Graph with non-negative integer weights.
//
// The frontier is a pq.Queue with lazy decrease-key: an improved distance
// pushes a fresh entry and stale entries are skipped on extraction. When a
// Heuristic is installed the same procedure becomes A*: queue priority is
// dist + h(node, end). The astar package wires the grid heuristics.
//
// Yield points:
//
//   - seeding the source,
//   - every extraction of an unsettled node (painted Traversing),
//   - every edge to an unsettled neighbor (painted Traversing),
//   - every successful relaxation (neighbor AdjNode, edge Visited),
//   - every node of the highlighted path, traced end → start.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// Errors:
//
//   - ErrGraphNil        (fatal) graph pointer is nil.
//   - ErrStartNotFound   (notice) start node missing.
//   - ErrEndNotFound     (notice) end node set but missing.
//   - ErrNegativeWeight  (notice) some edge has a negative weight.
//   - table.ErrUnreachable (notice) frontier emptied before reaching end.
//   - pq.ErrEmpty        (fatal) surfaced unchanged if the queue misbehaves.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

var (
	// ErrGraphNil is returned when the search is bound to a nil graph.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound is posted when the start node does not exist.
	ErrStartNotFound = step.Notice("start node not found")

	// ErrEndNotFound is posted when the end node does not exist.
	ErrEndNotFound = step.Notice("end node not found")

	// ErrNegativeWeight is posted when any edge weight is below zero.
	ErrNegativeWeight = step.Notice("negative edge weights are not supported")

	// ErrBadMaxDistance is returned by SetMaxDistance for negative limits.
	ErrBadMaxDistance = errors.New("dijkstra: max distance must be non-negative")
)

// Heuristic estimates the remaining cost from n to goal. It must never
// overestimate for the result to be a shortest path.
type Heuristic func(n, goal *core.Node) float64

// Dijkstra is the animated shortest-path search of one graph.
type Dijkstra struct {
	*step.Handler

	g          *core.Graph
	start, end core.NodeID
	h          Heuristic
	maxDist    float64
	tbl        *table.Table
	order      []core.NodeID
}

// New binds a search to g. Call Init before Play.
func New(g *core.Graph, opts ...step.Option) *Dijkstra {
	d := &Dijkstra{
		g:       g,
		start:   core.NoNode,
		end:     core.NoNode,
		maxDist: math.Inf(1),
		tbl:     table.New(),
	}
	d.Handler = step.NewHandler(d, opts...)

	return d
}

// Init selects the start and end nodes (end may be core.NoNode), clears the
// table and every display state, and resets the handler.
func (d *Dijkstra) Init(start, end core.NodeID) {
	d.start, d.end = start, end
	d.tbl.Reset()
	d.order = d.order[:0]
	if d.g != nil {
		d.g.ResetStates()
	}
	d.Reset()
}

// SetHeuristic installs h; nil restores plain Dijkstra. Takes effect on the
// next Begin.
func (d *Dijkstra) SetHeuristic(h Heuristic) { d.h = h }

// SetMaxDistance stops relaxation past limit. Nodes farther than limit are
// never discovered. Use math.Inf(1) to remove the cap.
func (d *Dijkstra) SetMaxDistance(limit float64) error {
	if limit < 0 {
		return ErrBadMaxDistance
	}
	d.maxDist = limit

	return nil
}

// Table returns the distance / predecessor table.
func (d *Dijkstra) Table() *table.Table { return d.tbl }

// Order returns nodes in settle order.
func (d *Dijkstra) Order() []core.NodeID { return d.order }

// Graph returns the bound graph.
func (d *Dijkstra) Graph() *core.Graph { return d.g }

// Begin implements step.Algorithm.
func (d *Dijkstra) Begin() (step.Procedure, error) {
	if d.g == nil {
		return nil, ErrGraphNil
	}
	if !d.g.HasNode(d.start) {
		return nil, ErrStartNotFound
	}
	if d.end != core.NoNode && !d.g.HasNode(d.end) {
		return nil, ErrEndNotFound
	}
	for _, e := range d.g.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
	}
	d.tbl.Reset()
	d.order = d.order[:0]
	d.g.ResetStates()

	return newSearch(d), nil
}

// Cleanup implements step.Algorithm.
func (d *Dijkstra) Cleanup() {
	if d.g != nil {
		d.g.Settle(core.Src, core.Dest, core.Path)
	}
}
