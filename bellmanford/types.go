// Package bellmanford animates the Bellman-Ford single-source shortest-path
// algorithm on directed graphs, negative weights included.
//
// The procedure runs V−1 relaxation passes over every edge, in edge ID
// order, then one detection pass. An edge that still relaxes during the
// detection pass proves a reachable negative cycle: the cycle is traced
// through the predecessor table, painted Cycle, and the run ends with
// ErrNegativeCycle. Otherwise the path to the end node is highlighted, or
// table.ErrUnreachable is posted.
//
// Yield points: seeding the source, one per edge per pass, one per node of
// the traced cycle or path.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

var (
	// ErrGraphNil is returned when the search is bound to a nil graph.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrStartNotFound is posted when the start node does not exist.
	ErrStartNotFound = step.Notice("start node not found")

	// ErrEndNotFound is posted when the end node does not exist.
	ErrEndNotFound = step.Notice("end node not found")

	// ErrUndirected is posted when the graph has an undirected edge.
	ErrUndirected = step.Notice("cannot run Bellman-Ford on undirected edges")

	// ErrNegativeCycle ends a run that found a reachable negative cycle.
	ErrNegativeCycle = step.Notice("negative cycle detected")
)

// BellmanFord is the animated Bellman-Ford search of one graph.
type BellmanFord struct {
	*step.Handler

	g          *core.Graph
	start, end core.NodeID
	tbl        *table.Table
	cycle      []core.NodeID
}

// New binds a search to g. Call Init before Play.
func New(g *core.Graph, opts ...step.Option) *BellmanFord {
	b := &BellmanFord{g: g, start: core.NoNode, end: core.NoNode, tbl: table.New()}
	b.Handler = step.NewHandler(b, opts...)

	return b
}

// Init selects the start and end nodes (end may be core.NoNode) and resets
// the table, the display states and the handler.
func (b *BellmanFord) Init(start, end core.NodeID) {
	b.start, b.end = start, end
	b.tbl.Reset()
	b.cycle = nil
	if b.g != nil {
		b.g.ResetStates()
	}
	b.Reset()
}

// Table returns the distance / predecessor table.
func (b *BellmanFord) Table() *table.Table { return b.tbl }

// Cycle returns the negative cycle found by the last run, in edge
// direction, or nil.
func (b *BellmanFord) Cycle() []core.NodeID { return b.cycle }

// Begin implements step.Algorithm.
func (b *BellmanFord) Begin() (step.Procedure, error) {
	if b.g == nil {
		return nil, ErrGraphNil
	}
	if !b.g.HasNode(b.start) {
		return nil, ErrStartNotFound
	}
	if b.end != core.NoNode && !b.g.HasNode(b.end) {
		return nil, ErrEndNotFound
	}
	if b.g.HasKind(core.Undirected) {
		return nil, ErrUndirected
	}
	b.tbl.Reset()
	b.cycle = nil
	b.g.ResetStates()

	return &relaxer{b: b, edges: b.g.Edges(), passes: b.g.NodeCount()}, nil
}

// Cleanup implements step.Algorithm.
func (b *BellmanFord) Cleanup() {
	if b.g != nil {
		b.g.Settle(core.Src, core.Dest, core.Path, core.Cycle)
	}
}
