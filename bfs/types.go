// Package bfs animates breadth-first search over a core.Graph.
//
// BFS explores nodes in increasing hop distance from a start node. With an
// end node it stops when the end is dequeued and highlights the fewest-hop
// path; without one (core.NoNode) it traverses the whole component.
//
// Yield points:
//
//   - seeding the source,
//   - every dequeue (node painted Traversing),
//   - every edge examined (edge painted Traversing),
//   - every newly discovered node (painted AdjNode, tree edge Visited),
//   - every node of the highlighted path.
//
// Weights are ignored; directed edges are followed From→To only.
//
// Errors:
//
//   - ErrGraphNil            (fatal) graph pointer is nil.
//   - ErrStartNotFound       (notice) start node missing.
//   - ErrEndNotFound         (notice) end node set but missing.
//   - table.ErrUnreachable   (notice) frontier emptied before reaching end.
package bfs

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

var (
	// ErrGraphNil is returned when the search is bound to a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is posted when the start node does not exist.
	ErrStartNotFound = step.Notice("start node not found")

	// ErrEndNotFound is posted when the end node does not exist.
	ErrEndNotFound = step.Notice("end node not found")
)

// BFS is the animated breadth-first search of one graph.
type BFS struct {
	*step.Handler

	g          *core.Graph
	start, end core.NodeID
	maxDepth   int
	tbl        *table.Table
	order      []core.NodeID
}

// New binds a search to g. Call Init before Play.
func New(g *core.Graph, opts ...step.Option) *BFS {
	b := &BFS{g: g, start: core.NoNode, end: core.NoNode, tbl: table.New()}
	b.Handler = step.NewHandler(b, opts...)

	return b
}

// Init selects the start and end nodes (end may be core.NoNode), clears the
// table and every display state, and resets the handler.
func (b *BFS) Init(start, end core.NodeID) {
	b.start, b.end = start, end
	b.tbl.Reset()
	b.order = b.order[:0]
	if b.g != nil {
		b.g.ResetStates()
	}
	b.Reset()
}

// SetMaxDepth limits discovery to d hops from the start; 0 means no limit.
// Negative values are treated as 0. Takes effect on the next Begin.
func (b *BFS) SetMaxDepth(d int) {
	if d < 0 {
		d = 0
	}
	b.maxDepth = d
}

// Table returns the distance (hop count) / predecessor table.
func (b *BFS) Table() *table.Table { return b.tbl }

// Order returns nodes in dequeue order.
func (b *BFS) Order() []core.NodeID { return b.order }

// Begin implements step.Algorithm.
func (b *BFS) Begin() (step.Procedure, error) {
	if b.g == nil {
		return nil, ErrGraphNil
	}
	if !b.g.HasNode(b.start) {
		return nil, ErrStartNotFound
	}
	if b.end != core.NoNode && !b.g.HasNode(b.end) {
		return nil, ErrEndNotFound
	}
	b.tbl.Reset()
	b.order = b.order[:0]
	b.g.ResetStates()

	return &walker{b: b}, nil
}

// Cleanup implements step.Algorithm: traversal highlighting is cleared, the
// endpoints and any highlighted path stay.
func (b *BFS) Cleanup() {
	if b.g != nil {
		b.g.Settle(core.Src, core.Dest, core.Path)
	}
}
