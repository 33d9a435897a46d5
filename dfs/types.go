// Package dfs animates depth-first search over a core.Graph.
//
// The recursion is replaced by an explicit stack of frames (node, next edge
// index), so deep graphs never grow the goroutine stack and the procedure can
// suspend between any two edges.
//
// Yield points:
//
//   - visiting a node (painted Traversing; the start is painted Src),
//   - examining an edge (painted Traversing),
//   - every node of the highlighted path when an end node was given.
//
// Finished nodes are painted Visited when their frame is popped.
//
// Errors:
//
//   - ErrGraphNil            (fatal) graph pointer is nil.
//   - ErrStartNotFound       (notice) start node missing.
//   - ErrEndNotFound         (notice) end node set but missing.
//   - table.ErrUnreachable   (notice) stack emptied before reaching end.
package dfs

import (
	"errors"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

var (
	// ErrGraphNil is returned when the search is bound to a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is posted when the start node does not exist.
	ErrStartNotFound = step.Notice("start node not found")

	// ErrEndNotFound is posted when the end node does not exist.
	ErrEndNotFound = step.Notice("end node not found")
)

// DFS is the animated depth-first search of one graph.
type DFS struct {
	*step.Handler

	g          *core.Graph
	start, end core.NodeID
	tbl        *table.Table
	order      []core.NodeID // pre-order
	finish     []core.NodeID // post-order
}

// New binds a search to g. Call Init before Play.
func New(g *core.Graph, opts ...step.Option) *DFS {
	d := &DFS{g: g, start: core.NoNode, end: core.NoNode, tbl: table.New()}
	d.Handler = step.NewHandler(d, opts...)

	return d
}

// Init selects the start and end nodes (end may be core.NoNode) and resets
// the table, the display states and the handler.
func (d *DFS) Init(start, end core.NodeID) {
	d.start, d.end = start, end
	d.tbl.Reset()
	d.order, d.finish = d.order[:0], d.finish[:0]
	if d.g != nil {
		d.g.ResetStates()
	}
	d.Reset()
}

// Table returns the depth / predecessor table.
func (d *DFS) Table() *table.Table { return d.tbl }

// Order returns nodes in discovery (pre-order) sequence.
func (d *DFS) Order() []core.NodeID { return d.order }

// Finished returns nodes in completion (post-order) sequence.
func (d *DFS) Finished() []core.NodeID { return d.finish }

// Begin implements step.Algorithm.
func (d *DFS) Begin() (step.Procedure, error) {
	if d.g == nil {
		return nil, ErrGraphNil
	}
	if !d.g.HasNode(d.start) {
		return nil, ErrStartNotFound
	}
	if d.end != core.NoNode && !d.g.HasNode(d.end) {
		return nil, ErrEndNotFound
	}
	d.tbl.Reset()
	d.order, d.finish = d.order[:0], d.finish[:0]
	d.g.ResetStates()

	return &walker{d: d}, nil
}

// Cleanup implements step.Algorithm.
func (d *DFS) Cleanup() {
	if d.g != nil {
		d.g.Settle(core.Src, core.Dest, core.Path)
	}
}
