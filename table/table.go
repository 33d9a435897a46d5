// Package table holds the distance / predecessor table shared by every
// shortest-path and spanning-tree procedure, and the path tracer that
// highlights a result by walking predecessors from the end back to the start.
//
// Entries are created lazily on first discovery; an entry whose Prev is
// core.NoNode is a source. Path walks are bounded by the number of entries:
// a longer chain means the predecessor links form a cycle, which is reported
// as ErrPredecessorCycle instead of looping forever.
package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

var (
	// ErrNotDiscovered is returned when a path is requested to a node that has no entry.
	ErrNotDiscovered = errors.New("table: node not discovered")

	// ErrPredecessorCycle is returned when predecessor links do not reach a source.
	ErrPredecessorCycle = errors.New("table: predecessor chain does not terminate")

	// ErrUnreachable is the user-facing outcome when a search frontier empties
	// before reaching its target.
	ErrUnreachable = step.Notice("node not reachable")
)

// Entry is one row of the table.
type Entry struct {
	Dist     float64
	Prev     core.NodeID
	PrevEdge core.EdgeID
}

// Table maps node → Entry.
type Table struct {
	rows map[core.NodeID]Entry
}

// New returns an empty Table.
func New() *Table { return &Table{rows: make(map[core.NodeID]Entry)} }

// Reset drops every entry.
func (t *Table) Reset() { clear(t.rows) }

// Source records v as a source at distance 0.
func (t *Table) Source(v core.NodeID) {
	t.rows[v] = Entry{Dist: 0, Prev: core.NoNode, PrevEdge: core.NoEdge}
}

// Set records (or overwrites) the entry for v.
func (t *Table) Set(v core.NodeID, dist float64, prev core.NodeID, via core.EdgeID) {
	t.rows[v] = Entry{Dist: dist, Prev: prev, PrevEdge: via}
}

// Get returns the entry for v.
func (t *Table) Get(v core.NodeID) (Entry, bool) {
	e, ok := t.rows[v]
	return e, ok
}

// Has reports whether v was discovered.
func (t *Table) Has(v core.NodeID) bool {
	_, ok := t.rows[v]
	return ok
}

// Dist returns the recorded distance of v, or +Inf when v is undiscovered.
func (t *Table) Dist(v core.NodeID) float64 {
	if e, ok := t.rows[v]; ok {
		return e.Dist
	}

	return math.Inf(1)
}

// Len returns the number of discovered nodes.
func (t *Table) Len() int { return len(t.rows) }

// Path returns the nodes from the source to end and the edges between them
// (len(edges) == len(nodes)-1).
func (t *Table) Path(end core.NodeID) ([]core.NodeID, []core.EdgeID, error) {
	if !t.Has(end) {
		return nil, nil, fmt.Errorf("%w: %d", ErrNotDiscovered, end)
	}

	var nodes []core.NodeID
	var edges []core.EdgeID
	cur := end
	for steps := 0; ; steps++ {
		if steps > len(t.rows) {
			return nil, nil, fmt.Errorf("%w: from %d", ErrPredecessorCycle, end)
		}
		nodes = append(nodes, cur)
		e, ok := t.rows[cur]
		if !ok {
			return nil, nil, fmt.Errorf("%w: predecessor %d", ErrNotDiscovered, cur)
		}
		if e.Prev == core.NoNode {
			break
		}
		edges = append(edges, e.PrevEdge)
		cur = e.Prev
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges, nil
}

// Hops returns the number of predecessor links between v and its source.
func (t *Table) Hops(v core.NodeID) (int, error) {
	nodes, _, err := t.Path(v)
	if err != nil {
		return 0, err
	}

	return len(nodes) - 1, nil
}
