package bfs

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

const (
	pcSeed = iota
	pcDequeue
	pcEdge
	pcDiscover
	pcTrace
	pcExhausted
)

// walker is the BFS procedure.
type walker struct {
	b     *BFS
	pc    int
	queue []core.NodeID
	head  int
	u     core.NodeID
	edges []*core.Edge
	ei    int
	was   core.State
	trace *table.Tracer
}

func (w *walker) Step(t step.Target) (bool, error) {
	b, g := w.b, w.b.g
	for {
		switch w.pc {
		case pcSeed:
			b.tbl.Source(b.start)
			w.queue = append(w.queue, b.start)
			step.PinNode(t, g.Node(b.start), core.Src)
			if b.end != core.NoNode && b.end != b.start {
				step.PinNode(t, g.Node(b.end), core.Dest)
			}
			w.pc = pcDequeue
			return false, nil

		case pcDequeue:
			if w.head == len(w.queue) {
				w.pc = pcExhausted
				continue
			}
			w.u = w.queue[w.head]
			w.head++
			b.order = append(b.order, w.u)
			step.SetNode(t, g.Node(w.u), core.Traversing)
			if w.u == b.end {
				w.pc = pcTrace
				return false, nil
			}
			w.edges = g.Out(w.u)
			w.ei = 0
			w.pc = pcEdge
			return false, nil

		case pcEdge:
			if w.ei >= len(w.edges) {
				step.SetNode(t, g.Node(w.u), core.Visited)
				w.pc = pcDequeue
				continue
			}
			w.was = w.edges[w.ei].State
			step.SetEdge(t, w.edges[w.ei], core.Traversing)
			w.pc = pcDiscover
			return false, nil

		case pcDiscover:
			e := w.edges[w.ei]
			w.ei++
			w.pc = pcEdge
			v := e.Other(w.u)
			depth := b.tbl.Dist(w.u) + 1
			if b.tbl.Has(v) || (b.maxDepth > 0 && depth > float64(b.maxDepth)) {
				// A tree edge seen again from its child keeps its highlight.
				step.SetEdge(t, e, w.was)
				continue
			}
			b.tbl.Set(v, depth, w.u, e.ID)
			w.queue = append(w.queue, v)
			step.SetEdge(t, e, core.Visited)
			step.SetNode(t, g.Node(v), core.AdjNode)
			return false, nil

		case pcTrace:
			if w.trace == nil {
				tr, err := table.NewTracer(g, b.tbl, b.end)
				if err != nil {
					return true, err
				}
				w.trace = tr
			}
			return w.trace.Step(t)

		default:
			if b.end != core.NoNode {
				return true, table.ErrUnreachable
			}
			return true, nil
		}
	}
}
