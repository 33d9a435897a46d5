package dfs

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

const (
	pcSeed = iota
	pcExplore
	pcDescend
	pcTrace
	pcExhausted
)

// frame is one level of the simulated recursion.
type frame struct {
	u     core.NodeID
	edges []*core.Edge
	next  int
}

// walker is the DFS procedure.
type walker struct {
	d     *DFS
	pc    int
	stack []*frame
	cur   *core.Edge
	was   core.State
	trace *table.Tracer
}

func (w *walker) push(t step.Target, v core.NodeID) {
	w.stack = append(w.stack, &frame{u: v, edges: w.d.g.Out(v)})
	w.d.order = append(w.d.order, v)
	step.SetNode(t, w.d.g.Node(v), core.Traversing)
}

func (w *walker) Step(t step.Target) (bool, error) {
	d, g := w.d, w.d.g
	for {
		switch w.pc {
		case pcSeed:
			d.tbl.Source(d.start)
			step.PinNode(t, g.Node(d.start), core.Src)
			if d.end != core.NoNode && d.end != d.start {
				step.PinNode(t, g.Node(d.end), core.Dest)
			}
			w.push(t, d.start)
			w.pc = pcExplore
			return false, nil

		case pcExplore:
			if len(w.stack) == 0 {
				w.pc = pcExhausted
				continue
			}
			f := w.stack[len(w.stack)-1]
			if f.u == d.end {
				w.pc = pcTrace
				continue
			}
			if f.next >= len(f.edges) {
				step.SetNode(t, g.Node(f.u), core.Visited)
				d.finish = append(d.finish, f.u)
				w.stack = w.stack[:len(w.stack)-1]
				continue
			}
			w.cur = f.edges[f.next]
			f.next++
			w.was = w.cur.State
			step.SetEdge(t, w.cur, core.Traversing)
			w.pc = pcDescend
			return false, nil

		case pcDescend:
			w.pc = pcExplore
			f := w.stack[len(w.stack)-1]
			v := w.cur.Other(f.u)
			if d.tbl.Has(v) {
				step.SetEdge(t, w.cur, w.was)
				continue
			}
			d.tbl.Set(v, d.tbl.Dist(f.u)+1, f.u, w.cur.ID)
			step.SetEdge(t, w.cur, core.Visited)
			w.push(t, v)
			return false, nil

		case pcTrace:
			if w.trace == nil {
				tr, err := table.NewTracer(g, d.tbl, d.end)
				if err != nil {
					return true, err
				}
				w.trace = tr
			}
			return w.trace.Step(t)

		default:
			if d.end != core.NoNode {
				return true, table.ErrUnreachable
			}
			return true, nil
		}
	}
}
