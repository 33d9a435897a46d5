package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

const (
	pcSeed = iota
	pcEdge
	pcCycle
	pcTrace
	pcDone
)

// relaxer is the Bellman-Ford procedure. passes counts the V−1 relaxation
// passes plus the detection pass.
type relaxer struct {
	b      *BellmanFord
	pc     int
	edges  []*core.Edge
	passes int
	pass   int
	ei     int
	last   *core.Edge
	ci     int
	cedges []core.EdgeID
	trace  *table.Tracer
}

func (r *relaxer) detecting() bool { return r.pass == r.passes-1 }

// fade returns the previously examined edge to None unless it relaxed.
func (r *relaxer) fade(t step.Target) {
	if r.last != nil && r.last.State == core.Traversing {
		step.SetEdge(t, r.last, core.None)
	}
	r.last = nil
}

func (r *relaxer) Step(t step.Target) (bool, error) {
	b, g := r.b, r.b.g
	for {
		switch r.pc {
		case pcSeed:
			b.tbl.Source(b.start)
			step.PinNode(t, g.Node(b.start), core.Src)
			if b.end != core.NoNode && b.end != b.start {
				step.PinNode(t, g.Node(b.end), core.Dest)
			}
			r.pc = pcEdge
			return false, nil

		case pcEdge:
			r.fade(t)
			if r.ei >= len(r.edges) {
				r.ei = 0
				r.pass++
				if r.pass < r.passes {
					continue
				}
				r.pc = pcTrace
				if b.end == core.NoNode {
					r.pc = pcDone
				}
				continue
			}
			e := r.edges[r.ei]
			r.ei++
			r.last = e
			du := b.tbl.Dist(e.From)
			nd := du + float64(e.Weight)
			if !b.tbl.Has(e.From) || nd >= b.tbl.Dist(e.To) {
				step.SetEdge(t, e, core.Traversing)
				return false, nil
			}
			b.tbl.Set(e.To, nd, e.From, e.ID)
			if r.detecting() {
				if err := r.findCycle(e.To); err != nil {
					return true, err
				}
				r.pc = pcCycle
				return false, nil
			}
			step.SetEdge(t, e, core.Visited)
			step.SetNode(t, g.Node(e.To), core.AdjNode)
			return false, nil

		case pcCycle:
			if r.ci >= len(b.cycle) {
				return true, ErrNegativeCycle
			}
			step.PinNode(t, g.Node(b.cycle[r.ci]), core.Cycle)
			step.SetEdge(t, g.Edge(r.cedges[r.ci]), core.Cycle)
			r.ci++
			return false, nil

		case pcTrace:
			if r.trace == nil {
				if !b.tbl.Has(b.end) {
					return true, table.ErrUnreachable
				}
				tr, err := table.NewTracer(g, b.tbl, b.end)
				if err != nil {
					return true, err
				}
				r.trace = tr
			}
			return r.trace.Step(t)

		default:
			return true, nil
		}
	}
}

// findCycle walks V predecessors back from v, which lands on the cycle, then
// collects the cycle in edge direction. cedges[i] is the edge entering
// cycle[i].
func (r *relaxer) findCycle(v core.NodeID) error {
	b := r.b
	x := v
	for i := 0; i < r.passes; i++ {
		e, ok := b.tbl.Get(x)
		if !ok || e.Prev == core.NoNode {
			return fmt.Errorf("bellmanford: broken predecessor chain at node %d: %w", x, table.ErrNotDiscovered)
		}
		x = e.Prev
	}

	var nodes []core.NodeID
	var edges []core.EdgeID
	for at := x; ; {
		e, _ := b.tbl.Get(at)
		nodes = append(nodes, at)
		edges = append(edges, e.PrevEdge)
		at = e.Prev
		if at == x {
			break
		}
		if len(nodes) > r.passes {
			return fmt.Errorf("bellmanford: cycle walk from node %d: %w", x, table.ErrPredecessorCycle)
		}
	}
	// Collected against edge direction; reverse.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
		edges[i], edges[j] = edges[j], edges[i]
	}
	b.cycle, r.cedges = nodes, edges

	return nil
}
