package dijkstra

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/pq"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/table"
)

const (
	pcSeed = iota
	pcExtract
	pcEdge
	pcRelax
	pcTrace
	pcExhausted
)

// search is the Dijkstra / A* procedure.
type search struct {
	d       *Dijkstra
	pc      int
	queue   *pq.Queue[core.NodeID]
	settled map[core.NodeID]bool
	u       core.NodeID
	edges   []*core.Edge
	ei      int
	trace   *table.Tracer
}

func newSearch(d *Dijkstra) *search {
	return &search{
		d:       d,
		queue:   pq.New[core.NodeID](d.g.NodeCount()),
		settled: make(map[core.NodeID]bool, d.g.NodeCount()),
	}
}

// estimate returns the heuristic from v to the end, or 0.
func (s *search) estimate(v core.NodeID) float64 {
	d := s.d
	if d.h == nil || d.end == core.NoNode {
		return 0
	}

	return d.h(d.g.Node(v), d.g.Node(d.end))
}

func (s *search) Step(t step.Target) (bool, error) {
	d, g := s.d, s.d.g
	for {
		switch s.pc {
		case pcSeed:
			d.tbl.Source(d.start)
			s.queue.Push(s.estimate(d.start), d.start)
			step.PinNode(t, g.Node(d.start), core.Src)
			if d.end != core.NoNode && d.end != d.start {
				step.PinNode(t, g.Node(d.end), core.Dest)
			}
			s.pc = pcExtract
			return false, nil

		case pcExtract:
			if s.queue.Len() == 0 {
				s.pc = pcExhausted
				continue
			}
			u, _, err := s.queue.ExtractMin()
			if err != nil {
				return true, err
			}
			if s.settled[u] {
				continue
			}
			s.settled[u] = true
			s.u = u
			d.order = append(d.order, u)
			step.SetNode(t, g.Node(u), core.Traversing)
			if u == d.end {
				s.pc = pcTrace
				return false, nil
			}
			s.edges, s.ei = g.Out(u), 0
			s.pc = pcEdge
			return false, nil

		case pcEdge:
			if s.ei >= len(s.edges) {
				step.SetNode(t, g.Node(s.u), core.Visited)
				s.pc = pcExtract
				continue
			}
			e := s.edges[s.ei]
			if s.settled[e.Other(s.u)] {
				s.ei++
				continue
			}
			step.SetEdge(t, e, core.Traversing)
			s.pc = pcRelax
			return false, nil

		case pcRelax:
			e := s.edges[s.ei]
			s.ei++
			s.pc = pcEdge
			v := e.Other(s.u)
			nd := d.tbl.Dist(s.u) + float64(e.Weight)
			if nd >= d.tbl.Dist(v) || nd > d.maxDist {
				step.SetEdge(t, e, core.None)
				continue
			}
			d.tbl.Set(v, nd, s.u, e.ID)
			s.queue.Push(nd+s.estimate(v), v)
			step.SetEdge(t, e, core.Visited)
			step.SetNode(t, g.Node(v), core.AdjNode)
			return false, nil

		case pcTrace:
			if s.trace == nil {
				tr, err := table.NewTracer(g, d.tbl, d.end)
				if err != nil {
					return true, err
				}
				s.trace = tr
			}
			return s.trace.Step(t)

		default:
			if d.end != core.NoNode {
				return true, table.ErrUnreachable
			}
			return true, nil
		}
	}
}
