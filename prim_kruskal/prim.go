package prim_kruskal

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/pq"
	"github.com/katalvlaran/stepviz/step"
)

const (
	pSeed = iota
	pScan
	pExtract
)

type prim struct {
	t            *MST
	pc           int
	root         core.NodeID
	inTree       map[core.NodeID]bool
	queue        *pq.Queue[*core.Edge]
	u            core.NodeID
	scan         []*core.Edge
	si           int
	disconnected bool
}

func newPrim(t *MST, root core.NodeID) *prim {
	return &prim{
		t:      t,
		root:   root,
		inTree: make(map[core.NodeID]bool, t.g.NodeCount()),
		queue:  pq.New[*core.Edge](t.g.EdgeCount()),
	}
}

// nextRoot returns the lowest-ID node outside the tree, or NoNode.
func (p *prim) nextRoot() core.NodeID {
	for _, n := range p.t.g.Nodes() {
		if !p.inTree[n.ID] {
			return n.ID
		}
	}

	return core.NoNode
}

// enter adds u to the tree and queues its edges for scanning.
func (p *prim) enter(tg step.Target, u core.NodeID) {
	p.inTree[u] = true
	p.u = u
	p.scan, p.si = p.t.g.Out(u), 0
	step.SetNode(tg, p.t.g.Node(u), core.Tree)
}

func (p *prim) Step(tg step.Target) (bool, error) {
	for {
		switch p.pc {
		case pSeed:
			if p.root == core.NoNode {
				return true, nil
			}
			p.enter(tg, p.root)
			p.pc = pScan
			return false, nil

		case pScan:
			if p.si >= len(p.scan) {
				p.pc = pExtract
				continue
			}
			e := p.scan[p.si]
			p.si++
			if p.inTree[e.Other(p.u)] {
				continue
			}
			p.queue.Push(float64(e.Weight), e)
			step.SetEdge(tg, e, core.Compare)
			return false, nil

		default:
			if p.queue.Len() == 0 {
				next := p.nextRoot()
				if next == core.NoNode {
					if p.disconnected {
						return true, ErrDisconnected
					}
					return true, nil
				}
				p.disconnected = true
				p.enter(tg, next)
				p.pc = pScan
				return false, nil
			}
			e, _, err := p.queue.ExtractMin()
			if err != nil {
				return true, err
			}
			v := e.To
			if p.inTree[v] {
				v = e.From
			}
			if p.inTree[v] {
				step.SetEdge(tg, e, core.None)
				continue
			}
			p.t.accept(tg, e)
			p.enter(tg, v)
			p.pc = pScan
			return false, nil
		}
	}
}
