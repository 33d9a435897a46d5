package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/step"
)

const (
	kConsider = iota
	kDecide
)

type kruskal struct {
	t        *MST
	pc       int
	edges    []*core.Edge
	ei       int
	sets     *dsu.Set[core.NodeID]
	rejected *core.Edge
}

func newKruskal(t *MST) *kruskal {
	edges := t.g.Edges()
	// Edges() is ID-ordered, so a stable sort breaks weight ties by ID.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })
	sets := dsu.New[core.NodeID](t.g.NodeCount())
	for _, n := range t.g.Nodes() {
		sets.Add(n.ID)
	}

	return &kruskal{t: t, edges: edges, sets: sets}
}

func (k *kruskal) Step(tg step.Target) (bool, error) {
	t := k.t
	switch k.pc {
	case kConsider:
		// A final Rejected edge is left for Cleanup.
		if k.ei >= len(k.edges) || k.sets.Count() <= 1 {
			if k.sets.Count() > 1 {
				return true, ErrDisconnected
			}
			return true, nil
		}
		if k.rejected != nil {
			step.SetEdge(tg, k.rejected, core.None)
			k.rejected = nil
		}
		step.SetEdge(tg, k.edges[k.ei], core.Compare)
		k.pc = kDecide
		return false, nil

	default:
		e := k.edges[k.ei]
		k.ei++
		k.pc = kConsider
		if k.sets.Union(e.From, e.To) {
			t.accept(tg, e)
			return false, nil
		}
		step.SetEdge(tg, e, core.Rejected)
		k.rejected = e
		return false, nil
	}
}
