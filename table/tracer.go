package table

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Tracer highlights the path to end, one node (and the edge that reached
// it) per step, starting at end and finishing at the source.
type Tracer struct {
	g     *core.Graph
	nodes []core.NodeID
	edges []core.EdgeID
	i     int
}

// NewTracer prepares a Tracer for the path to end.
func NewTracer(g *core.Graph, t *Table, end core.NodeID) (*Tracer, error) {
	nodes, edges, err := t.Path(end)
	if err != nil {
		return nil, err
	}

	return &Tracer{g: g, nodes: nodes, edges: edges, i: len(nodes) - 1}, nil
}

// Len returns the number of yield points the tracer emits.
func (tr *Tracer) Len() int { return len(tr.nodes) }

// Nodes returns the path from source to end.
func (tr *Tracer) Nodes() []core.NodeID { return tr.nodes }

// Edges returns the path edges from source to end.
func (tr *Tracer) Edges() []core.EdgeID { return tr.edges }

// Step implements step.Procedure.
func (tr *Tracer) Step(t step.Target) (bool, error) {
	if tr.i < 0 {
		return true, nil
	}
	step.SetNode(t, tr.g.Node(tr.nodes[tr.i]), core.Path)
	if tr.i > 0 {
		step.SetEdge(t, tr.g.Edge(tr.edges[tr.i-1]), core.Path)
	}
	tr.i--

	return false, nil
}
