// Package prim_kruskal animates minimum-spanning-tree construction with
// Kruskal's and Prim's algorithms over undirected core.Graph values.
//
// Kruskal considers edges in ascending weight (ties by edge ID): each
// candidate is painted Compare, then either joins the tree (Tree) or closes
// a cycle and is painted Rejected until the next step restores it. A
// dsu.Set tracks components.
//
// Prim grows a tree from a root: every edge leaving a newly added node is a
// comparison (Compare) pushed onto a pq.Queue; every extraction that reaches
// a new node adds it and its edge to the tree.
//
// On a disconnected graph both leave a spanning forest marked and post
// ErrDisconnected. Tree() and Weight() expose the result.
//
// Complexity: Kruskal O(E log E), Prim O(E log E); O(V + E) space.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

var (
	// ErrGraphNil is returned when the MST is bound to a nil graph.
	ErrGraphNil = errors.New("prim_kruskal: graph is nil")

	// ErrUnknownMethod is returned by ParseMethod and New.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

	// ErrDirectedKruskal is posted when Kruskal meets a directed edge.
	ErrDirectedKruskal = step.Notice("cannot run Kruskal on directed edges")

	// ErrDirectedPrim is posted when Prim meets a directed edge.
	ErrDirectedPrim = step.Notice("cannot run Prim on directed edges")

	// ErrRootNotFound is posted when Prim's root does not exist.
	ErrRootNotFound = step.Notice("root node not found")

	// ErrDisconnected ends a run whose graph has more than one component.
	ErrDisconnected = step.Notice("graph is disconnected: spanning forest shown")
)

// Method selects the MST algorithm.
type Method int

const (
	Kruskal Method = iota
	Prim
)

// String returns "kruskal" or "prim".
func (m Method) String() string {
	switch m {
	case Kruskal:
		return "kruskal"
	case Prim:
		return "prim"
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a name (case-insensitive) to its Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "kruskal":
		return Kruskal, nil
	case "prim":
		return Prim, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// MST is the animated spanning-tree construction of one graph.
type MST struct {
	*step.Handler

	g      *core.Graph
	method Method
	root   core.NodeID
	tree   []core.EdgeID
	weight int64
}

// New binds an MST construction with method m to g. Call Init before Play.
func New(g *core.Graph, m Method, opts ...step.Option) (*MST, error) {
	if m != Kruskal && m != Prim {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	t := &MST{g: g, method: m, root: core.NoNode}
	t.Handler = step.NewHandler(t, opts...)

	return t, nil
}

// Method returns the algorithm in use.
func (t *MST) Method() Method { return t.method }

// Init sets Prim's root (core.NoNode picks the lowest node ID; Kruskal
// ignores it), clears the result and display states, and resets the handler.
func (t *MST) Init(root core.NodeID) {
	t.root = root
	t.tree, t.weight = nil, 0
	if t.g != nil {
		t.g.ResetStates()
	}
	t.Reset()
}

// Tree returns the edges accepted so far, in acceptance order.
func (t *MST) Tree() []core.EdgeID { return t.tree }

// Weight returns the total weight of Tree.
func (t *MST) Weight() int64 { return t.weight }

// Begin implements step.Algorithm.
func (t *MST) Begin() (step.Procedure, error) {
	if t.g == nil {
		return nil, ErrGraphNil
	}
	if t.g.HasKind(core.Directed) {
		if t.method == Prim {
			return nil, ErrDirectedPrim
		}
		return nil, ErrDirectedKruskal
	}
	t.tree, t.weight = nil, 0
	t.g.ResetStates()

	if t.method == Kruskal {
		return newKruskal(t), nil
	}
	root := t.root
	if root == core.NoNode {
		if nodes := t.g.Nodes(); len(nodes) > 0 {
			root = nodes[0].ID
		}
	} else if !t.g.HasNode(root) {
		return nil, ErrRootNotFound
	}

	return newPrim(t, root), nil
}

// Cleanup implements step.Algorithm: the tree stays marked.
func (t *MST) Cleanup() {
	if t.g != nil {
		t.g.Settle(core.Tree)
	}
}

// accept records e as a tree edge and paints it and both endpoints.
func (t *MST) accept(tg step.Target, e *core.Edge) {
	t.tree = append(t.tree, e.ID)
	t.weight += e.Weight
	step.SetEdge(tg, e, core.Tree)
	step.SetNode(tg, t.g.Node(e.From), core.Tree)
	step.SetNode(tg, t.g.Node(e.To), core.Tree)
}
