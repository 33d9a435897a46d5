package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stepviz/geom"
)

// NodeID identifies a node within its Graph.
type NodeID int

// NoNode marks "no node": the predecessor of a source, or an unset target.
const NoNode NodeID = -1

// EdgeID identifies an edge within its Graph.
type EdgeID int

// NoEdge marks "no edge".
const NoEdge EdgeID = -1

// EdgeKind is the orientation tag carried by every edge.
type EdgeKind int

const (
	// Undirected edges are traversable from either endpoint.
	Undirected EdgeKind = iota
	// Directed edges are traversable only From→To.
	Directed
)

// String returns "undirected" or "directed".
func (k EdgeKind) String() string {
	if k == Directed {
		return "directed"
	}

	return "undirected"
}

// Node is a graph vertex as the shell draws it.
//
// Pos is the canvas position; Cell is the integer grid coordinate used by
// grid heuristics (zero for free-form scenes).
type Node struct {
	ID    NodeID
	Label string
	Pos   geom.Point
	Cell  geom.Cell
	State State
}

// Edge connects two nodes.
type Edge struct {
	ID     EdgeID
	From   NodeID
	To     NodeID
	Weight int64
	Kind   EdgeKind
	State  State
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Leaves reports whether e can be traversed starting at id.
func (e *Edge) Leaves(id NodeID) bool {
	if e.Kind == Directed {
		return e.From == id
	}

	return e.From == id || e.To == id
}

// Graph is the node/edge collection a scene owns.
type Graph struct {
	nextNode NodeID
	nextEdge EdgeID
	nodes    map[NodeID]*Node
	edges    map[EdgeID]*Edge

	// incident[v] lists every edge touching v, in insertion order.
	incident map[NodeID][]EdgeID
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[NodeID]*Node),
		edges:    make(map[EdgeID]*Edge),
		incident: make(map[NodeID][]EdgeID),
	}
}

// AddNode inserts a node and returns its ID.
func (g *Graph) AddNode(label string, pos geom.Point) NodeID {
	id := g.nextNode
	g.nextNode++
	g.nodes[id] = &Node{ID: id, Label: label, Pos: pos}
	g.incident[id] = nil

	return id
}

// AddCellNode inserts a node bound to a grid cell. Its canvas position is the
// cell center for the given square side.
func (g *Graph) AddCellNode(label string, c geom.Cell, side float64) NodeID {
	id := g.AddNode(label, c.Center(side))
	g.nodes[id].Cell = c

	return id
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id NodeID) *Node { return g.nodes[id] }

// HasNode reports whether id exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Lookup returns the first node (lowest ID) carrying label.
func (g *Graph) Lookup(label string) (NodeID, bool) {
	for _, n := range g.Nodes() {
		if n.Label == label {
			return n.ID, true
		}
	}

	return NoNode, false
}

// RemoveNode deletes a node and every edge touching it.
func (g *Graph) RemoveNode(id NodeID) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	for _, eid := range append([]EdgeID(nil), g.incident[id]...) {
		// incident only lists live edges, so RemoveEdge cannot fail.
		_ = g.RemoveEdge(eid)
	}
	delete(g.incident, id)
	delete(g.nodes, id)

	return nil
}

// AddEdge connects from and to. Self-loops are rejected.
func (g *Graph) AddEdge(from, to NodeID, weight int64, kind EdgeKind) (EdgeID, error) {
	if !g.HasNode(from) {
		return NoEdge, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return NoEdge, fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	if from == to {
		return NoEdge, fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight, Kind: kind}
	g.incident[from] = append(g.incident[from], id)
	g.incident[to] = append(g.incident[to], id)

	return id, nil
}

// Edge returns the edge with the given ID, or nil.
func (g *Graph) Edge(id EdgeID) *Edge { return g.edges[id] }

// RemoveEdge deletes an edge.
func (g *Graph) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.incident[e.From] = dropEdge(g.incident[e.From], id)
	g.incident[e.To] = dropEdge(g.incident[e.To], id)
	delete(g.edges, id)

	return nil
}

func dropEdge(list []EdgeID, id EdgeID) []EdgeID {
	for i, x := range list {
		if x == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}

	return list
}

// Out returns the edges traversable from id, ordered by EdgeID.
// Directed edges appear only at their From endpoint.
func (g *Graph) Out(id NodeID) []*Edge {
	ids := g.incident[id]
	out := make([]*Edge, 0, len(ids))
	for _, eid := range ids {
		if e := g.edges[eid]; e.Leaves(id) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Nodes returns all nodes ordered by ID.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges ordered by ID.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasKind reports whether at least one edge has kind k.
func (g *Graph) HasKind(k EdgeKind) bool {
	for _, e := range g.edges {
		if e.Kind == k {
			return true
		}
	}

	return false
}

// ResetStates paints every node and edge back to None.
func (g *Graph) ResetStates() {
	for _, n := range g.nodes {
		n.State = None
	}
	for _, e := range g.edges {
		e.State = None
	}
}

// Settle resets every node and edge whose state is not in keep.
// Path algorithms use it on stop: the result stays visible, transient
// highlighting goes away.
func (g *Graph) Settle(keep ...State) {
	for _, n := range g.nodes {
		if !contains(keep, n.State) {
			n.State = None
		}
	}
	for _, e := range g.edges {
		if !contains(keep, e.State) {
			e.State = None
		}
	}
}

func contains(set []State, s State) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}

	return false
}
