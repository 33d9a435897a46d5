// Package core defines the domain entities every animated algorithm mutates:
// graph nodes and edges, array slots, their display states, and the render
// references a shell uses to repaint a single entity.
//
// The entity model G = (V,E) supports:
//
//   - Mixed orientation: every Edge carries an explicit EdgeKind
//     (Directed or Undirected); algorithms check the tag instead of
//     inspecting runtime types.
//   - Integer weights (int64), zero for unweighted scenes.
//   - Stable identities: NodeID and EdgeID are never reused within a Graph.
//   - Deterministic iteration: Nodes(), Edges() and Out() return results
//     ordered by ID.
//   - Display state: a State tag per entity, independent of its payload.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, pos geom.Point) NodeID   // O(1)
//	RemoveNode(id NodeID) error                     // O(deg(v))
//	Node(id NodeID) *Node                           // O(1), nil if absent
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, weight int64, kind EdgeKind) (EdgeID, error) // O(1)
//	RemoveEdge(id EdgeID) error                                            // O(deg)
//
//	// Query
//	Out(id NodeID) []*Edge      // traversable edges leaving id
//	Nodes() []*Node             // sorted by ID
//	Edges() []*Edge             // sorted by ID
//	HasKind(k EdgeKind) bool    // any edge of kind k
//
//	// Display
//	ResetStates()               // every node and edge back to None
//
// A Graph is not safe for concurrent mutation. The step handler serializes
// algorithm steps; shells must not edit a graph while an algorithm runs.
package core
