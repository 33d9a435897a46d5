package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for entity operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrIndexOutOfRange indicates an array slot index outside [0, Len).
	ErrIndexOutOfRange = errors.New("core: index out of range")
)

// State is the display tag of an entity. It says how a shell should paint
// the entity, not what the entity holds.
type State int

// Display states.
const (
	None       State = iota // default look
	Traversing              // currently being processed
	Compare                 // part of a comparison
	Swap                    // about to be swapped
	SwapDone                // just swapped or written
	Moving                  // pivot / selected element
	Done                    // final flash after sorting
	Visited                 // processed and settled
	Path                    // on the reported path
	AdjNode                 // discovered neighbor waiting in the frontier
	Wall                    // blocked grid cell
	Src                     // search source
	Dest                    // search destination
	Tree                    // spanning-tree member
	Rejected                // considered and rejected (would form a cycle)
	Cycle                   // part of a detected negative cycle
)

var stateNames = [...]string{
	None:       "None",
	Traversing: "Traversing",
	Compare:    "Compare",
	Swap:       "Swap",
	SwapDone:   "SwapDone",
	Moving:     "Moving",
	Done:       "Done",
	Visited:    "Visited",
	Path:       "Path",
	AdjNode:    "AdjNode",
	Wall:       "Wall",
	Src:        "Src",
	Dest:       "Dest",
	Tree:       "Tree",
	Rejected:   "Rejected",
	Cycle:      "Cycle",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// RefKind tells a shell which entity collection a Ref points into.
type RefKind int

const (
	// RefNode refers to a graph node by NodeID.
	RefNode RefKind = iota
	// RefEdge refers to a graph edge by EdgeID.
	RefEdge
	// RefSlot refers to an array slot by index.
	RefSlot
	// RefCell refers to a grid cell by row-major index.
	RefCell
)

// Ref identifies a single entity for a targeted repaint.
type Ref struct {
	Kind RefKind
	ID   int
}

// NodeRef returns the Ref of node id.
func NodeRef(id NodeID) Ref { return Ref{Kind: RefNode, ID: int(id)} }

// EdgeRef returns the Ref of edge id.
func EdgeRef(id EdgeID) Ref { return Ref{Kind: RefEdge, ID: int(id)} }

// SlotRef returns the Ref of array slot i.
func SlotRef(i int) Ref { return Ref{Kind: RefSlot, ID: i} }

// CellRef returns the Ref of the grid cell with row-major index i.
func CellRef(i int) Ref { return Ref{Kind: RefCell, ID: i} }

// String renders the reference as "node#3", "slot#0", ...
func (r Ref) String() string {
	switch r.Kind {
	case RefNode:
		return fmt.Sprintf("node#%d", r.ID)
	case RefEdge:
		return fmt.Sprintf("edge#%d", r.ID)
	case RefSlot:
		return fmt.Sprintf("slot#%d", r.ID)
	case RefCell:
		return fmt.Sprintf("cell#%d", r.ID)
	default:
		return fmt.Sprintf("ref(%d)#%d", int(r.Kind), r.ID)
	}
}
