// Package linkedlist is a singly linked list of strings living in an
// alloc.Heap, with animated traverse and reverse procedures.
//
// Every list node is a heap record (NodeSize bytes: next address, value
// address) whose value owns an alloc.String. Removing a node frees the node
// record, which frees the string header, which frees the character buffer.
//
// Display slots are list positions: the procedures render core.SlotRef(i)
// for the node at position i when the procedure began.
package linkedlist

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/stepviz/alloc"
	"github.com/katalvlaran/stepviz/core"
)

var (
	// ErrIndexOutOfRange is returned by At, InsertAt and RemoveAt.
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
	// ErrNotNode is returned when a handle does not hold a list node.
	ErrNotNode = errors.New("linkedlist: handle is not a list node")
)

// NodeSize is the record size of a list node.
const NodeSize = 8

// Node is the heap value of one list node.
type Node struct {
	Next  alloc.Ptr
	Val   alloc.Ptr
	State core.State

	heap *alloc.Heap
}

// Bytes implements alloc.Value: next address then value address, 0 for nil.
func (n *Node) Bytes() []byte {
	b := make([]byte, NodeSize)
	binary.LittleEndian.PutUint32(b[:4], uint32(offsetOf(n.heap, n.Next)))
	binary.LittleEndian.PutUint32(b[4:], uint32(offsetOf(n.heap, n.Val)))

	return b
}

// String implements alloc.Value.
func (n *Node) String() string {
	txt, err := alloc.Text(n.heap, n.Val)
	if err != nil {
		return "node(?)"
	}

	return fmt.Sprintf("node(%q)", txt)
}

// Dealloc implements alloc.Deallocator.
func (n *Node) Dealloc(h *alloc.Heap) error { return h.Free(n.Val) }

func offsetOf(h *alloc.Heap, p alloc.Ptr) int {
	if p.IsNil() {
		return 0
	}
	r, err := h.Get(p)
	if err != nil {
		return 0
	}

	return r.Offset
}
