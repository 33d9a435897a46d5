package linkedlist

import (
	"fmt"

	"github.com/katalvlaran/stepviz/alloc"
	"github.com/katalvlaran/stepviz/step"
)

// List is an allocator-backed singly linked list.
type List struct {
	*step.Handler

	heap *alloc.Heap
	head alloc.Ptr
	n    int

	op     Op
	target string
	found  int
	rev    *reverser
}

// New returns an empty list allocating from h.
func New(h *alloc.Heap, opts ...step.Option) *List {
	l := &List{heap: h, found: -1}
	l.Handler = step.NewHandler(l, opts...)

	return l
}

// Heap returns the backing heap.
func (l *List) Heap() *alloc.Heap { return l.heap }

// Head returns the handle of the first node, or alloc.Nil.
func (l *List) Head() alloc.Ptr { return l.head }

// Len returns the number of nodes.
func (l *List) Len() int { return l.n }

// node resolves p to its Node value.
func (l *List) node(p alloc.Ptr) (*Node, error) {
	r, err := l.heap.Get(p)
	if err != nil {
		return nil, err
	}
	n, ok := r.Value.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotNode, p)
	}

	return n, nil
}

// Node returns the node value at p.
func (l *List) Node(p alloc.Ptr) (*Node, error) { return l.node(p) }

// At returns the handle of the node at position i.
func (l *List) At(i int) (alloc.Ptr, error) {
	if i < 0 || i >= l.n {
		return alloc.Nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, l.n)
	}
	p := l.head
	for ; i > 0; i-- {
		n, err := l.node(p)
		if err != nil {
			return alloc.Nil, err
		}
		p = n.Next
	}

	return p, nil
}

// newNode allocates a detached node holding s.
func (l *List) newNode(s string) (alloc.Ptr, *Node, error) {
	val, err := alloc.NewString(l.heap, s)
	if err != nil {
		return alloc.Nil, nil, err
	}
	n := &Node{Val: val, heap: l.heap}
	p, err := l.heap.Malloc(NodeSize, n)
	if err != nil {
		_ = l.heap.Free(val)
		return alloc.Nil, nil, err
	}

	return p, n, nil
}

// InsertAt links a new node holding s at position i (0..Len).
func (l *List) InsertAt(i int, s string) (alloc.Ptr, error) {
	if err := l.settle(); err != nil {
		return alloc.Nil, err
	}
	if i < 0 || i > l.n {
		return alloc.Nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, l.n)
	}
	p, n, err := l.newNode(s)
	if err != nil {
		return alloc.Nil, err
	}
	if i == 0 {
		n.Next, l.head = l.head, p
	} else {
		prevP, err := l.At(i - 1)
		if err != nil {
			return alloc.Nil, err
		}
		prev, err := l.node(prevP)
		if err != nil {
			return alloc.Nil, err
		}
		n.Next, prev.Next = prev.Next, p
	}
	l.n++

	return p, nil
}

// Push appends s at the tail.
func (l *List) Push(s string) (alloc.Ptr, error) { return l.InsertAt(l.n, s) }

// RemoveAt unlinks the node at position i and frees it together with its
// string.
func (l *List) RemoveAt(i int) error {
	if err := l.settle(); err != nil {
		return err
	}
	p, err := l.At(i)
	if err != nil {
		return err
	}
	n, err := l.node(p)
	if err != nil {
		return err
	}
	if i == 0 {
		l.head = n.Next
	} else {
		prevP, _ := l.At(i - 1)
		prev, err := l.node(prevP)
		if err != nil {
			return err
		}
		prev.Next = n.Next
	}
	l.n--

	return l.heap.Free(p)
}

// Clear frees every node.
func (l *List) Clear() error {
	for l.n > 0 {
		if err := l.RemoveAt(0); err != nil {
			return err
		}
	}

	return nil
}

// Values returns the strings in list order.
func (l *List) Values() ([]string, error) {
	out := make([]string, 0, l.n)
	for p := l.head; !p.IsNil(); {
		n, err := l.node(p)
		if err != nil {
			return nil, err
		}
		s, err := alloc.Text(l.heap, n.Val)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		p = n.Next
	}

	return out, nil
}
