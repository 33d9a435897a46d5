package linkedlist

import (
	"fmt"

	"github.com/katalvlaran/stepviz/alloc"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Op selects the animated list operation.
type Op int

const (
	// Traverse walks from the head looking for a value.
	Traverse Op = iota
	// Reverse flips every next pointer in place.
	Reverse
)

// String returns "traverse" or "reverse".
func (o Op) String() string {
	if o == Reverse {
		return "reverse"
	}

	return "traverse"
}

// ErrValueNotFound is posted when Traverse reaches the end without a match.
var ErrValueNotFound = step.Notice("value not found")

// ErrEmptyList is posted when an operation starts on an empty list.
var ErrEmptyList = step.Notice("list is empty")

// Init selects the operation (and the value Traverse looks for) and resets
// the handler.
func (l *List) Init(op Op, target string) {
	l.op, l.target = op, target
	l.found = -1
	l.Reset()
}

// Found returns the position Traverse matched, or -1.
func (l *List) Found() int { return l.found }

// Begin implements step.Algorithm.
func (l *List) Begin() (step.Procedure, error) {
	if l.n == 0 {
		return nil, ErrEmptyList
	}
	l.found = -1
	if err := l.paint(nil, core.None); err != nil {
		return nil, err
	}
	l.rev = nil
	if l.op == Reverse {
		l.rev = &reverser{l: l, cur: l.head}
		return l.rev, nil
	}

	return &walker{l: l, cur: l.head}, nil
}

// Cleanup implements step.Algorithm: an interrupted reversal is completed,
// and the matched node keeps Done.
func (l *List) Cleanup() {
	_ = l.settle()
	_ = l.paint(nil, core.None, core.Done)
}

// settle completes a reversal left in flight so head and every next pointer
// agree again.
func (l *List) settle() error {
	r := l.rev
	if r == nil {
		return nil
	}
	l.rev = nil

	return r.finish()
}

// paint sets every node not in keep to s, rendering if t is non-nil.
func (l *List) paint(t step.Target, s core.State, keep ...core.State) error {
	i := 0
	for p := l.head; !p.IsNil(); i++ {
		n, err := l.node(p)
		if err != nil {
			return err
		}
		if !contains(keep, n.State) {
			n.State = s
			if t != nil {
				t.Render(core.SlotRef(i))
			}
		}
		p = n.Next
	}

	return nil
}

func contains(set []core.State, s core.State) bool {
	for _, k := range set {
		if k == s {
			return true
		}
	}

	return false
}

// walker is the Traverse procedure: one yield per node visited.
type walker struct {
	l    *List
	cur  alloc.Ptr
	i    int
	prev *Node
}

func (w *walker) Step(t step.Target) (bool, error) {
	l := w.l
	if l.found >= 0 {
		return true, nil
	}
	if w.prev != nil {
		w.prev.State = core.Visited
		t.Render(core.SlotRef(w.i - 1))
		w.prev = nil
	}
	if w.cur.IsNil() {
		return true, ErrValueNotFound
	}
	n, err := l.node(w.cur)
	if err != nil {
		return true, err
	}
	s, err := alloc.Text(l.heap, n.Val)
	if err != nil {
		return true, err
	}
	if s == l.target {
		n.State = core.Done
		t.Render(core.SlotRef(w.i))
		l.found = w.i
		return false, nil
	}
	n.State = core.Traversing
	t.Render(core.SlotRef(w.i))
	w.prev = n
	w.cur = n.Next
	w.i++

	return false, nil
}

// reverser is the Reverse procedure: one yield per pointer flipped. Slot
// indices refer to positions before the reversal.
type reverser struct {
	l    *List
	prev alloc.Ptr
	cur  alloc.Ptr
	i    int
	done bool
}

func (r *reverser) Step(t step.Target) (bool, error) {
	l := r.l
	if r.done {
		return true, nil
	}
	if r.cur.IsNil() {
		l.head = r.prev
		r.done = true
		t.Repaint()
		return false, nil
	}
	n, err := l.node(r.cur)
	if err != nil {
		return true, fmt.Errorf("linkedlist: reverse at %d: %w", r.i, err)
	}
	next := n.Next
	n.Next = r.prev
	n.State = core.Moving
	t.Render(core.SlotRef(r.i))
	if r.i > 0 {
		if pn, err := l.node(r.prev); err == nil {
			pn.State = core.Visited
			t.Render(core.SlotRef(r.i - 1))
		}
	}
	r.prev, r.cur = r.cur, next
	r.i++

	return false, nil
}

// finish flips the remaining pointers without yielding and installs the
// new head.
func (r *reverser) finish() error {
	if r.done {
		return nil
	}
	for !r.cur.IsNil() {
		n, err := r.l.node(r.cur)
		if err != nil {
			return fmt.Errorf("linkedlist: reverse at %d: %w", r.i, err)
		}
		next := n.Next
		n.Next = r.prev
		r.prev, r.cur = r.cur, next
		r.i++
	}
	r.l.head = r.prev
	r.done = true

	return nil
}
