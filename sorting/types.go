// Package sorting animates comparison sorts over a core.Array.
//
// Every algorithm is an explicit state machine: a program counter plus loop
// indices kept as struct fields, advanced one yield point per Step call.
// Yield points:
//
//   - one per comparison (the compared slots are painted Compare),
//   - one per swap decision (the slots are painted Swap),
//   - one per performed swap or write (SwapDone).
//
// The highlight of the previous step is cleared at the start of the next one,
// so every step shows exactly the slots it touched. When the array is sorted
// all slots flash Done for one step and return to None on the following one.
//
// Kinds: Bubble, Insertion, Selection, Merge (bottom-up), Quick (Lomuto with
// an explicit range stack).
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// ErrUnknownKind is returned by ParseKind and New for an unsupported algorithm.
var ErrUnknownKind = errors.New("sorting: unknown algorithm")

// ErrNilArray is returned by New for a nil array.
var ErrNilArray = errors.New("sorting: array is nil")

// Kind selects a sorting algorithm.
type Kind int

const (
	Bubble Kind = iota
	Insertion
	Selection
	Merge
	Quick
)

var kindNames = map[Kind]string{
	Bubble:    "bubble",
	Insertion: "insertion",
	Selection: "selection",
	Merge:     "merge",
	Quick:     "quick",
}

// String returns the lower-case algorithm name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every supported algorithm.
func Kinds() []Kind { return []Kind{Bubble, Insertion, Selection, Merge, Quick} }

// ParseKind maps a name ("bubble", "Quick", ...) to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Sorter is the animated sort of one array. It embeds the step.Handler that
// drives it, so Play, Pause, Next and ForceStop are available directly.
type Sorter struct {
	*step.Handler

	arr  *core.Array
	kind Kind
}

// New binds a sorter of the given kind to arr.
func New(arr *core.Array, kind Kind, opts ...step.Option) (*Sorter, error) {
	if arr == nil {
		return nil, ErrNilArray
	}
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	s := &Sorter{arr: arr, kind: kind}
	s.Handler = step.NewHandler(s, opts...)

	return s, nil
}

// Kind returns the selected algorithm.
func (s *Sorter) Kind() Kind { return s.kind }

// Init loads values into the array (nil keeps the current contents) and
// resets the handler.
func (s *Sorter) Init(values []int) {
	if values != nil {
		s.arr.Load(values)
	}
	s.Reset()
}

// Begin implements step.Algorithm.
func (s *Sorter) Begin() (step.Procedure, error) {
	s.arr.ResetStates()
	b := base{arr: s.arr}
	switch s.kind {
	case Bubble:
		return &bubble{base: b}, nil
	case Insertion:
		return &insertion{base: b, i: 1}, nil
	case Selection:
		return &selection{base: b}, nil
	case Merge:
		return newMerge(b), nil
	case Quick:
		return newQuick(b), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(s.kind))
}

// Cleanup implements step.Algorithm.
func (s *Sorter) Cleanup() { s.arr.ResetStates() }

// base carries the highlight bookkeeping and the final flash shared by all kinds.
type base struct {
	arr   *core.Array
	hot   []int
	flash int // 0: not started, 1: Done shown, 2: cleared
}

// cool clears the slots highlighted by the previous step.
func (b *base) cool(t step.Target) {
	step.SetSlots(t, b.arr, core.None, b.hot...)
	b.hot = b.hot[:0]
}

// mark paints idx with s and remembers them for the next cool.
func (b *base) mark(t step.Target, s core.State, idx ...int) {
	step.SetSlots(t, b.arr, s, idx...)
	b.hot = append(b.hot, idx...)
}

// finish runs the Done flash. It reports done=true once the flash is over.
func (b *base) finish(t step.Target) bool {
	all := make([]int, b.arr.Len())
	for i := range all {
		all[i] = i
	}
	switch b.flash {
	case 0:
		b.flash = 1
		step.SetSlots(t, b.arr, core.Done, all...)
		return false
	case 1:
		b.flash = 2
		step.SetSlots(t, b.arr, core.None, all...)
		return false
	default:
		return true
	}
}

// less compares the values at i and j.
func (b *base) less(i, j int) bool { return b.arr.At(i) < b.arr.At(j) }
