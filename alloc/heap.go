package alloc

import (
	"fmt"
)

const none = -1

type slot struct {
	gen        uint32
	live       bool
	rec        Record
	prev, next int
}

// Heap is the simulated memory space.
type Heap struct {
	slots      []slot
	vacant     []int
	head, tail int
	n          int
	opts       Options
}

// New returns an empty Heap.
func New(opts ...Option) *Heap {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Heap{head: none, tail: none, opts: o}
}

// Len returns the number of live allocations.
func (h *Heap) Len() int { return h.n }

// Top returns the end offset of the last live allocation, where the next
// Malloc will be placed.
func (h *Heap) Top() int {
	if h.tail == none {
		return 0
	}

	return h.slots[h.tail].rec.End()
}

// Malloc places v in a new record of size bytes at Top and returns its
// handle.
func (h *Heap) Malloc(size int, v Value) (Ptr, error) {
	if size <= 0 {
		return Nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if v == nil {
		return Nil, ErrNilValue
	}

	var i int
	if k := len(h.vacant); k > 0 {
		i = h.vacant[k-1]
		h.vacant = h.vacant[:k-1]
	} else {
		h.slots = append(h.slots, slot{})
		i = len(h.slots) - 1
	}
	s := &h.slots[i]
	p := Ptr{slot: uint32(i + 1), gen: s.gen}
	s.rec = Record{Ptr: p, Offset: h.Top(), Size: size, Value: v}
	s.live = true
	s.prev, s.next = h.tail, none
	if h.tail != none {
		h.slots[h.tail].next = i
	} else {
		h.head = i
	}
	h.tail = i
	h.n++

	h.opts.Logger.Debug("malloc", "ptr", p, "offset", s.rec.Offset, "size", size)

	return p, nil
}

// lookup returns the live slot index of p.
func (h *Heap) lookup(p Ptr) (int, error) {
	i := p.Slot()
	if i < 0 || i >= len(h.slots) || !h.slots[i].live || h.slots[i].gen != p.gen {
		return none, fmt.Errorf("%w: %v", ErrStaleHandle, p)
	}

	return i, nil
}

// Free releases p and then runs its value's Dealloc hook, if any.
func (h *Heap) Free(p Ptr) error {
	i, err := h.lookup(p)
	if err != nil {
		return err
	}
	s := &h.slots[i]
	v := s.rec.Value
	if s.prev != none {
		h.slots[s.prev].next = s.next
	} else {
		h.head = s.next
	}
	if s.next != none {
		h.slots[s.next].prev = s.prev
	} else {
		h.tail = s.prev
	}
	s.live = false
	s.gen++
	s.rec = Record{}
	s.prev, s.next = none, none
	h.vacant = append(h.vacant, i)
	h.n--

	h.opts.Logger.Debug("free", "ptr", p, "live", h.n)

	if d, ok := v.(Deallocator); ok {
		if err := d.Dealloc(h); err != nil {
			return fmt.Errorf("alloc: dealloc %v: %w", p, err)
		}
	}

	return nil
}

// Get returns the record of p.
func (h *Heap) Get(p Ptr) (Record, error) {
	i, err := h.lookup(p)
	if err != nil {
		return Record{}, err
	}

	return h.slots[i].rec, nil
}

// Valid reports whether p names a live allocation.
func (h *Heap) Valid(p Ptr) bool {
	_, err := h.lookup(p)
	return err == nil
}

// Index returns the position of p in the live list.
func (h *Heap) Index(p Ptr) (int, error) {
	want, err := h.lookup(p)
	if err != nil {
		return none, err
	}
	idx := 0
	for i := h.head; i != want; i = h.slots[i].next {
		idx++
	}

	return idx, nil
}

// Records returns the live allocations in allocation order.
func (h *Heap) Records() []Record {
	out := make([]Record, 0, h.n)
	for i := h.head; i != none; i = h.slots[i].next {
		out = append(out, h.slots[i].rec)
	}

	return out
}
