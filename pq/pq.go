// Package pq provides a min priority queue keyed by float64 priority.
//
// Equal priorities are extracted in insertion order, so runs are
// reproducible. Decrease-key is lazy: callers push a fresh entry and skip
// stale ones on extraction, as the shortest-path procedures do.
//
// Complexity: Push and ExtractMin are O(log n).
package pq

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by ExtractMin and Peek on an empty queue. Procedures
// treat it as an internal contract violation.
var ErrEmpty = errors.New("pq: extract from empty queue")

type item[T any] struct {
	value T
	prio  float64
	seq   uint64
}

type items[T any] []item[T]

func (h items[T]) Len() int { return len(h) }

func (h items[T]) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}

func (h items[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *items[T]) Push(x any) { *h = append(*h, x.(item[T])) }

func (h *items[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-heap of values of type T.
type Queue[T any] struct {
	h   items[T]
	seq uint64
}

// New returns an empty Queue with capacity hint n.
func New[T any](n int) *Queue[T] {
	return &Queue[T]{h: make(items[T], 0, n)}
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Push inserts v with priority prio.
func (q *Queue[T]) Push(prio float64, v T) {
	heap.Push(&q.h, item[T]{value: v, prio: prio, seq: q.seq})
	q.seq++
}

// ExtractMin removes and returns the entry with the lowest priority.
func (q *Queue[T]) ExtractMin() (T, float64, error) {
	if q.h.Len() == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}
	it := heap.Pop(&q.h).(item[T])

	return it.value, it.prio, nil
}

// Peek returns the lowest-priority entry without removing it.
func (q *Queue[T]) Peek() (T, float64, error) {
	if q.h.Len() == 0 {
		var zero T
		return zero, 0, ErrEmpty
	}

	return q.h[0].value, q.h[0].prio, nil
}

// Clear drops every entry.
func (q *Queue[T]) Clear() { q.h = q.h[:0] }
