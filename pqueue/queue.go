package pqueue

import "container/heap"

// entry is one item of the underlying binary heap: a priority, the sequence
// number it was pushed with (breaking ties deterministically), and the
// caller's item.
type entry[T comparable] struct {
	priority int
	sequence uint64
	item     T
}

type innerHeap[T comparable] []entry[T]

func (h innerHeap[T]) Len() int { return len(h) }

func (h innerHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].sequence < h[j].sequence
}

func (h innerHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *innerHeap[T]) Push(x any) {
	*h = append(*h, x.(entry[T]))
}

func (h *innerHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Queue is a min-heap of items of type T, ordered by (priority, sequence).
// Sequence is assigned in push order, making ordering among equal
// priorities deterministic. Contains is O(1) via an auxiliary presence set.
type Queue[T comparable] struct {
	heap     innerHeap[T]
	sequence uint64
	present  map[T]struct{}
}

// New returns an empty Queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{present: make(map[T]struct{})}
}

// Push inserts item with the given priority.
func (q *Queue[T]) Push(item T, priority int) {
	heap.Push(&q.heap, entry[T]{priority: priority, sequence: q.sequence, item: item})
	q.sequence++
	q.present[item] = struct{}{}
}

// Pop removes and returns the lowest-priority item. ok is false if the
// queue was empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.heap.Len() == 0 {
		return item, false
	}
	e := heap.Pop(&q.heap).(entry[T])
	delete(q.present, e.item)
	return e.item, true
}

// Contains reports whether item is currently queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.present[item]
	return ok
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.heap.Len()
}
