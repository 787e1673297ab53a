package container

import "container/heap"

// MinHeap is a generic binary min-heap over container/heap, generalizing
// the graph package's nodePQ pattern (a slice-backed heap.Interface with
// a dedicated less-than) to an arbitrary element type and comparator.
//
// MinHeap never supports decrease-key: callers that need to invalidate a
// previously-pushed entry (e.g. blossomtracker's hit-zero events) push a
// fresh entry and leave the stale one in place, revalidating whatever
// Peek returns before trusting it.
type MinHeap[T any] struct {
	h *innerHeap[T]
}

// NewMinHeap constructs an empty MinHeap ordered by less(a, b), which
// must report whether a sorts before b.
func NewMinHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	ih := &innerHeap[T]{less: less}
	heap.Init(ih)
	return &MinHeap[T]{h: ih}
}

// Len returns the number of elements in the heap, including any stale
// entries not yet popped.
func (m *MinHeap[T]) Len() int { return m.h.Len() }

// Push inserts x.
func (m *MinHeap[T]) Push(x T) { heap.Push(m.h, x) }

// Peek returns the minimum element without removing it. Panics if empty.
func (m *MinHeap[T]) Peek() T {
	if len(m.h.items) == 0 {
		panic("container: Peek on empty MinHeap")
	}
	return m.h.items[0]
}

// Pop removes and returns the minimum element. Panics if empty.
func (m *MinHeap[T]) Pop() T {
	return heap.Pop(m.h).(T)
}

// IsEmpty reports whether the heap has no elements.
func (m *MinHeap[T]) IsEmpty() bool { return m.h.Len() == 0 }

// Clear empties the heap without releasing its backing array.
func (m *MinHeap[T]) Clear() { m.h.items = m.h.items[:0] }

type innerHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *innerHeap[T]) Len() int            { return len(h.items) }
func (h *innerHeap[T]) Less(i, j int) bool  { return h.less(h.items[i], h.items[j]) }
func (h *innerHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *innerHeap[T]) Push(x interface{})  { h.items = append(h.items, x.(T)) }
func (h *innerHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}
