package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microblossom/container"
)

func intLess(a, b int) bool { return a < b }

func TestMinHeap_PopsInSortedOrder(t *testing.T) {
	h := container.NewMinHeap[int](intLess)
	for _, x := range []int{5, 1, 4, 2, 3} {
		h.Push(x)
	}
	var out []int
	for !h.IsEmpty() {
		out = append(out, h.Pop())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, out)
}

func TestMinHeap_PeekDoesNotRemove(t *testing.T) {
	h := container.NewMinHeap[int](intLess)
	h.Push(3)
	h.Push(1)
	require.Equal(t, 1, h.Peek())
	require.Equal(t, 2, h.Len())
}

func TestMinHeap_PeekOnEmptyPanics(t *testing.T) {
	h := container.NewMinHeap[int](intLess)
	require.Panics(t, func() { h.Peek() })
}

func TestMinHeap_ClearEmptiesWithoutRealloc(t *testing.T) {
	h := container.NewMinHeap[int](intLess)
	h.Push(3)
	h.Push(1)
	h.Clear()
	require.True(t, h.IsEmpty())
	h.Push(7)
	require.Equal(t, 7, h.Peek())
}

func TestMinHeap_ToleratesStaleEntries(t *testing.T) {
	type event struct {
		id       int
		priority int
	}
	less := func(a, b event) bool { return a.priority < b.priority }
	h := container.NewMinHeap[event](less)
	h.Push(event{id: 1, priority: 10})
	// Simulate invalidation: push a fresher, lower-priority entry for the
	// same id without removing the stale one.
	h.Push(event{id: 1, priority: 5})
	require.Equal(t, 2, h.Len())
	first := h.Pop()
	require.Equal(t, 5, first.priority)
	second := h.Pop()
	require.Equal(t, 10, second.priority)
}
