package blossom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microblossom/blossom"
)

func TestPrimalNodes_CheckDefectLazyInit(t *testing.T) {
	nodes := blossom.NewPrimalNodes(10)
	nodes.CheckDefect(3)
	require.Equal(t, blossom.NodeIndex(4), nodes.CountDefects())
	n := nodes.Get(3)
	require.Equal(t, blossom.NodeIndex(3), n.Root)
	require.True(t, n.Parent.IsNone())
}

func TestPrimalNodes_AllocateBlossomMonotonic(t *testing.T) {
	nodes := blossom.NewPrimalNodes(5)
	b1 := nodes.AllocateBlossom()
	b2 := nodes.AllocateBlossom()
	require.Equal(t, blossom.NodeIndex(5), b1)
	require.Equal(t, blossom.NodeIndex(6), b2)
	require.Greater(t, b2, b1, "allocate_blossom must return strictly increasing indices")
}

func TestPrimalNodes_IsBlossomPartition(t *testing.T) {
	nodes := blossom.NewPrimalNodes(4)
	require.False(t, nodes.IsBlossom(0))
	require.False(t, nodes.IsBlossom(3))
	require.True(t, nodes.IsBlossom(4))
}

func TestPrimalNodes_CheckBlossomRejectsUnallocated(t *testing.T) {
	nodes := blossom.NewPrimalNodes(4)
	require.Panics(t, func() { nodes.CheckBlossom(4) })
	nodes.AllocateBlossom()
	require.NotPanics(t, func() { nodes.CheckBlossom(4) })
}

func TestPrimalNodes_IterateChildrenRingOrder(t *testing.T) {
	nodes := blossom.NewPrimalNodes(5)
	for i := blossom.NodeIndex(0); i < 3; i++ {
		nodes.CheckDefect(i)
	}
	b := nodes.AllocateBlossom()
	blossomNode := nodes.Get(b)
	blossomNode.FirstChild = 0
	nodes.Get(0).Sibling = 1
	nodes.Get(1).Sibling = 2
	nodes.Get(2).Sibling = blossom.NodeNone

	var order []blossom.NodeIndex
	nodes.IterateChildren(b, func(child blossom.NodeIndex) {
		order = append(order, child)
	})
	require.Equal(t, []blossom.NodeIndex{0, 1, 2}, order)
}

func TestPrimalNodes_TreeRootWalksToTop(t *testing.T) {
	nodes := blossom.NewPrimalNodes(5)
	nodes.CheckDefect(0)
	nodes.CheckDefect(1)
	nodes.CheckDefect(2)
	nodes.Get(1).Parent = blossom.Link{Peer: 0, Touching: 1}
	nodes.Get(2).Parent = blossom.Link{Peer: 1, Touching: 2}
	require.Equal(t, blossom.NodeIndex(0), nodes.TreeRoot(2))
	require.Equal(t, blossom.NodeIndex(0), nodes.TreeRoot(0))
}

func TestPrimalNodes_ClearResetsCountersOnly(t *testing.T) {
	nodes := blossom.NewPrimalNodes(5)
	nodes.CheckDefect(2)
	nodes.AllocateBlossom()
	nodes.Clear()
	require.Equal(t, blossom.NodeIndex(0), nodes.CountDefects())
	require.Equal(t, blossom.NodeIndex(0), nodes.CountBlossoms())
	// Re-initializing after clear must not panic and must reset state.
	nodes.CheckDefect(2)
	require.True(t, nodes.Get(2).Matching.IsNone())
}
