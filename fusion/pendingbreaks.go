package fusion

import (
	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/container"
)

// PendingBreaks is a bounded list of node indices whose matchings are
// provisional: made against a vertex that is virtual in the current
// time-layer window but will become real when the next layer fuses in.
type PendingBreaks struct {
	nodes *container.Vec[blossom.NodeIndex]
}

// NewPendingBreaks preallocates a scratchpad for up to capacity
// simultaneously pending breaks.
func NewPendingBreaks(capacity int) *PendingBreaks {
	return &PendingBreaks{nodes: container.NewVec[blossom.NodeIndex](capacity)}
}

// AppendBreak records node as provisional. Panics if the scratchpad is
// already at capacity.
func (p *PendingBreaks) AppendBreak(node blossom.NodeIndex) {
	if p.nodes.Len() >= p.nodes.Capacity() {
		panic("fusion: " + ErrCapacityExceeded.Error())
	}
	p.nodes.Push(node)
}

// Len returns the number of currently pending breaks.
func (p *PendingBreaks) Len() int { return p.nodes.Len() }

// IteratePendingBreaks walks the list in order, calling f for each node.
// Entries for which f returns true (the break was applied) are dropped;
// the rest are retained in their original relative order. Runs in
// O(n) with no allocation, compacting the backing storage in place.
func (p *PendingBreaks) IteratePendingBreaks(f func(node blossom.NodeIndex) bool) {
	newLength := 0
	n := p.nodes.Len()
	for i := 0; i < n; i++ {
		node := p.nodes.Get(i)
		if !f(node) {
			p.nodes.Set(newLength, node)
			newLength++
		}
	}
	p.nodes.Truncate(newLength)
}
