package blossom

// PrimalNode is one slot of the PrimalNodes arena: either a defect vertex
// (index in [0, N)) or a blossom (index in [N, 2N)).
//
// A slot is live iff Root != NodeNone. Exactly one of three states holds
// per live node: free (Matching present, not in any tree), tree vertex
// (has Parent, or is a root with at least one child), or blossom child
// (Parent points at a blossom; cycle position given by the Sibling ring).
type PrimalNode struct {
	// Root is the root of this node's current alternating tree, or
	// NodeNone if the slot is uninitialized.
	Root NodeIndex
	// Parent is the tree-parent link, or the none Link if this node is a
	// tree root.
	Parent Link
	// FirstChild heads this node's intrusive children list (threaded
	// through Sibling), or NodeNone.
	FirstChild NodeIndex
	// Sibling is the next sibling in the parent's (or blossom's cycle)
	// child list, or NodeNone.
	Sibling NodeIndex
	// Depth is 0 at the root, Parent.depth+1 otherwise; its parity gives
	// the plus/minus tree label.
	Depth uint32
	// MatchKind discriminates what Matching points at.
	MatchKind MatchKind
	// Matching is the node's current intermediate-matching link, or the
	// none Link if unmatched.
	Matching Link
}

func noneNode() PrimalNode {
	return PrimalNode{
		Root:       NodeNone,
		Parent:     NoneLink(),
		FirstChild: NodeNone,
		Sibling:    NodeNone,
		Depth:      0,
		MatchKind:  MatchNone,
		Matching:   NoneLink(),
	}
}

// isNone reports whether the slot has never been initialized (or was
// reset by PrimalNodes.Clear and not yet re-touched).
func (n *PrimalNode) isNone() bool { return n.Root == NodeNone }

// initAsRoot resets n into a free singleton tree of which it is the root.
func (n *PrimalNode) initAsRoot(index NodeIndex) {
	n.Root = index
	n.Parent = NoneLink()
	n.FirstChild = NodeNone
	n.Sibling = NodeNone
	n.Depth = 0
	n.MatchKind = MatchNone
	n.Matching = NoneLink()
}

// PrimalNodes is the fixed-capacity arena of alternating-tree nodes: a
// defect prefix [0, N) plus a blossom prefix [N, 2N), consolidating the
// near-duplicate "Nodes"/"PrimalNodes" arena types of the original
// embedded decoder into a single type with the union of both documented
// contracts.
type PrimalNodes struct {
	buffer        []PrimalNode
	n             int // defect capacity; buffer has length 2*n
	countDefects  NodeIndex
	countBlossoms NodeIndex
}

// NewPrimalNodes preallocates an arena for up to n defects and n blossoms
// (2n slots total). No further allocation occurs for the lifetime of the
// arena; Clear only resets counters.
func NewPrimalNodes(n int) *PrimalNodes {
	buffer := make([]PrimalNode, 2*n)
	for i := range buffer {
		buffer[i] = noneNode()
	}
	return &PrimalNodes{buffer: buffer, n: n}
}

// Clear resets both counters to zero without scrubbing the arena; stale
// slot contents are lazily overwritten the next time each index is
// touched via CheckDefect.
func (p *PrimalNodes) Clear() {
	p.countDefects = 0
	p.countBlossoms = 0
}

// CountDefects returns the number of defect slots ever reported to this
// arena since the last Clear.
func (p *PrimalNodes) CountDefects() NodeIndex { return p.countDefects }

// CountBlossoms returns the number of blossoms allocated since the last
// Clear.
func (p *PrimalNodes) CountBlossoms() NodeIndex { return p.countBlossoms }

// Capacity returns the compile-time defect capacity N this arena was
// constructed with.
func (p *PrimalNodes) Capacity() int { return p.n }

func (p *PrimalNodes) prepareDefectsUpTo(defectIndex NodeIndex) {
	if defectIndex >= p.countDefects {
		for i := p.countDefects; i <= defectIndex; i++ {
			p.buffer[i] = noneNode()
		}
		p.countDefects = defectIndex + 1
	}
}

// CheckDefect ensures a defect slot is live, lazily initializing it as a
// free singleton tree root the first time it is referenced. Safe (and
// expected) to call repeatedly for the same index.
func (p *PrimalNodes) CheckDefect(defectIndex NodeIndex) {
	if int(defectIndex) >= p.n {
		panic("blossom: defect index overlaps blossom range")
	}
	p.prepareDefectsUpTo(defectIndex)
	if p.buffer[defectIndex].isNone() {
		p.buffer[defectIndex].initAsRoot(defectIndex)
	}
}

// CheckBlossom asserts blossomIndex was already allocated by this primal
// module via AllocateBlossom; it panics otherwise, since the primal
// module itself is the only legitimate source of blossom indices.
func (p *PrimalNodes) CheckBlossom(blossomIndex NodeIndex) {
	if int(blossomIndex) < p.n {
		panic("blossom: blossom index overlaps defect range")
	}
	local := blossomIndex - NodeIndex(p.n)
	if local >= p.countBlossoms {
		panic("blossom: " + ErrUnknownBlossom.Error())
	}
}

// IsBlossom reports whether nodeIndex falls in the blossom half of the
// index space, per the fixed [0,N)/[N,2N) partition.
func (p *PrimalNodes) IsBlossom(nodeIndex NodeIndex) bool {
	return int(nodeIndex) >= p.n
}

// AllocateBlossom returns the next blossom index (N + count_blossoms) and
// advances the counter. Blossom indices are monotonically increasing:
// the k-th blossom created always gets index N+k.
func (p *PrimalNodes) AllocateBlossom() NodeIndex {
	if int(p.countBlossoms) >= p.n {
		panic("blossom: " + ErrCapacityExceeded.Error())
	}
	idx := NodeIndex(p.n) + p.countBlossoms
	p.countBlossoms++
	p.buffer[idx] = noneNode()
	p.buffer[idx].Root = idx
	return idx
}

// Get returns a pointer to the live slot at nodeIndex, panicking if the
// index is out of the arena's allocated range.
func (p *PrimalNodes) Get(nodeIndex NodeIndex) *PrimalNode {
	if p.IsBlossom(nodeIndex) {
		p.CheckBlossom(nodeIndex)
	} else if nodeIndex >= p.countDefects {
		panic("blossom: cannot get an uninitialized defect node")
	}
	return &p.buffer[nodeIndex]
}

// IterateChildren walks the intrusive child ring of a blossom in cycle
// order, starting at FirstChild and following Sibling until NodeNone.
func (p *PrimalNodes) IterateChildren(blossomIndex NodeIndex, f func(child NodeIndex)) {
	p.CheckBlossom(blossomIndex)
	child := p.buffer[blossomIndex].FirstChild
	for child != NodeNone {
		f(child)
		child = p.buffer[child].Sibling
	}
}

// TreeRoot walks Parent links from node until it reaches a node whose
// Parent is none, returning that root.
func (p *PrimalNodes) TreeRoot(node NodeIndex) NodeIndex {
	for {
		n := p.Get(node)
		if n.Parent.IsNone() {
			return node
		}
		node = n.Parent.Peer
	}
}
