package primal

import (
	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/dual"
)

// DualSide is the subset of the dual side the primal module drives while
// resolving an obstacle: creating/expanding blossoms and re-grading a
// node's growth speed. *dual.StacklessAdapter satisfies this structurally.
type DualSide interface {
	CreateBlossom(primal dual.PrimalView, blossomIndex blossom.NodeIndex)
	ExpandBlossom(primal dual.PrimalView, blossomIndex blossom.NodeIndex)
	SetSpeed(isBlossom bool, nodeIndex blossom.NodeIndex, state blossom.GrowState)
}

// Module is the alternating-tree/blossom bookkeeper: a fixed-capacity
// PrimalNodes arena plus the tree-surgery operations that resolve
// obstacles reported by the dual side.
type Module struct {
	nodes *blossom.PrimalNodes
}

// NewModule preallocates a primal module able to track up to capacity
// simultaneous defects (and up to capacity blossoms).
func NewModule(capacity int) *Module {
	return &Module{nodes: blossom.NewPrimalNodes(capacity)}
}

// Clear resets the underlying arena's counters, ready for a fresh decode.
func (m *Module) Clear() { m.nodes.Clear() }

// Nodes exposes the underlying arena directly, for tests that need to
// seed or inspect tree structure Resolve itself does not build (Resolve
// never grows an alternating tree, and neither does decoder.Decoder.Run).
func (m *Module) Nodes() *blossom.PrimalNodes { return m.nodes }

// IsBlossom reports whether nodeIndex is a blossom, satisfying
// dual.PrimalView so a *Module can stand in directly for it.
func (m *Module) IsBlossom(nodeIndex blossom.NodeIndex) bool { return m.nodes.IsBlossom(nodeIndex) }

// IterateChildren walks blossomIndex's immediate children in cycle order,
// satisfying dual.PrimalView.
func (m *Module) IterateChildren(blossomIndex blossom.NodeIndex, f func(child blossom.NodeIndex)) {
	m.nodes.IterateChildren(blossomIndex, f)
}

// Resolve dispatches obstacle to the tree-surgery operation that consumes
// it. Only Conflict and BlossomNeedExpand are resolvable here; None and
// GrowLength are the driver loop's own responsibility (spec §4.5) and
// passing one panics, matching this layer's "all failures are programming
// errors" contract.
func (m *Module) Resolve(dualSide DualSide, obstacle blossom.Obstacle) {
	switch obstacle.Kind {
	case blossom.ObstacleConflict:
		m.resolveConflict(dualSide, obstacle)
	case blossom.ObstacleBlossomNeedExpand:
		m.resolveExpand(dualSide, obstacle.Blossom)
	default:
		panic(ErrUnexpectedObstacle.Error())
	}
}

// materialize ensures node's slot is live, the way the dual side's first
// mention of a fresh defect or blossom always precedes any tree op on it.
func (m *Module) materialize(node blossom.NodeIndex) {
	if m.nodes.IsBlossom(node) {
		m.nodes.CheckBlossom(node)
		return
	}
	m.nodes.CheckDefect(node)
}

// resolveConflict handles an ObstacleConflict in the three cases spec.md
// §4.5 describes, in priority order: touching the virtual boundary, two
// distinct tree roots (augment), and a single shared root (form blossom).
func (m *Module) resolveConflict(dualSide DualSide, obstacle blossom.Obstacle) {
	obstacle.FixConflictOrder()
	node1, ok := obstacle.Node1.Get()
	if !ok {
		panic(ErrUnexpectedObstacle.Error())
	}
	touch1, _ := obstacle.Touch1.Get()
	m.materialize(node1)

	if node2, hasNode2 := obstacle.Node2.Get(); hasNode2 {
		touch2, _ := obstacle.Touch2.Get()
		m.materialize(node2)
		root1 := m.nodes.TreeRoot(node1)
		root2 := m.nodes.TreeRoot(node2)
		if root1 == root2 {
			m.formBlossom(dualSide, node1, touch1, node2, touch2)
		} else {
			m.augmentTwoTrees(dualSide, node1, touch1, node2, touch2)
		}
		return
	}

	m.augmentToVirtual(dualSide, node1, touch1, obstacle.Vertex2)
}

// pathToRootDescending returns [root, ..., node], the chain of Parent
// links from node up to its tree root, reversed into root-first order.
func (m *Module) pathToRootDescending(node blossom.NodeIndex) []blossom.NodeIndex {
	var ascending []blossom.NodeIndex
	cur := node
	for {
		ascending = append(ascending, cur)
		n := m.nodes.Get(cur)
		if n.Parent.IsNone() {
			break
		}
		cur = n.Parent.Peer
	}
	for i, j := 0, len(ascending)-1; i < j; i, j = i+1, j-1 {
		ascending[i], ascending[j] = ascending[j], ascending[i]
	}
	return ascending
}

// pairFromRoot matches every other node along a root-to-conflict-node
// path: (path[0],path[1]), (path[2],path[3]), and so on, each pair using
// the child's own existing tree-edge touch vertex. The last element
// (the conflict-facing node itself) is deliberately left untouched; the
// caller matches it externally against the obstacle's own touch vertex.
func (m *Module) pairFromRoot(dualSide DualSide, path []blossom.NodeIndex) {
	for i := 0; i+1 < len(path); i += 2 {
		m.matchPair(dualSide, path[i], path[i+1])
	}
}

// matchPair matches parent and child (an existing tree edge, child being
// parent's descendant), reusing child's Parent.Touching as both sides'
// touch vertex since this module does not track a separate touch value
// per edge endpoint.
func (m *Module) matchPair(dualSide DualSide, parent, child blossom.NodeIndex) {
	childNode := m.nodes.Get(child)
	touch := childNode.Parent.Touching
	parentNode := m.nodes.Get(parent)

	parentNode.MatchKind = blossom.MatchPeer
	parentNode.Matching = blossom.Link{Peer: child, Touching: touch}
	parentNode.Parent = blossom.NoneLink()

	childNode.MatchKind = blossom.MatchPeer
	childNode.Matching = blossom.Link{Peer: parent, Touching: touch}
	childNode.Parent = blossom.NoneLink()

	dualSide.SetSpeed(m.nodes.IsBlossom(parent), parent, blossom.Stay)
	dualSide.SetSpeed(m.nodes.IsBlossom(child), child, blossom.Stay)
}

// setMatchPeer matches node1 and node2 directly against each other, using
// the obstacle's own touch1/touch2 (the new conflict edge, not any
// pre-existing tree edge).
func (m *Module) setMatchPeer(dualSide DualSide, node1, touch1, node2, touch2 blossom.NodeIndex) {
	n1 := m.nodes.Get(node1)
	n2 := m.nodes.Get(node2)

	n1.MatchKind = blossom.MatchPeer
	n1.Matching = blossom.Link{Peer: node2, Touching: touch1}
	n1.Parent = blossom.NoneLink()

	n2.MatchKind = blossom.MatchPeer
	n2.Matching = blossom.Link{Peer: node1, Touching: touch2}
	n2.Parent = blossom.NoneLink()

	dualSide.SetSpeed(m.nodes.IsBlossom(node1), node1, blossom.Stay)
	dualSide.SetSpeed(m.nodes.IsBlossom(node2), node2, blossom.Stay)
}

// setMatchVirtual matches node against the virtual boundary vertex.
func (m *Module) setMatchVirtual(dualSide DualSide, node, touch blossom.NodeIndex, vertex blossom.VertexIndex) {
	n := m.nodes.Get(node)
	n.MatchKind = blossom.MatchVirtual
	n.Matching = blossom.Link{Peer: vertex, Touching: touch}
	n.Parent = blossom.NoneLink()
	dualSide.SetSpeed(m.nodes.IsBlossom(node), node, blossom.Stay)
}

// augmentToVirtual dissolves the single tree rooted above node1, pairing
// every other node along the root-to-node1 path, then matches node1
// itself against the virtual boundary vertex it touched.
func (m *Module) augmentToVirtual(dualSide DualSide, node1, touch1 blossom.NodeIndex, vertex2 blossom.VertexIndex) {
	path := m.pathToRootDescending(node1)
	m.pairFromRoot(dualSide, path)
	m.setMatchVirtual(dualSide, node1, touch1, vertex2)
}

// augmentTwoTrees dissolves both trees rooted above node1 and node2,
// pairing every other node along each root-to-conflict-node path, then
// matches node1 and node2 directly against each other.
func (m *Module) augmentTwoTrees(dualSide DualSide, node1, touch1, node2, touch2 blossom.NodeIndex) {
	path1 := m.pathToRootDescending(node1)
	path2 := m.pathToRootDescending(node2)
	m.pairFromRoot(dualSide, path1)
	m.pairFromRoot(dualSide, path2)
	m.setMatchPeer(dualSide, node1, touch1, node2, touch2)
}

// findLCA returns the lowest common ancestor of node1 and node2 within
// their shared tree, walking Parent links by depth.
func (m *Module) findLCA(node1, node2 blossom.NodeIndex) blossom.NodeIndex {
	a, b := node1, node2
	for m.nodes.Get(a).Depth > m.nodes.Get(b).Depth {
		a = m.nodes.Get(a).Parent.Peer
	}
	for m.nodes.Get(b).Depth > m.nodes.Get(a).Depth {
		b = m.nodes.Get(b).Parent.Peer
	}
	for a != b {
		a = m.nodes.Get(a).Parent.Peer
		b = m.nodes.Get(b).Parent.Peer
	}
	return a
}

// collectCycle returns the blossom cycle in ring order: lca, then the
// descent from lca to node1, then the ascent from node2 back up to (but
// excluding) lca, so consecutive entries are existing tree edges except
// for the node1-node2 pair, which is the new conflict edge.
func (m *Module) collectCycle(node1, node2, lca blossom.NodeIndex) []blossom.NodeIndex {
	var up1 []blossom.NodeIndex
	for n := node1; n != lca; n = m.nodes.Get(n).Parent.Peer {
		up1 = append(up1, n)
	}
	for i, j := 0, len(up1)-1; i < j; i, j = i+1, j-1 {
		up1[i], up1[j] = up1[j], up1[i]
	}

	var up2 []blossom.NodeIndex
	for n := node2; n != lca; n = m.nodes.Get(n).Parent.Peer {
		up2 = append(up2, n)
	}

	cycle := make([]blossom.NodeIndex, 0, 1+len(up1)+len(up2))
	cycle = append(cycle, lca)
	cycle = append(cycle, up1...)
	cycle = append(cycle, up2...)
	return cycle
}

// replaceChildInRing patches parent's intrusive child ring so the entry
// that used to be oldChild now reads newChild, preserving ring order.
// A no-op if parent is NodeNone (oldChild was itself a tree root).
func (m *Module) replaceChildInRing(parent, oldChild, newChild blossom.NodeIndex) {
	if parent == blossom.NodeNone {
		return
	}
	parentNode := m.nodes.Get(parent)
	if parentNode.FirstChild == oldChild {
		parentNode.FirstChild = newChild
		return
	}
	cur := parentNode.FirstChild
	for cur != blossom.NodeNone {
		curNode := m.nodes.Get(cur)
		if curNode.Sibling == oldChild {
			curNode.Sibling = newChild
			return
		}
		cur = curNode.Sibling
	}
}

// formBlossom allocates a new blossom over the odd cycle through node1
// and node2's shared ancestor, reparenting every cycle member onto it and
// grafting it into the tree where the old ancestor used to sit. The new
// blossom is commanded to Grow; its cycle members are left to the dual
// side's own CreateBlossom bookkeeping (spec §4.9) rather than an
// explicit Stay command from here.
func (m *Module) formBlossom(dualSide DualSide, node1, touch1, node2, touch2 blossom.NodeIndex) {
	lca := m.findLCA(node1, node2)
	cycle := m.collectCycle(node1, node2, lca)
	if len(cycle) < 3 || len(cycle)%2 == 0 {
		panic(ErrMalformedCycle.Error())
	}

	lcaSnapshot := *m.nodes.Get(lca)
	b := m.nodes.AllocateBlossom()

	m.replaceChildInRing(lcaSnapshot.Parent.Peer, lca, b)

	blossomNode := m.nodes.Get(b)
	blossomNode.Parent = lcaSnapshot.Parent
	blossomNode.Depth = lcaSnapshot.Depth
	blossomNode.Root = lcaSnapshot.Root
	blossomNode.Sibling = lcaSnapshot.Sibling
	blossomNode.FirstChild = lca
	blossomNode.MatchKind = blossom.MatchNone
	blossomNode.Matching = blossom.NoneLink()

	for i, child := range cycle {
		childNode := m.nodes.Get(child)
		touch := childNode.Parent.Touching
		switch child {
		case node1:
			touch = touch1
		case node2:
			touch = touch2
		}
		childNode.Parent = blossom.Link{Peer: b, Touching: touch}
		if i+1 < len(cycle) {
			childNode.Sibling = cycle[i+1]
		} else {
			childNode.Sibling = blossom.NodeNone
		}
	}

	dualSide.CreateBlossom(m, b)
	dualSide.SetSpeed(true, b, blossom.Grow)
}

// cycleMembers collects a blossom's immediate children in cycle order.
func (m *Module) cycleMembers(b blossom.NodeIndex) []blossom.NodeIndex {
	var members []blossom.NodeIndex
	m.nodes.IterateChildren(b, func(child blossom.NodeIndex) {
		members = append(members, child)
	})
	return members
}

// findChildByTouch returns the cycle member whose own touch vertex
// matches touch, used to locate which child realizes a blossom's
// pre-existing Matching link.
func (m *Module) findChildByTouch(cycle []blossom.NodeIndex, touch blossom.NodeIndex) (blossom.NodeIndex, bool) {
	for _, c := range cycle {
		if m.nodes.Get(c).Parent.Touching == touch {
			return c, true
		}
	}
	return blossom.NodeNone, false
}

// childDepthUnder returns the Depth a node directly under link would
// carry: 0 if link is none (a fresh tree root), else the parent's
// Depth+1.
func (m *Module) childDepthUnder(link blossom.Link) uint32 {
	if link.IsNone() {
		return 0
	}
	return m.nodes.Get(link.Peer).Depth + 1
}

// indexOf returns target's position in cycle, or -1 if absent.
func indexOf(cycle []blossom.NodeIndex, target blossom.NodeIndex) int {
	for i, c := range cycle {
		if c == target {
			return i
		}
	}
	return -1
}

// resolveExpand decomposes a blossom whose dual variable hit zero while
// shrinking, per spec.md §4.5: the sub-path between the node touching the
// blossom's own tree parent and the node touching its pre-existing
// matching partner re-enters the alternating tree with alternating
// Grow/Shrink labels; the rest of the cycle is paired off-tree in
// adjacent pairs. The blossom's slot is then freed (its index is never
// reused, matching the monotonic-allocation invariant).
func (m *Module) resolveExpand(dualSide DualSide, b blossom.NodeIndex) {
	m.nodes.CheckBlossom(b)
	blossomNode := *m.nodes.Get(b)
	cycle := m.cycleMembers(b)
	if len(cycle) == 0 {
		panic("primal: blossom has no children to expand")
	}

	entryChild := blossomNode.FirstChild
	matchChild := entryChild
	if blossomNode.MatchKind != blossom.MatchNone {
		if found, ok := m.findChildByTouch(cycle, blossomNode.Matching.Touching); ok {
			matchChild = found
		}
	}

	ring := len(cycle)
	idxEntry := indexOf(cycle, entryChild)
	idxMatch := indexOf(cycle, matchChild)
	forwardEdges := ((idxMatch - idxEntry) + ring) % ring

	var evenPath []blossom.NodeIndex
	if forwardEdges%2 == 0 {
		for i := 0; i <= forwardEdges; i++ {
			evenPath = append(evenPath, cycle[(idxEntry+i)%ring])
		}
	} else {
		backwardEdges := ring - forwardEdges
		for i := 0; i <= backwardEdges; i++ {
			evenPath = append(evenPath, cycle[((idxEntry-i)%ring+ring)%ring])
		}
	}

	inPath := make(map[blossom.NodeIndex]bool, len(evenPath))
	for _, n := range evenPath {
		inPath[n] = true
	}
	var remaining []blossom.NodeIndex
	for _, n := range cycle {
		if !inPath[n] {
			remaining = append(remaining, n)
		}
	}

	state := blossom.Grow
	prevParent := blossomNode.Parent
	for _, node := range evenPath {
		n := m.nodes.Get(node)
		n.Parent = prevParent
		n.Depth = m.childDepthUnder(prevParent)
		dualSide.SetSpeed(m.nodes.IsBlossom(node), node, state)
		if state == blossom.Grow {
			state = blossom.Shrink
		} else {
			state = blossom.Grow
		}
		prevParent = blossom.Link{Peer: node, Touching: node}
	}

	for i := 0; i+1 < len(remaining); i += 2 {
		m.matchPair(dualSide, remaining[i], remaining[i+1])
	}

	dualSide.ExpandBlossom(m, b)

	*m.nodes.Get(b) = blossom.PrimalNode{Root: blossom.NodeNone}
}

// IteratePerfectMatching walks live defect slots; for each whose matching
// is present and which is not currently a blossom child, it calls f with
// the node, what kind of match it is, and the match's target and touch
// vertex. Callers outside this layer translate this into an edge set.
func (m *Module) IteratePerfectMatching(f func(node blossom.NodeIndex, kind blossom.MatchKind, target, touching blossom.NodeIndex)) {
	count := m.nodes.CountDefects()
	for i := blossom.NodeIndex(0); i < count; i++ {
		n := m.nodes.Get(i)
		if n.MatchKind == blossom.MatchNone || !n.Parent.IsNone() {
			continue
		}
		f(i, n.MatchKind, n.Matching.Peer, n.Matching.Touching)
	}
}
