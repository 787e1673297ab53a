package blossom

// Index domains exchanged between the primal and dual modules.
//
// NodeIndex, VertexIndex and EdgeIndex are intentionally the same
// underlying width: a matched Link's Peer field stores either a NodeIndex
// (peer match) or a VertexIndex (virtual-boundary match), distinguished by
// MatchKind, exactly as the original embedded decoder relies on
// VertexNodeIndex/NodeIndex/DefectIndex all aliasing one primitive.
type (
	NodeIndex   = uint32
	VertexIndex = uint32
	EdgeIndex   = uint32
	Weight      = int32
	Timestamp   = uint32
)

// NodeNone is the reserved sentinel: the maximum representable NodeIndex,
// never a valid index. A node's slot is considered uninitialized ("not
// live") exactly when its Root field equals NodeNone.
const NodeNone NodeIndex = ^NodeIndex(0)

// GrowState is the dual-variable growth rate commanded for a node: the
// node's dual variable increases, decreases, or stays constant.
type GrowState uint8

const (
	Grow GrowState = iota
	Shrink
	Stay
)

func (s GrowState) String() string {
	switch s {
	case Grow:
		return "Grow"
	case Shrink:
		return "Shrink"
	case Stay:
		return "Stay"
	default:
		return "GrowState(?)"
	}
}

// MatchKind discriminates what a PrimalNode.Matching Link actually points
// at: nothing, a peer node, or a virtual boundary vertex.
type MatchKind uint8

const (
	// MatchNone means the node carries no matching Link.
	MatchNone MatchKind = iota
	// MatchPeer means Matching.Peer is the mate NodeIndex.
	MatchPeer
	// MatchVirtual means Matching.Peer is a VertexIndex identifying the
	// virtual boundary vertex the node is matched against.
	MatchVirtual
)

// Link is an edge in the alternating-tree/matching bookkeeping: Peer is
// the index of the other endpoint (a NodeIndex for tree-parent and
// peer-matching links, a VertexIndex when MatchKind is MatchVirtual), and
// Touching is the descendant vertex index through which the link actually
// contacts the other side.
type Link struct {
	Peer     NodeIndex
	Touching NodeIndex
}

// NoneLink returns the absent Link sentinel.
func NoneLink() Link { return Link{Peer: NodeNone, Touching: NodeNone} }

// IsNone reports whether the Link is absent.
func (l Link) IsNone() bool { return l.Peer == NodeNone }
