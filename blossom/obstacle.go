package blossom

import "github.com/katalvlaran/microblossom/nonmax"

// ObstacleKind discriminates the variants of Obstacle, the tagged-variant
// currency exchanged across the primal<->dual boundary.
type ObstacleKind uint8

const (
	// ObstacleNone: nothing to do, decoder is done.
	ObstacleNone ObstacleKind = iota
	// ObstacleGrowLength: the dual grew by Length and can grow further
	// with no immediate event. Length may be zero, signalling erasure
	// propagation.
	ObstacleGrowLength
	// ObstacleConflict: two growing regions met (possibly one of them a
	// virtual boundary).
	ObstacleConflict
	// ObstacleBlossomNeedExpand: a shrinking blossom's dual variable hit
	// zero; it must be decomposed.
	ObstacleBlossomNeedExpand
)

// Obstacle is the event surfaced by the dual side of the decoder: either
// nothing, a bounded growth amount, an edge-tightness conflict, or a
// blossom whose dual variable hit zero.
//
// Go has no tagged union, so Obstacle is a flat struct carrying every
// variant's payload; Kind says which fields are meaningful.
type Obstacle struct {
	Kind ObstacleKind

	// Valid when Kind == ObstacleGrowLength.
	Length Weight

	// Valid when Kind == ObstacleConflict. Node1/Touch1 are Option
	// because a dual driver may report either side first; FixConflictOrder
	// restores the convention that Node1 is always present. Node2/Touch2
	// are absent when region 1 met a virtual boundary at Vertex2 rather
	// than another growing region.
	Node1   nonmax.Option[NodeIndex]
	Node2   nonmax.Option[NodeIndex]
	Touch1  nonmax.Option[NodeIndex]
	Touch2  nonmax.Option[NodeIndex]
	Vertex1 VertexIndex
	Vertex2 VertexIndex

	// Valid when Kind == ObstacleBlossomNeedExpand.
	Blossom NodeIndex
}

// NoneObstacle is the identity element of Reduce.
func NoneObstacle() Obstacle { return Obstacle{Kind: ObstacleNone} }

// GrowLengthObstacle constructs an ObstacleGrowLength.
func GrowLengthObstacle(length Weight) Obstacle {
	return Obstacle{Kind: ObstacleGrowLength, Length: length}
}

// IsNone reports whether the obstacle carries no work.
func (o Obstacle) IsNone() bool { return o.Kind == ObstacleNone }

// IsObstacle reports whether the obstacle requires primal resolution
// (Conflict or BlossomNeedExpand) as opposed to None/GrowLength.
func (o Obstacle) IsObstacle() bool {
	return o.Kind == ObstacleConflict || o.Kind == ObstacleBlossomNeedExpand
}

// IsFiniteGrowth reports whether the obstacle is a bounded GrowLength.
func (o Obstacle) IsFiniteGrowth() bool { return o.Kind == ObstacleGrowLength }

// Reduce combines two obstacles reported by parallel reducers: None is
// the identity, any non-None/non-GrowLength obstacle dominates a
// GrowLength or None, and two GrowLengths yield the minimum length.
// Reduce is associative. It is commutative except when both a and b are
// Conflict or BlossomNeedExpand obstacles: then a is returned.
func Reduce(a, b Obstacle) Obstacle {
	if a.Kind == ObstacleNone {
		return b
	}
	if b.Kind == ObstacleNone {
		return a
	}
	if a.Kind != ObstacleGrowLength {
		return a
	}
	if b.Kind != ObstacleGrowLength {
		return b
	}
	length := a.Length
	if b.Length < length {
		length = b.Length
	}
	return GrowLengthObstacle(length)
}

// FixConflictOrder swaps the two conflict sides in place so that Node1 is
// always the present ("normal") side, moving a virtual-boundary Node2
// into Node1's place if Node1 arrived absent. Used by dual drivers before
// delivering a Conflict to the primal module.
func (o *Obstacle) FixConflictOrder() {
	if o.Kind != ObstacleConflict {
		return
	}
	if o.Node1.IsSome() {
		return
	}
	if o.Node2.IsNone() {
		panic("blossom: at least one of node_1 and node_2 should be present")
	}
	o.Node1, o.Node2 = o.Node2, o.Node1
	o.Touch1, o.Touch2 = o.Touch2, o.Touch1
	o.Vertex1, o.Vertex2 = o.Vertex2, o.Vertex1
}
