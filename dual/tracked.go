package dual

import (
	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/blossomtracker"
)

// TrackedDriver composes any Driver with a blossomtracker.Tracker,
// surfacing blossom-zero events the inner driver's hardware cannot see
// on its own. It implements Driver itself, so it slots transparently in
// front of a raw Driver wherever one is expected (including inside a
// StacklessAdapter).
//
// Grounded 1:1 on dual_driver_tracked.rs.
type TrackedDriver struct {
	inner   Driver
	tracker *blossomtracker.Tracker
}

// NewTrackedDriver wraps inner with tracker.
func NewTrackedDriver(inner Driver, tracker *blossomtracker.Tracker) *TrackedDriver {
	return &TrackedDriver{inner: inner, tracker: tracker}
}

// Reset forwards to the inner driver only; it leaves the tracker as it
// is. Clearing the tracker is Tracker.Clear's job (decoder.Decoder.Reset
// calls both).
func (t *TrackedDriver) Reset() { t.inner.Reset() }

// SetSpeed forwards to the inner driver, and when the node is a blossom
// also informs the tracker so it can recompute or start a hit-zero event.
func (t *TrackedDriver) SetSpeed(isBlossom bool, nodeIndex blossom.NodeIndex, state blossom.GrowState) {
	t.inner.SetSpeed(isBlossom, nodeIndex, state)
	if isBlossom {
		t.tracker.SetSpeed(nodeIndex, state)
	}
}

// OnBlossomCreated informs the tracker a new blossom was allocated. The
// primal module must call this immediately after blossom.PrimalNodes'
// AllocateBlossom, before issuing any SetSpeed against the new index.
func (t *TrackedDriver) OnBlossomCreated(blossomIndex blossom.NodeIndex) {
	t.tracker.CreateBlossom(blossomIndex)
}

// SetBlossom forwards to the inner driver; the tracker only cares about
// dual-variable growth states, not node-to-blossom association.
func (t *TrackedDriver) SetBlossom(child, blossomIndex blossom.NodeIndex) {
	t.inner.SetBlossom(child, blossomIndex)
}

// AddDefect forwards to the inner driver.
func (t *TrackedDriver) AddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex) {
	t.inner.AddDefect(vertex, node)
}

// FindObstacle consults the inner driver first. If the inner result is
// GrowLength or None, the tracker's own hit-zero prediction takes
// priority: a zero remaining growth overrides the result with
// BlossomNeedExpand, and a positive remaining growth tightens whatever
// GrowLength bound the inner driver reported (or supplies one, if the
// inner driver reported None).
func (t *TrackedDriver) FindObstacle() (blossom.Obstacle, blossom.Weight) {
	obstacle, grown := t.inner.FindObstacle()
	if obstacle.Kind != blossom.ObstacleGrowLength && obstacle.Kind != blossom.ObstacleNone {
		return obstacle, grown
	}
	nodeIndex, remaining, ok := t.tracker.PeekHitZero()
	if !ok {
		return obstacle, grown
	}
	if remaining == 0 {
		return blossom.Obstacle{Kind: blossom.ObstacleBlossomNeedExpand, Blossom: nodeIndex}, grown
	}
	if obstacle.Kind == blossom.ObstacleGrowLength && obstacle.Length < remaining {
		return obstacle, grown
	}
	return blossom.GrowLengthObstacle(remaining), grown
}

// Grow advances the tracker's timestamp by length and forwards to the
// inner driver.
func (t *TrackedDriver) Grow(length blossom.Weight) {
	t.inner.Grow(length)
	t.tracker.AdvanceTime(blossom.Timestamp(length))
}
