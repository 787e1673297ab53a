package blossomtracker

import (
	"math"

	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/container"
)

type checkpoint struct {
	timestamp blossom.Timestamp
	dual      blossom.Weight
}

type hitZeroEvent struct {
	timestamp blossom.Timestamp
	nodeIndex blossom.NodeIndex
}

func eventLess(a, b hitZeroEvent) bool { return a.timestamp < b.timestamp }

// Tracker detects BlossomNeedExpand events: blossoms whose dual variable
// will hit zero while shrinking. Blossom indices are allocated
// monotonically (the k-th blossom is first_index+k), which lets the
// tracker store per-blossom state in a dense slice keyed by
// index-first_index rather than a map.
type Tracker struct {
	hitZeroEvents *container.MinHeap[hitZeroEvent]
	timestamp     blossom.Timestamp
	firstIndex    blossom.NodeIndex
	checkpoints   *container.Vec[checkpoint]
	growStates    *container.Vec[blossom.GrowState]
}

// New constructs an empty Tracker with a fixed capacity for the number
// of live blossoms it can track simultaneously.
func New(capacity int) *Tracker {
	return &Tracker{
		hitZeroEvents: container.NewMinHeap[hitZeroEvent](eventLess),
		timestamp:     0,
		firstIndex:    blossom.NodeNone,
		checkpoints:   container.NewVec[checkpoint](capacity),
		growStates:    container.NewVec[blossom.GrowState](capacity),
	}
}

// Clear resets the tracker to its just-constructed state, ready to track
// a fresh decode's blossoms from scratch.
func (t *Tracker) Clear() {
	t.timestamp = 0
	t.firstIndex = blossom.NodeNone
	t.checkpoints.Clear()
	t.growStates.Clear()
	t.hitZeroEvents.Clear()
}

// AdvanceTime increases the tracker's monotone timestamp. Callers must
// guarantee no tracked blossom crosses zero strictly inside delta.
func (t *Tracker) AdvanceTime(delta blossom.Timestamp) {
	t.timestamp += delta
}

func (t *Tracker) localIndexOf(nodeIndex blossom.NodeIndex) int {
	if nodeIndex < t.firstIndex || int(nodeIndex-t.firstIndex) >= t.checkpoints.Len() {
		panic("blossomtracker: node index outside tracked range")
	}
	return int(nodeIndex - t.firstIndex)
}

// CreateBlossom registers a newly allocated blossom, initializing its
// checkpoint to (now, 0) and its grow state to Grow. nodeIndex must equal
// first_index+len (monotonic allocation), matching the blossom package's
// own monotonicity invariant.
func (t *Tracker) CreateBlossom(nodeIndex blossom.NodeIndex) {
	if t.checkpoints.Len() == 0 {
		t.firstIndex = nodeIndex
	} else if nodeIndex != t.firstIndex+blossom.NodeIndex(t.checkpoints.Len()) {
		panic("blossomtracker: " + ErrNonMonotonicIndex.Error())
	}
	if t.checkpoints.Len() >= t.checkpoints.Capacity() {
		panic("blossomtracker: " + ErrCapacityExceeded.Error())
	}
	t.checkpoints.Push(checkpoint{timestamp: t.timestamp, dual: 0})
	t.growStates.Push(blossom.Grow)
}

func (t *Tracker) localDualVariable(localIndex int) blossom.Weight {
	cp := t.checkpoints.Get(localIndex)
	delta := blossom.Weight(t.timestamp - cp.timestamp)
	switch t.growStates.Get(localIndex) {
	case blossom.Grow:
		return cp.dual + delta
	case blossom.Shrink:
		return cp.dual - delta
	default: // Stay
		return cp.dual
	}
}

// GetDualVariable returns the current dual variable of the blossom at
// nodeIndex, computed from its checkpoint plus elapsed time since.
func (t *Tracker) GetDualVariable(nodeIndex blossom.NodeIndex) blossom.Weight {
	return t.localDualVariable(t.localIndexOf(nodeIndex))
}

// SetSpeed updates the grow state of the blossom at nodeIndex, freezing
// its current dual value into a fresh checkpoint. If the new state is
// Shrink, a hit-zero event is pushed at the time the dual is expected to
// reach zero; stale events from earlier speed changes are left in the
// heap and revalidated lazily.
func (t *Tracker) SetSpeed(nodeIndex blossom.NodeIndex, state blossom.GrowState) {
	localIndex := t.localIndexOf(nodeIndex)
	if state == t.growStates.Get(localIndex) {
		return
	}
	dual := t.localDualVariable(localIndex)
	t.checkpoints.Set(localIndex, checkpoint{timestamp: t.timestamp, dual: dual})
	t.growStates.Set(localIndex, state)
	if state == blossom.Shrink {
		t.hitZeroEvents.Push(hitZeroEvent{
			timestamp: t.timestamp + blossom.Timestamp(dual),
			nodeIndex: nodeIndex,
		})
	}
}

// isValidEvent reports whether a hit-zero event at the heap head still
// reflects the blossom's actual current trajectory: the blossom must
// still be Shrink and the recomputed zero-crossing time must match the
// event's recorded time exactly.
func (t *Tracker) isValidEvent(event hitZeroEvent) bool {
	localIndex := t.localIndexOf(event.nodeIndex)
	if t.growStates.Get(localIndex) != blossom.Shrink {
		return false
	}
	dual := t.localDualVariable(localIndex)
	actual := t.timestamp + blossom.Timestamp(dual)
	return event.timestamp == actual
}

func (t *Tracker) removeOutdatedEvents() {
	for !t.hitZeroEvents.IsEmpty() {
		if t.isValidEvent(t.hitZeroEvents.Peek()) {
			return
		}
		t.hitZeroEvents.Pop()
	}
}

// GetMaximumGrowth lazily discards stale heap entries and returns the
// time remaining before the next blossom hits zero, or math.MaxInt32 if
// no blossom is shrinking toward zero.
func (t *Tracker) GetMaximumGrowth() blossom.Weight {
	t.removeOutdatedEvents()
	if t.hitZeroEvents.IsEmpty() {
		return math.MaxInt32
	}
	event := t.hitZeroEvents.Peek()
	return blossom.Weight(event.timestamp - t.timestamp)
}

// PeekHitZero returns the blossom index expected to hit zero soonest and
// the growth remaining until then, after discarding stale entries; ok is
// false if no blossom is currently shrinking toward zero. dual.TrackedDriver
// needs both the index and the remaining growth to build a
// BlossomNeedExpand obstacle, unlike GetMaximumGrowth which only needs
// the growth bound.
func (t *Tracker) PeekHitZero() (nodeIndex blossom.NodeIndex, remaining blossom.Weight, ok bool) {
	t.removeOutdatedEvents()
	if t.hitZeroEvents.IsEmpty() {
		return 0, 0, false
	}
	event := t.hitZeroEvents.Peek()
	return event.nodeIndex, blossom.Weight(event.timestamp - t.timestamp), true
}
