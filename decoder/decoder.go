package decoder

import (
	"github.com/katalvlaran/microblossom/blossom"
	"github.com/katalvlaran/microblossom/blossomtracker"
	"github.com/katalvlaran/microblossom/dual"
	"github.com/katalvlaran/microblossom/primal"
)

// Option configures a Decoder at construction, grounded on
// core.GraphOption's plain func(*Graph) shape rather than a builder
// struct: every knob here is a single optional hook, not a combinatorial
// config surface.
type Option func(*Decoder)

// WithOnEvent installs a hook invoked for every Event the loop emits: an
// EventGrew after each FindObstacle call, followed on the same step by
// EventResolvedConflict, EventResolvedExpand or EventDone where the
// obstacle calls for one. Nil (the
// default) costs nothing: Decoder never allocates an Event unless a hook
// is installed to receive it.
func WithOnEvent(fn func(Event)) Option {
	return func(d *Decoder) { d.onEvent = fn }
}

// Decoder is the top-level facade a consumer of this module constructs:
// one alternating-tree bookkeeper, one dual-side command chain
// (StacklessAdapter over TrackedDriver over the caller's Driver), driven
// by the loop spec.md §2 describes.
type Decoder struct {
	primal  *primal.Module
	tracker *blossomtracker.Tracker
	dual    *dual.StacklessAdapter

	totalGrown blossom.Weight
	onEvent    func(Event)
}

// New constructs a Decoder for up to capacity simultaneous defects (and
// up to capacity blossoms), driving driver through a StacklessAdapter
// wrapped around a TrackedDriver. capacity is the runtime analogue of
// the original embedded decoder's const-generic N (core.NewGraph takes
// its knobs the same way: a fixed shape baked in at construction, plus
// functional options for the rest).
func New(capacity int, driver dual.Driver, opts ...Option) *Decoder {
	tracker := blossomtracker.New(capacity)
	tracked := dual.NewTrackedDriver(driver, tracker)
	d := &Decoder{
		primal:  primal.NewModule(capacity),
		tracker: tracker,
		dual:    dual.NewStacklessAdapter(tracked),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) emit(evt Event) {
	if d.onEvent != nil {
		d.onEvent(evt)
	}
}

// AddDefect reports a newly observed syndrome vertex to the dual side,
// associating it with node. Defect nodes are materialized in the primal
// arena lazily, the first time node is actually referenced by a
// resolved obstacle (spec.md §3 "Lifecycles") — AddDefect itself only
// informs the dual side.
func (d *Decoder) AddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex) {
	d.dual.AddDefect(vertex, node)
}

// Reset issues a hardware-level Reset instruction to the dual side and
// then clears this Decoder's own host-side bookkeeping, so a Decoder can
// be reused across decodes without reconstruction.
func (d *Decoder) Reset() {
	d.dual.Reset()
	d.Clear()
}

// Clear resets the primal arena's and blossom tracker's counters to
// zero, mirroring blossom.PrimalNodes.Clear / blossomtracker.Tracker.Clear
// (spec.md §5: "clear() resets counters only", no arena scrubbing, no
// dual-side instruction). Unlike Reset, Clear never touches the dual
// side.
func (d *Decoder) Clear() {
	d.primal.Clear()
	d.tracker.Clear()
	d.totalGrown = 0
}

// TotalGrown returns the cumulative weight grown across every
// FindObstacle call since construction or the last Clear, for host-side
// accounting; the decoder's own loop logic never consults it.
func (d *Decoder) TotalGrown() blossom.Weight { return d.totalGrown }

// Run drives the find-obstacle/resolve loop to completion: it asks the
// dual side for the next obstacle, dispatches Conflict and
// BlossomNeedExpand to the primal module, grows by whatever GrowLength
// the dual reports, and returns once the dual reports None (a perfect
// matching has been found).
func (d *Decoder) Run() {
	for {
		obstacle, grown := d.dual.FindObstacle()
		d.totalGrown += grown
		d.emit(Event{Kind: EventGrew, Grown: grown, Obstacle: obstacle})

		switch obstacle.Kind {
		case blossom.ObstacleNone:
			d.emit(Event{Kind: EventDone})
			return
		case blossom.ObstacleGrowLength:
			d.dual.Grow(obstacle.Length)
		case blossom.ObstacleConflict:
			d.primal.Resolve(d.dual, obstacle)
			d.emit(Event{Kind: EventResolvedConflict, Obstacle: obstacle})
		case blossom.ObstacleBlossomNeedExpand:
			d.primal.Resolve(d.dual, obstacle)
			d.emit(Event{Kind: EventResolvedExpand, Obstacle: obstacle})
		}
	}
}

// IteratePerfectMatching walks the resulting perfect matching once Run
// has returned, forwarding to primal.Module.IteratePerfectMatching.
func (d *Decoder) IteratePerfectMatching(f func(node blossom.NodeIndex, kind blossom.MatchKind, target, touching blossom.NodeIndex)) {
	d.primal.IteratePerfectMatching(f)
}
