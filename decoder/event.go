package decoder

import "github.com/katalvlaran/microblossom/blossom"

// EventKind discriminates what step of the loop an Event reports.
type EventKind uint8

const (
	// EventGrew reports growth observed since the previous FindObstacle
	// call, before the obstacle it came bundled with is acted on.
	EventGrew EventKind = iota
	// EventResolvedConflict reports that a Conflict obstacle was
	// dispatched to primal.Module.Resolve.
	EventResolvedConflict
	// EventResolvedExpand reports that a BlossomNeedExpand obstacle was
	// dispatched to primal.Module.Resolve.
	EventResolvedExpand
	// EventDone reports that the dual side returned None: the decode
	// converged to a perfect matching.
	EventDone
)

// Event is the optional tracing record a Decoder's OnEvent hook
// receives, mirroring the teacher's dfs.WithOnVisit/dfs.WithOnExit hook
// shape rather than pulling in a logging dependency (spec.md §5/§7 rule
// out logging from this core entirely).
type Event struct {
	Kind     EventKind
	Grown    blossom.Weight
	Obstacle blossom.Obstacle
}
