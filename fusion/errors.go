package fusion

import "errors"

// ErrCapacityExceeded indicates AppendBreak was called while the
// scratchpad was already at its fixed capacity, matching
// container.Vec.Push's panic for the same condition.
var ErrCapacityExceeded = errors.New("fusion: pending-break capacity exceeded")
