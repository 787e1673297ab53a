package blossomtracker

import "errors"

// Sentinel errors for the blossomtracker package. All indicate a
// programming error (non-monotonic index, capacity exceeded) and are
// fatal to the current decode per spec §7.
var (
	// ErrCapacityExceeded indicates more blossoms were created than the
	// tracker's fixed capacity allows.
	ErrCapacityExceeded = errors.New("blossomtracker: capacity exceeded")

	// ErrNonMonotonicIndex indicates CreateBlossom was called with an
	// index other than first_index + len, violating the allocation
	// monotonicity the tracker relies on to compress its mapping.
	ErrNonMonotonicIndex = errors.New("blossomtracker: blossom index is not first_index + len")
)
