package blossom

import "errors"

// Sentinel errors for the blossom package. All of them indicate a
// programming error at this layer (capacity exceeded or an invariant
// violated) and are fatal to the current decode per spec §7: callers
// must Clear() and reset the dual module before starting another decode.
var (
	// ErrCapacityExceeded indicates the arena's compile-time capacity N
	// was sized too small for the syndrome being decoded.
	ErrCapacityExceeded = errors.New("blossom: capacity exceeded")

	// ErrUnknownBlossom indicates a blossom index was referenced before
	// the primal module allocated it.
	ErrUnknownBlossom = errors.New("blossom: blossom index not allocated by this primal module")

	// ErrNotABlossom indicates a defect index was used where a blossom
	// index was required.
	ErrNotABlossom = errors.New("blossom: node index is a defect, not a blossom")

	// ErrIsABlossom indicates a blossom index was used where a defect
	// index was required.
	ErrIsABlossom = errors.New("blossom: node index is a blossom, not a defect")
)
