package primal

import "errors"

var (
	// ErrUnexpectedObstacle indicates Resolve was called with an obstacle
	// kind it does not handle (None or GrowLength are the driver loop's
	// responsibility, not the primal module's).
	ErrUnexpectedObstacle = errors.New("primal: obstacle kind is not resolvable by the primal module")
	// ErrMalformedCycle indicates a blossom-forming conflict produced a
	// cycle of fewer than 3 nodes or even length, which would violate the
	// alternating-tree invariant that every blossom cycle is odd.
	ErrMalformedCycle = errors.New("primal: blossom cycle must have odd length of at least 3")
)
