package dual

import "github.com/katalvlaran/microblossom/blossom"

// PrimalView is the narrow slice of the primal node pool the dual side
// needs to translate a blossom creation or expansion into concrete
// register writes: whether a node is a blossom, and its immediate
// children in cycle order.
type PrimalView interface {
	IsBlossom(nodeIndex blossom.NodeIndex) bool
	IterateChildren(blossomIndex blossom.NodeIndex, f func(child blossom.NodeIndex))
}

// Driver is the dual side's contract as seen by the primal module: reset,
// report a node's grow state, associate a node with a blossom, report a
// newly observed defect, advance growth, and report the next obstacle
// together with the growth actually consumed since the previous call.
//
// Two concrete collaborators, outside this module's scope, implement
// Driver: a software reference model and a hardware-backed driver
// reading memory-mapped registers (see dual/encoding.go for the wire
// format the latter speaks). This interface makes no assumption about
// which.
type Driver interface {
	Reset()
	SetSpeed(isBlossom bool, nodeIndex blossom.NodeIndex, state blossom.GrowState)
	SetBlossom(child, blossomIndex blossom.NodeIndex)
	AddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex)
	FindObstacle() (obstacle blossom.Obstacle, grown blossom.Weight)
	Grow(length blossom.Weight)
}

// BlossomCreationObserver is an optional capability a Driver may implement
// to learn about newly created blossoms as they happen, the way
// io.Copy checks its arguments for io.WriterTo/io.ReaderFrom. TrackedDriver
// implements it so StacklessAdapter.CreateBlossom can seed the blossom
// tracker without StacklessAdapter needing to know TrackedDriver exists.
type BlossomCreationObserver interface {
	OnBlossomCreated(blossomIndex blossom.NodeIndex)
}
