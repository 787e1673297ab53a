package dual

import "github.com/katalvlaran/microblossom/blossom"

// StacklessAdapter bridges the primal's nested blossom-tree descriptions
// ("this blossom's children are these nodes, possibly blossoms
// themselves") to a flat SetBlossom instruction stream, for a hardware
// that maintains no blossom-tree stack of its own. It owns no state
// beyond the wrapped Driver.
//
// Grounded 1:1 on dual_module_stackless.rs.
type StacklessAdapter struct {
	driver Driver
}

// NewStacklessAdapter wraps driver, the next Driver in the chain
// (typically a TrackedDriver, itself wrapping the caller's raw Driver).
func NewStacklessAdapter(driver Driver) *StacklessAdapter {
	return &StacklessAdapter{driver: driver}
}

// Reset forwards to the wrapped driver.
func (a *StacklessAdapter) Reset() { a.driver.Reset() }

// CreateBlossom iterates blossomIndex's immediate children and emits
// SetBlossom(child, blossomIndex) for each. Children that are themselves
// blossoms are not recursed into: the accelerator already transitively
// associates their own children with them.
func (a *StacklessAdapter) CreateBlossom(primal PrimalView, blossomIndex blossom.NodeIndex) {
	primal.IterateChildren(blossomIndex, func(child blossom.NodeIndex) {
		a.driver.SetBlossom(child, blossomIndex)
	})
	if obs, ok := a.driver.(BlossomCreationObserver); ok {
		obs.OnBlossomCreated(blossomIndex)
	}
}

// ExpandBlossom iterates blossomIndex's immediate children. A defect
// child is re-associated with itself (SetBlossom(child, child): free
// node). A blossom child is walked down to its underlying defect leaves,
// each of which is re-associated with that immediate child (not with its
// own leaves' former owner) — restoring the association the accelerator
// held just before the outer blossom was created. This asymmetry with
// CreateBlossom is the adapter's one piece of real logic.
func (a *StacklessAdapter) ExpandBlossom(primal PrimalView, blossomIndex blossom.NodeIndex) {
	primal.IterateChildren(blossomIndex, func(child blossom.NodeIndex) {
		if primal.IsBlossom(child) {
			a.reassociateLeaves(primal, child, child)
		} else {
			a.driver.SetBlossom(child, child)
		}
	})
}

// reassociateLeaves walks down from current to its defect leaves,
// emitting SetBlossom(leaf, owner) for each, where owner is the
// immediate child of the blossom being expanded (fixed across the
// recursion, not current itself).
func (a *StacklessAdapter) reassociateLeaves(primal PrimalView, owner, current blossom.NodeIndex) {
	if primal.IsBlossom(current) {
		primal.IterateChildren(current, func(grandchild blossom.NodeIndex) {
			a.reassociateLeaves(primal, owner, grandchild)
		})
		return
	}
	a.driver.SetBlossom(current, owner)
}

// SetSpeed forwards to the wrapped driver.
func (a *StacklessAdapter) SetSpeed(isBlossom bool, nodeIndex blossom.NodeIndex, state blossom.GrowState) {
	a.driver.SetSpeed(isBlossom, nodeIndex, state)
}

// AddDefect forwards to the wrapped driver.
func (a *StacklessAdapter) AddDefect(vertex blossom.VertexIndex, node blossom.NodeIndex) {
	a.driver.AddDefect(vertex, node)
}

// FindObstacle forwards to the wrapped driver.
func (a *StacklessAdapter) FindObstacle() (blossom.Obstacle, blossom.Weight) {
	return a.driver.FindObstacle()
}

// Grow forwards to the wrapped driver.
func (a *StacklessAdapter) Grow(length blossom.Weight) {
	a.driver.Grow(length)
}
