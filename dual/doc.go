// Package dual defines the primal module's view of the dual side: the
// Driver contract a hardware-backed or software reference collaborator
// implements, a TrackedDriver that layers blossom-zero detection on top
// of any Driver, a StacklessAdapter that bridges the primal's nested
// blossom-tree descriptions into a flat SetBlossom instruction stream,
// and the 32-bit instruction encoding used when the driver is
// hardware-backed.
//
// Grounded on interface.rs (DualInterface), dual_driver_tracked.rs and
// dual_module_stackless.rs in the retrieved original source.
package dual
