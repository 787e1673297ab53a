// Package decoder wires one primal.Module, one blossomtracker.Tracker
// (through a dual.TrackedDriver) and a caller-supplied dual.Driver into
// the iterate-until-None loop described in spec.md's data-flow section:
// ask the dual side for the next obstacle and how much it grew since the
// previous call, resolve Conflict/BlossomNeedExpand through the primal
// module, grow by whatever GrowLength the dual reports, and stop on
// None.
//
// This package is glue, not a new algorithmic module: it contains no
// transport, no persistence, no CLI, the same supplement role
// graph.Graph plays over core+algorithms in the teacher repo.
package decoder
