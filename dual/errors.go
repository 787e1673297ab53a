package dual

import "errors"

// ErrDriverIO indicates a hardware-backed driver's memory-mapped I/O
// failed (e.g. a read timeout waiting for the accelerator to settle).
// Reporting is at the driver implementation's layer; this module only
// names the sentinel so callers can recognize it with errors.Is.
var ErrDriverIO = errors.New("dual: driver I/O failure")
