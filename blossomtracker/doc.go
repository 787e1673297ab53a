// Package blossomtracker implements the software side of negative-dual-
// variable detection: since the accelerator does not track blossoms'
// dual variables, this package maintains a checkpoint per live blossom
// and a min-heap of candidate hit-zero events, lazily revalidated on
// read. Grounded 1:1 on the original embedded decoder's BlossomTracker
// (see blossom_tracker.rs in the retrieved original source).
package blossomtracker
