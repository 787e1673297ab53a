// Package container provides the two collection types shared by the
// decoder's upper layers: Vec, a fixed-capacity slice that panics instead
// of growing, and MinHeap, a generic binary min-heap built on
// container/heap that tolerates stale entries (the heap never supports
// decrease-key; callers revalidate on peek). MinHeap has no capacity
// bound: Push grows its backing slice as needed and never panics.
package container
