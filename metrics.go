package inplace

import "sync/atomic"

var (
	stackPlacements atomic.Uint64
	heapPlacements  atomic.Uint64
	slotsReleased   atomic.Uint64
)

// PlacementMetrics contains statistical information about placements
// made through this package.
type PlacementMetrics struct {
	StackPlacements uint64 // placements served by a fixed-capacity bucket
	HeapPlacements  uint64 // placements that fell back to a heap slice
	SlotsReleased   uint64 // initialized slots cleared at release
}

// Metrics returns a snapshot of the package-wide placement counters.
// Counters only ever grow; subtract two snapshots to observe a window.
// Safe for concurrent use.
func Metrics() PlacementMetrics {
	return PlacementMetrics{
		StackPlacements: stackPlacements.Load(),
		HeapPlacements:  heapPlacements.Load(),
		SlotsReleased:   slotsReleased.Load(),
	}
}
