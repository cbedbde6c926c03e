package icentral

import (
	"math"
	"sync/atomic"
)

// regionScores is the shared accumulation target of the parallel update
// phase: one atomic float64 cell per affected-region node, indexed
// compactly. Adds are lock-free compare-and-swap loops on the float64 bit
// patterns, so concurrent corrections combine associatively regardless of
// completion order.
type regionScores struct {
	index map[uint64]int
	cells []uint64 // float64 bit patterns
}

// newRegionScores allocates one cell per region node, seeded with the
// node's current cached score.
func newRegionScores(base map[uint64]float64, nodes []uint64) *regionScores {
	r := &regionScores{
		index: make(map[uint64]int, len(nodes)),
		cells: make([]uint64, len(nodes)),
	}
	for i, id := range nodes {
		r.index[id] = i
		r.cells[i] = math.Float64bits(base[id])
	}

	return r
}

// add atomically applies delta to id's cell.
func (r *regionScores) add(id uint64, delta float64) {
	i := r.index[id]
	for {
		old := atomic.LoadUint64(&r.cells[i])
		upd := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(&r.cells[i], old, upd) {
			return
		}
	}
}

// fold writes every cell back into the engine's score table. Must only be
// called after the worker pool has drained.
func (r *regionScores) fold(dst map[uint64]float64) {
	for id, i := range r.index {
		dst[id] = math.Float64frombits(r.cells[i])
	}
}
