package icentral

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/centrality/bicomp"
	"github.com/katalvlaran/centrality/gview"
)

// region is the affected slice of the graph after an edge mutation: the
// node set of the one biconnected component containing the mutated edge,
// and the articulation points lying inside it.
type region struct {
	nodes map[uint64]struct{}
	aps   map[uint64]struct{}
}

// contains reports whether id belongs to the affected component.
func (r *region) contains(id uint64) bool {
	_, ok := r.nodes[id]

	return ok
}

// isArticulation reports whether id is an articulation point of the
// affected component's boundary.
func (r *region) isArticulation(id uint64) bool {
	_, ok := r.aps[id]

	return ok
}

// sorted returns the region's node IDs ascending, for a deterministic
// fan-out order.
func (r *region) sorted() []uint64 {
	out := make([]uint64, 0, len(r.nodes))
	for id := range r.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// affectedRegion decomposes g and isolates the single biconnected component
// whose edge set contains (u, v). A bridge degenerates to its two endpoints.
// g must be the snapshot that actually contains the mutated edge.
func affectedRegion(g gview.Graph, u, v uint64) (*region, error) {
	dec, err := bicomp.Decompose(g)
	if err != nil {
		return nil, fmt.Errorf("icentral: decompose: %w", err)
	}
	ci := dec.ComponentOf(u, v)
	if ci < 0 {
		return nil, fmt.Errorf("icentral: edge (%d,%d): %w", u, v, gview.ErrEdgeNotFound)
	}

	comp := dec.Components[ci]
	r := &region{
		nodes: comp.Nodes,
		aps:   make(map[uint64]struct{}),
	}
	for id := range comp.Nodes {
		if dec.IsArticulation(id) {
			r.aps[id] = struct{}{}
		}
	}

	return r, nil
}

// distancesWithin runs a breadth-first search from src confined to the
// region's node set, returning hop distances. Nodes cut off inside the
// region are absent from the result.
func distancesWithin(g gview.Graph, src uint64, r *region) (map[uint64]int, error) {
	dist := map[uint64]int{src: 0}
	queue := []uint64{src}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("icentral: Neighbors(%d): %w", cur, err)
		}
		for _, nbr := range nbrs {
			if !r.contains(nbr) {
				continue
			}
			if _, seen := dist[nbr]; !seen {
				queue = append(queue, nbr)
				dist[nbr] = dist[cur] + 1
			}
		}
	}

	return dist, nil
}

// peripheralOrders measures, for every articulation point of the region,
// how many nodes hang off it through edges strictly outside the region.
// It must run against the prior graph so both accumulation passes of an
// update share one consistent peripheral measure.
func peripheralOrders(prior gview.Graph, r *region) (map[uint64]int, error) {
	orders := make(map[uint64]int, len(r.aps))
	for ap := range r.aps {
		visited := map[uint64]struct{}{ap: {}}
		queue := []uint64{ap}
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			nbrs, err := prior.Neighbors(cur)
			if err != nil {
				return nil, fmt.Errorf("icentral: Neighbors(%d): %w", cur, err)
			}
			for _, nbr := range nbrs {
				if r.contains(nbr) {
					continue // never step back into the affected component
				}
				if _, seen := visited[nbr]; !seen {
					visited[nbr] = struct{}{}
					queue = append(queue, nbr)
				}
			}
		}
		orders[ap] = len(visited) - 1 // the articulation point itself is not peripheral
	}

	return orders, nil
}
