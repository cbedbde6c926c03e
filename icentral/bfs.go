package icentral

import (
	"fmt"

	"github.com/katalvlaran/centrality/gview"
)

// bfsResult is the outcome of one Brandes-style breadth-first search:
// shortest-path counts, predecessor sets, and the visit order reversed to
// farthest-first, ready for dependency accumulation.
type bfsResult struct {
	sigma map[uint64]float64  // node → number of shortest paths from the source
	preds map[uint64][]uint64 // node → immediate predecessors on those paths
	order []uint64            // visit order, reversed (farthest node first)
}

// brandesBFS searches from src, counting shortest paths and recording
// predecessors. With region non-nil the traversal refuses to leave the
// region's node set. With compensate set, the source keeps its own
// path count of one — required when accounting for a detached node whose
// paths continued through the source (see Engine.NodeEdgeUpdate).
func brandesBFS(g gview.Graph, src uint64, region map[uint64]struct{}, compensate bool) (*bfsResult, error) {
	res := &bfsResult{
		sigma: map[uint64]float64{src: 1},
		preds: make(map[uint64][]uint64),
		order: []uint64{src},
	}
	dist := map[uint64]int{src: 0}

	queue := []uint64{src}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		nbrs, err := g.Neighbors(cur)
		if err != nil {
			return nil, fmt.Errorf("icentral: Neighbors(%d): %w", cur, err)
		}
		for _, nbr := range nbrs {
			if region != nil {
				if _, in := region[nbr]; !in {
					continue
				}
			}
			if _, seen := dist[nbr]; !seen {
				queue = append(queue, nbr)
				res.order = append(res.order, nbr)
				dist[nbr] = dist[cur] + 1
			}
			if dist[nbr] == dist[cur]+1 {
				res.sigma[nbr] += res.sigma[cur]
				res.preds[nbr] = append(res.preds[nbr], cur)
			}
		}
	}

	// Zeroing the source's own count keeps its dependency out of the
	// accumulation; the compensated variant deliberately leaves it in.
	if !compensate {
		res.sigma[src] = 0
	}
	res.preds[src] = nil

	// farthest-first
	for i, j := 0, len(res.order)-1; i < j; i, j = i+1, j-1 {
		res.order[i], res.order[j] = res.order[j], res.order[i]
	}

	return res, nil
}
