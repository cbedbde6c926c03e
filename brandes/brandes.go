// Package brandes implements the offline betweenness-centrality solver:
// one BFS per source node, then reverse-order dependency accumulation.
package brandes

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/centrality/gview"
)

// unreached marks a node not yet discovered by the per-source BFS.
const unreached = -1

// Centrality computes the betweenness-centrality score of every node in g.
// Returns ErrGraphNil for a nil view and ErrBadWorkers for invalid options;
// neighbor-lookup failures are wrapped and propagated.
func Centrality(g gview.Graph, opts ...Option) (map[uint64]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1) Flatten the view into compact-index adjacency once; every
	//    per-source pass then runs on dense slices.
	adj, err := compactAdjacency(g)
	if err != nil {
		return nil, err
	}
	n := g.NodeCount()

	// 2) Accumulate per-source dependencies into one shared score vector.
	scores := make([]float64, n)
	if o.Workers == 1 {
		for src := 0; src < n; src++ {
			accumulateSource(adj, src, g.Directed(), scores)
		}
	} else if err = parallelAccumulate(adj, g.Directed(), o.Workers, scores); err != nil {
		return nil, err
	}

	// 3) Optional pair-count normalization.
	if o.Normalized {
		c := Normalization(n, g.Directed())
		for i := range scores {
			scores[i] *= c
		}
	}

	// 4) Re-key by external node ID.
	out := make(map[uint64]float64, n)
	for i, id := range g.Nodes() {
		out[id] = scores[i]
	}

	return out, nil
}

// compactAdjacency flattens g into compact-index neighbor lists.
func compactAdjacency(g gview.Graph) ([][]int, error) {
	ids := g.Nodes()
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("brandes: Neighbors(%d): %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, ok := g.Index(nbr)
			if !ok {
				return nil, fmt.Errorf("brandes: neighbor %d of %d: %w", nbr, id, gview.ErrNodeNotFound)
			}
			row = append(row, j)
		}
		adj[i] = row
	}

	return adj, nil
}

// parallelAccumulate fans the per-source passes out over a bounded pool.
// Each worker folds dependencies into a private vector; the vectors are
// summed once the pool drains, so the result is independent of completion
// order up to floating-point associativity.
func parallelAccumulate(adj [][]int, directed bool, workers int, scores []float64) error {
	n := len(adj)
	var mu sync.Mutex

	var grp errgroup.Group
	grp.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			partial := make([]float64, n)
			for src := w; src < n; src += workers {
				accumulateSource(adj, src, directed, partial)
			}
			mu.Lock()
			for i, d := range partial {
				scores[i] += d
			}
			mu.Unlock()

			return nil
		})
	}

	return grp.Wait()
}

// accumulateSource runs one Brandes pass from src, adding the resulting
// dependency of every non-source node into scores.
func accumulateSource(adj [][]int, src int, directed bool, scores []float64) {
	n := len(adj)

	// BFS state: distance, shortest-path counts, predecessor lists,
	// and the visit order (processed farthest-first afterwards).
	dist := make([]int, n)
	for i := range dist {
		dist[i] = unreached
	}
	sigma := make([]float64, n)
	preds := make([][]int, n)
	order := make([]int, 0, n)

	dist[src] = 0
	sigma[src] = 1
	queue := make([]int, 0, n)
	queue = append(queue, src)
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		order = append(order, cur)
		for _, nbr := range adj[cur] {
			// first discovery fixes the distance
			if dist[nbr] == unreached {
				dist[nbr] = dist[cur] + 1
				queue = append(queue, nbr)
			}
			// every tight edge extends the shortest-path count
			if dist[nbr] == dist[cur]+1 {
				sigma[nbr] += sigma[cur]
				preds[nbr] = append(preds[nbr], cur)
			}
		}
	}

	// Dependency accumulation in reverse visit order.
	delta := make([]float64, n)
	for oi := len(order) - 1; oi >= 0; oi-- {
		w := order[oi]
		for _, p := range preds[w] {
			delta[p] += sigma[p] / sigma[w] * (1 + delta[w])
		}
		if w == src {
			continue
		}
		if directed {
			scores[w] += delta[w]
		} else {
			// each unordered pair is reached from both endpoints
			scores[w] += delta[w] / 2
		}
	}
}
