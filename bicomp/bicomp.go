// Package bicomp implements the Hopcroft–Tarjan biconnected-component
// decomposition over a gview.Graph.
package bicomp

import (
	"fmt"

	"github.com/katalvlaran/centrality/gview"
)

// undiscovered marks a node not yet reached by the DFS.
const undiscovered = 0

// edgeRef is a tree or back edge held on the decomposer's edge stack,
// in compact indices.
type edgeRef struct{ u, v int }

// decomposer encapsulates mutable DFS state.
type decomposer struct {
	ids    []uint64
	adj    [][]int
	disc   []int // discovery time; undiscovered == not visited
	low    []int // lowest discovery time reachable from the subtree
	parent []int // DFS tree parent; -1 for roots
	isAP   []bool
	timer  int
	stack  []edgeRef
	out    *Decomposition
}

// Decompose partitions g's edges into biconnected components and collects
// the articulation points. The input is never mutated.
// Returns ErrGraphNil or ErrDirectedGraph on invalid input; neighbor-lookup
// failures are wrapped and propagated.
func Decompose(g gview.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	// 1) Flatten adjacency to compact indices.
	ids := g.Nodes()
	n := len(ids)
	adj := make([][]int, n)
	for i, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("bicomp: Neighbors(%d): %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nbr := range nbrs {
			j, ok := g.Index(nbr)
			if !ok {
				return nil, fmt.Errorf("bicomp: neighbor %d of %d: %w", nbr, id, gview.ErrNodeNotFound)
			}
			row = append(row, j)
		}
		adj[i] = row
	}

	d := &decomposer{
		ids:    ids,
		adj:    adj,
		disc:   make([]int, n),
		low:    make([]int, n),
		parent: make([]int, n),
		isAP:   make([]bool, n),
		out: &Decomposition{
			Articulation: make(map[uint64]struct{}),
			edgeComp:     make(map[gview.Edge]int),
		},
	}
	for i := range d.parent {
		d.parent[i] = -1
	}

	// 2) Cover every connected component; each root's subtree drains the
	//    edge stack before the next root starts.
	for i := 0; i < n; i++ {
		if d.disc[i] == undiscovered {
			d.visit(i)
		}
	}

	// 3) Publish the articulation set keyed by external ID.
	for i, ap := range d.isAP {
		if ap {
			d.out.Articulation[ids[i]] = struct{}{}
		}
	}

	return d.out, nil
}

// visit runs the recursive Hopcroft–Tarjan step from compact index u.
func (d *decomposer) visit(u int) {
	d.timer++
	d.disc[u] = d.timer
	d.low[u] = d.timer

	children := 0
	for _, v := range d.adj[u] {
		if v == d.parent[u] {
			continue // the tree edge back to the parent is not a cycle
		}
		if d.disc[v] == undiscovered {
			children++
			d.parent[v] = u
			d.stack = append(d.stack, edgeRef{u, v})
			d.visit(v)

			if d.low[v] < d.low[u] {
				d.low[u] = d.low[v]
			}
			// Articulation test: root with ≥2 children, or a non-root whose
			// child subtree cannot reach strictly above u.
			if (d.parent[u] == -1 && children >= 2) || (d.parent[u] != -1 && d.low[v] >= d.disc[u]) {
				d.isAP[u] = true
			}
			// A low-link closing at or above u seals one component.
			if d.low[v] >= d.disc[u] {
				d.closeComponent(u, v)
			}
		} else if d.disc[v] < d.disc[u] {
			// Back edge to an ancestor; stacked once, on first sight.
			d.stack = append(d.stack, edgeRef{u, v})
			if d.disc[v] < d.low[u] {
				d.low[u] = d.disc[v]
			}
		}
	}
}

// closeComponent pops stacked edges up to and including the tree edge (u, v)
// and records them as one biconnected component.
func (d *decomposer) closeComponent(u, v int) {
	comp := Component{Nodes: make(map[uint64]struct{})}
	for {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		e := d.canonical(top)
		comp.Edges = append(comp.Edges, e)
		comp.Nodes[e.From] = struct{}{}
		comp.Nodes[e.To] = struct{}{}
		d.out.edgeComp[e] = len(d.out.Components)

		if top.u == u && top.v == v {
			break
		}
	}
	d.out.Components = append(d.out.Components, comp)
}

// canonical converts a compact edge reference to the external (From < To)
// edge form shared with gview.
func (d *decomposer) canonical(e edgeRef) gview.Edge {
	from, to := d.ids[e.u], d.ids[e.v]
	if to < from {
		from, to = to, from
	}

	return gview.Edge{From: from, To: to}
}
