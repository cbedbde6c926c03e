package gview

import "sort"

// Builder accumulates nodes and edges, then freezes them into a Snapshot.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	directed bool
	nodes    map[uint64]struct{}
	adj      map[uint64]map[uint64]struct{} // out-adjacency (mirrored when undirected)
}

// BuilderOption configures a Builder before use.
type BuilderOption func(*Builder)

// WithDirected makes every edge one-way (From→To). The default is undirected.
func WithDirected() BuilderOption {
	return func(b *Builder) { b.directed = true }
}

// NewBuilder returns an empty Builder. By default the resulting Snapshot is
// undirected, unweighted, simple (no self-loops, no parallel edges).
// Complexity: O(1).
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		nodes: make(map[uint64]struct{}),
		adj:   make(map[uint64]map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddNode registers id. Adding an existing node is a no-op.
// Complexity: O(1).
func (b *Builder) AddNode(id uint64) {
	b.nodes[id] = struct{}{}
}

// AddEdge connects u and v, registering missing endpoints on the fly.
// Returns ErrSelfLoop when u == v and ErrEdgeExists on duplicates.
// Complexity: O(1).
func (b *Builder) AddEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	if b.hasEdge(u, v) {
		return ErrEdgeExists
	}
	b.AddNode(u)
	b.AddNode(v)
	b.link(u, v)
	if !b.directed {
		b.link(v, u)
	}

	return nil
}

// hasEdge reports whether u→v is already registered.
func (b *Builder) hasEdge(u, v uint64) bool {
	_, ok := b.adj[u][v]

	return ok
}

// link records the directed arc u→v.
func (b *Builder) link(u, v uint64) {
	if b.adj[u] == nil {
		b.adj[u] = make(map[uint64]struct{})
	}
	b.adj[u][v] = struct{}{}
}

// Snapshot freezes the accumulated topology into an immutable view.
// The Builder remains usable afterwards; later additions do not leak into
// snapshots already taken.
// Complexity: O(V log V + E log E).
func (b *Builder) Snapshot() *Snapshot {
	// 1) Sort external IDs to fix the compact-index mapping.
	ids := make([]uint64, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[uint64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// 2) Copy adjacency into sorted per-node slices.
	adj := make([][]uint64, len(ids))
	for i, id := range ids {
		nbrs := make([]uint64, 0, len(b.adj[id]))
		for nbr := range b.adj[id] {
			nbrs = append(nbrs, nbr)
		}
		sort.Slice(nbrs, func(x, y int) bool { return nbrs[x] < nbrs[y] })
		adj[i] = nbrs
	}

	// 3) Collect canonical edges (From < To when undirected).
	var edges []Edge
	for i, id := range ids {
		for _, nbr := range adj[i] {
			if !b.directed && nbr < id {
				continue // mirrored arc; canonical copy emitted from the lower ID
			}
			edges = append(edges, Edge{From: id, To: nbr})
		}
	}
	sort.Slice(edges, func(x, y int) bool {
		if edges[x].From != edges[y].From {
			return edges[x].From < edges[y].From
		}

		return edges[x].To < edges[y].To
	})

	return &Snapshot{
		directed: b.directed,
		ids:      ids,
		index:    index,
		adj:      adj,
		edges:    edges,
	}
}
