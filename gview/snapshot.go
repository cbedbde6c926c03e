package gview

import "sort"

// Snapshot is the immutable Graph implementation frozen from a Builder.
// All accessors are safe for concurrent readers; none mutate the receiver.
type Snapshot struct {
	directed bool
	ids      []uint64       // external IDs, ascending; position = compact index
	index    map[uint64]int // external ID → compact index
	adj      [][]uint64     // compact index → sorted external neighbor IDs
	edges    []Edge         // canonical edge list, sorted by (From, To)
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (s *Snapshot) NodeCount() int { return len(s.ids) }

// Nodes returns every external node ID in ascending order.
// The slice is shared and must not be modified. Complexity: O(1).
func (s *Snapshot) Nodes() []uint64 { return s.ids }

// HasNode reports whether id is present. Complexity: O(1).
func (s *Snapshot) HasNode(id uint64) bool {
	_, ok := s.index[id]

	return ok
}

// HasEdge reports whether an edge connects u and v; for undirected snapshots
// the query orientation is irrelevant. Complexity: O(log deg(u)).
func (s *Snapshot) HasEdge(u, v uint64) bool {
	i, ok := s.index[u]
	if !ok {
		return false
	}
	nbrs := s.adj[i]
	j := sort.Search(len(nbrs), func(k int) bool { return nbrs[k] >= v })

	return j < len(nbrs) && nbrs[j] == v
}

// Neighbors returns the external IDs adjacent to id, ascending.
// The slice is shared and must not be modified. Complexity: O(1).
func (s *Snapshot) Neighbors(id uint64) ([]uint64, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return s.adj[i], nil
}

// Edges returns the canonical edge list, sorted by (From, To).
// The slice is shared and must not be modified. Complexity: O(1).
func (s *Snapshot) Edges() []Edge { return s.edges }

// Index maps an external ID to its compact index. Complexity: O(1).
func (s *Snapshot) Index(id uint64) (int, bool) {
	i, ok := s.index[id]

	return i, ok
}

// NodeID maps a compact index back to its external ID. Complexity: O(1).
func (s *Snapshot) NodeID(idx int) (uint64, bool) {
	if idx < 0 || idx >= len(s.ids) {
		return 0, false
	}

	return s.ids[idx], true
}

// Directed reports whether edges are one-way. Complexity: O(1).
func (s *Snapshot) Directed() bool { return s.directed }

// builder reconstructs a Builder holding a copy of the snapshot's topology.
// Derivation helpers start from this copy, so the receiver never changes.
func (s *Snapshot) builder() *Builder {
	b := NewBuilder()
	b.directed = s.directed
	for _, id := range s.ids {
		b.AddNode(id)
	}
	for _, e := range s.edges {
		b.link(e.From, e.To)
		if !s.directed {
			b.link(e.To, e.From)
		}
	}

	return b
}
