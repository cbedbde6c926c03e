// File: derive.go
// Role: Non-mutating snapshot derivations (fresh topology one mutation away).
// Determinism:
//   - Derived snapshots re-freeze through Builder.Snapshot, so ID ordering
//     and compact indices follow the same rules as any other Snapshot.
// Concurrency:
//   - The receiver is never mutated; the result is a fresh instance.

package gview

import "fmt"

// WithEdge returns a new Snapshot equal to s plus the edge (u, v).
// Both endpoints must already exist. The receiver is not mutated.
// Errors: ErrSelfLoop, ErrNodeNotFound, ErrEdgeExists.
// Complexity: O(V + E).
func (s *Snapshot) WithEdge(u, v uint64) (*Snapshot, error) {
	if u == v {
		return nil, ErrSelfLoop
	}
	if !s.HasNode(u) {
		return nil, fmt.Errorf("%w: endpoint %d", ErrNodeNotFound, u)
	}
	if !s.HasNode(v) {
		return nil, fmt.Errorf("%w: endpoint %d", ErrNodeNotFound, v)
	}
	if s.HasEdge(u, v) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrEdgeExists, u, v)
	}

	b := s.builder()
	if err := b.AddEdge(u, v); err != nil {
		return nil, err
	}

	return b.Snapshot(), nil
}

// WithoutEdge returns a new Snapshot equal to s minus the edge (u, v).
// The receiver is not mutated.
// Errors: ErrEdgeNotFound.
// Complexity: O(V + E).
func (s *Snapshot) WithoutEdge(u, v uint64) (*Snapshot, error) {
	if !s.HasEdge(u, v) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, u, v)
	}

	b := s.builder()
	delete(b.adj[u], v)
	if !s.directed {
		delete(b.adj[v], u)
	}

	return b.Snapshot(), nil
}

// WithNode returns a new Snapshot equal to s plus an isolated node.
// The receiver is not mutated.
// Errors: ErrNodeExists.
// Complexity: O(V + E).
func (s *Snapshot) WithNode(id uint64) (*Snapshot, error) {
	if s.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeExists, id)
	}

	b := s.builder()
	b.AddNode(id)

	return b.Snapshot(), nil
}

// WithoutNode returns a new Snapshot equal to s minus the node and every
// edge incident to it. The receiver is not mutated.
// Errors: ErrNodeNotFound.
// Complexity: O(V + E).
func (s *Snapshot) WithoutNode(id uint64) (*Snapshot, error) {
	if !s.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	b := s.builder()
	for nbr := range b.adj[id] {
		delete(b.adj[nbr], id)
	}
	delete(b.adj, id)
	delete(b.nodes, id)
	// Directed views may still hold arcs pointing at the removed node.
	if s.directed {
		for from := range b.adj {
			delete(b.adj[from], id)
		}
	}

	return b.Snapshot(), nil
}
