// Package icentral implements the engine lifecycle: construction, full
// recompute (Set), guarded reads (Get), reset, and the O(1) isolated-node
// updates.
package icentral

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/centrality/brandes"
	"github.com/katalvlaran/centrality/gview"
)

// Engine owns one cached betweenness-centrality score table, keyed by
// external node ID. Construct with New; an Engine must not be copied.
//
// All operations are synchronous and serialized per instance: each runs to
// completion (or fails) before the next begins.
type Engine struct {
	mu          sync.Mutex
	scores      map[uint64]float64
	initialized bool
}

// New returns an empty, uninitialized Engine.
// Complexity: O(1).
func New() *Engine {
	return &Engine{scores: make(map[uint64]float64)}
}

// Initialized reports whether the engine holds a computed score table.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.initialized
}

// Reset discards the cached score table, returning the engine to its
// freshly constructed state.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scores = make(map[uint64]float64)
	e.initialized = false
}

// Set recomputes every score from scratch with Brandes' algorithm and
// replaces the cached table. The graph view must be undirected.
func (e *Engine) Set(g gview.Graph, opts ...Option) (map[uint64]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateView(g); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err = e.recompute(g, o); err != nil {
		return nil, err
	}

	return e.result(g.NodeCount(), o), nil
}

// Get returns the cached scores if and only if their key set equals g's
// node set; otherwise it fails with ErrStaleScores. An uninitialized engine
// computes the table first, as Set would.
func (e *Engine) Get(g gview.Graph, opts ...Option) (map[uint64]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateView(g); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		if err = e.recompute(g, o); err != nil {
			return nil, err
		}

		return e.result(g.NodeCount(), o), nil
	}
	if e.stale(g) {
		return nil, ErrStaleScores
	}

	return e.result(g.NodeCount(), o), nil
}

// NodeUpdate inserts a zero-valued entry for a created isolated node or
// removes the entry of a deleted one. No traversal: an isolated node lies
// on no shortest path. Accepts CreateNode and DeleteNode only.
// Complexity: O(1) (plus O(V) for a normalized copy).
func (e *Engine) NodeUpdate(op Op, node uint64, opts ...Option) (map[uint64]float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	switch op {
	case CreateNode:
		if _, exists := e.scores[node]; exists {
			return nil, fmt.Errorf("%w: %s: node %d already scored", ErrBadOperation, op, node)
		}
		e.scores[node] = 0
	case DeleteNode:
		if _, exists := e.scores[node]; !exists {
			return nil, fmt.Errorf("%w: %s: node %d: %w", ErrBadOperation, op, node, gview.ErrNodeNotFound)
		}
		delete(e.scores, node)
	default:
		return nil, fmt.Errorf("%w: %s passed to NodeUpdate", ErrBadOperation, op)
	}

	return e.result(len(e.scores), o), nil
}

// recompute replaces the cached table with a fresh Brandes run over g.
// Caller holds e.mu.
func (e *Engine) recompute(g gview.Graph, o Options) error {
	raw, err := brandes.Centrality(g, brandes.WithWorkers(o.Workers))
	if err != nil {
		return fmt.Errorf("icentral: full recompute: %w", err)
	}
	e.scores = raw
	e.initialized = true

	return nil
}

// stale reports whether the cached key set diverges from g's node set.
// Caller holds e.mu.
func (e *Engine) stale(g gview.Graph) bool {
	if len(e.scores) != g.NodeCount() {
		return true
	}
	for _, id := range g.Nodes() {
		if _, ok := e.scores[id]; !ok {
			return true
		}
	}

	return false
}

// result returns the live table, or a normalized copy when requested.
// order is the node count the normalization constant is derived from.
// Caller holds e.mu.
func (e *Engine) result(order int, o Options) map[uint64]float64 {
	if !o.Normalized {
		return e.scores
	}
	c := brandes.Normalization(order, false)
	out := make(map[uint64]float64, len(e.scores))
	for id, score := range e.scores {
		out[id] = score * c
	}

	return out
}

// validateView rejects nil and directed graph views.
func validateView(g gview.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}
