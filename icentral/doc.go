// Package icentral maintains betweenness-centrality scores incrementally
// over a mutable, undirected, unweighted graph, using the iCentral scheme:
// after a single-edge or single-node mutation, only the biconnected
// component containing the change — and within it, only the source nodes
// whose shortest-path topology could have shifted — is reprocessed.
//
// What
//
//   - Engine: a caller-owned instance holding the cached score table,
//     keyed by external uint64 node IDs.
//   - Set(g): full recompute via Brandes' algorithm; seeds the cache.
//   - Get(g): cached scores, guarded by a consistency check against g's
//     node set; fails with ErrStaleScores on divergence.
//   - EdgeUpdate(prior, current, op, u, v): the iCentral core. Isolates the
//     affected biconnected component, computes region-restricted distances
//     from both endpoints, measures the peripheral subgraph hanging off
//     each boundary articulation point, and for every region node whose
//     distances to u and v differ, subtracts its stale dependency
//     contribution (prior graph) and adds the fresh one (current graph).
//   - NodeEdgeUpdate(current, op, node, u, v): attach/detach of a degree-1
//     node via one unrestricted Brandes pass from its surviving neighbor.
//   - NodeUpdate(op, node): O(1) insert/erase of an isolated node's entry.
//
// Result semantics
//
//	Every operation returns the full score table. Unnormalized results share
//	the engine's live table and must be treated as read-only; normalized
//	results are fresh copies.
//
// Concurrency
//
//	EdgeUpdate fans its per-source corrections out over a bounded worker
//	pool (WithWorkers). Corrections land in a compact-index accumulator via
//	atomic compare-and-swap on the float64 bit patterns, so correctness
//	never depends on completion order; low-order-bit variation across runs
//	is an accepted consequence of reordered floating-point addition.
//	Operations on one Engine are serialized internally; every call runs to
//	completion or fails synchronously, with no cancellation path.
//
// Complexity
//
//	Set is O(V·E). EdgeUpdate is O(k·E_c) with k the number of qualifying
//	sources and E_c the affected component's edge count — typically far
//	below a full recompute, with an identical result.
//
// Errors
//
//   - ErrGraphNil        nil graph view.
//   - ErrDirectedGraph   the incremental path is undirected-only.
//   - ErrStaleScores     cached key set diverged from the graph's node set;
//     recoverable by calling Set (or Reset followed by Set).
//   - ErrBadOperation    op/argument mismatch, or a prior/current pair
//     inconsistent with the declared operation.
//   - ErrBadWorkers      WithWorkers given a value < 1.
//   - gview.ErrNodeNotFound / gview.ErrEdgeNotFound (wrapped) for lookups
//     of nodes or edges absent from the supplied views.
package icentral
