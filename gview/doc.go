// Package gview provides immutable graph snapshots and the narrow, read-only
// Graph contract consumed by the centrality algorithms.
//
// What
//
//   - Graph: the view interface — node enumeration, neighbor lookup,
//     edge membership, and a bidirectional mapping between stable external
//     uint64 node IDs and compact internal indices.
//   - Snapshot: the concrete immutable implementation, frozen from a Builder.
//   - Derivation helpers (WithEdge, WithoutEdge, WithNode, WithoutNode) that
//     produce a fresh Snapshot one mutation away from the receiver, leaving
//     the receiver untouched. Prior/current snapshot pairs for the
//     incremental engine are built this way.
//
// Why
//
//	Algorithm packages must never depend on any particular storage engine's
//	native graph types. They see only this contract; hosts adapt their own
//	representation to it, or freeze a Snapshot.
//
// Determinism
//
//	Nodes() and Neighbors() return IDs in ascending order, so traversal
//	order — and therefore floating-point accumulation order in
//	single-threaded runs — is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Snapshot construction: O(V log V + E log E)
//   - HasNode / Index / NodeID: O(1)
//   - HasEdge: O(log deg)
//   - Neighbors: O(1) (shared read-only slice)
//   - Derivations: O(V + E) (full copy, no mutation of the source)
//
// Errors
//
//   - ErrNodeNotFound    referenced node is absent from the view.
//   - ErrNodeExists      node creation collides with an existing ID.
//   - ErrEdgeNotFound    referenced edge is absent from the view.
//   - ErrEdgeExists      edge creation collides with an existing edge.
//   - ErrSelfLoop        self-loops are not representable.
package gview
