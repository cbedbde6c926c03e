// Package bicomp partitions the edge set of an undirected gview.Graph into
// biconnected components and identifies its articulation points.
//
// What
//
//   - Decompose(g) runs the Hopcroft–Tarjan depth-first search with
//     discovery times and low-link values, keeping an edge stack that is
//     popped each time a low-link closes at or above the current node.
//   - A bridge surfaces naturally as a single-edge component.
//   - A node is an articulation point when it is a DFS root with at least
//     two children, or a non-root with a child whose subtree cannot reach
//     an ancestor strictly above it.
//   - Decomposition answers ComponentOf(u, v) lookups and exposes the
//     per-component edge lists, node sets, and the articulation-point set.
//
// Why
//
//	The incremental engine bounds the blast radius of an edge mutation to
//	the one biconnected component containing the mutated edge; everything
//	outside it communicates with the inside only through articulation
//	points.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E), single pass, no mutation of the input
//   - Memory: O(V + E) for DFS state and the edge stack
//
// Errors
//
//   - ErrGraphNil        if the graph view is nil.
//   - ErrDirectedGraph   if run on a directed view; the decomposition is
//     defined for undirected graphs only.
package bicomp
