// Package brandes computes exact betweenness centrality over a gview.Graph
// using Brandes' algorithm.
//
// What
//
//   - Centrality(g, opts...) returns, for every node, the sum over all
//     source nodes of the fraction of shortest paths between each pair that
//     pass through it (endpoints excluded).
//   - Per source: one BFS recording distance, shortest-path counts, and
//     predecessor lists, followed by reverse-order dependency accumulation.
//   - Undirected graphs halve each contribution, since every unordered pair
//     is visited from both of its endpoints.
//   - WithNormalization scales scores by 1/((N-1)(N-2)) for directed and
//     2/((N-1)(N-2)) for undirected graphs; the constant is 1 when N ≤ 2.
//   - WithWorkers(n) fans the per-source passes out over a bounded pool;
//     partial score vectors are merged after the pool drains, so results do
//     not depend on completion order.
//
// Why
//
//	Ground truth for the incremental engine in package icentral, and the
//	full-recompute path behind its Set operation.
//
// Determinism
//
//	With a single worker, accumulation follows the ascending node order of
//	gview and is bit-for-bit reproducible. With several workers, per-source
//	dependency vectors are exact; only the final merge order of partial sums
//	varies, bounding non-determinism to low-order floating-point bits.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V·E)
//   - Memory: O(V + E) per in-flight source
//
// Errors
//
//   - ErrGraphNil     if the graph view is nil.
//   - ErrBadWorkers   if WithWorkers is given a value < 1.
package brandes
