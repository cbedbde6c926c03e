// Package centrality is an in-memory engine for computing and incrementally
// maintaining betweenness-centrality scores over mutable, unweighted graphs.
//
// 🚀 What is centrality?
//
//	A modern, dependency-light library that brings together:
//		• Graph views: immutable snapshots with stable uint64 node IDs
//		• Offline solver: exact Brandes' algorithm, optionally parallel
//		• Decomposition: biconnected components & articulation points
//		• Online engine: iCentral incremental score maintenance after
//		  single-edge and single-node graph mutations
//
// ✨ Why choose centrality?
//
//   - Localized updates – an edge change touches only its biconnected
//     component, not the whole graph
//   - Exact results – incremental scores match a from-scratch recompute
//     up to floating-point accumulation order
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	gview/    — immutable graph snapshots & the read-only Graph contract
//	brandes/  — offline betweenness centrality (Brandes' algorithm)
//	bicomp/   — biconnected components & articulation points
//	icentral/ — the incremental maintenance engine (Set/Get/EdgeUpdate/
//	            NodeEdgeUpdate/NodeUpdate)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle: every node carries the same betweenness score by symmetry.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and error taxonomies.
//
//	go get github.com/katalvlaran/centrality
package centrality
