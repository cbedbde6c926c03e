// Package gview declares the Graph contract, the Edge value type,
// and the sentinel errors shared by Builder and Snapshot.
package gview

import "errors"

// Sentinel errors for graph-view construction and derivation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("gview: node not found")

	// ErrNodeExists indicates a node creation collided with an existing ID.
	ErrNodeExists = errors.New("gview: node already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("gview: edge not found")

	// ErrEdgeExists indicates an edge creation collided with an existing edge.
	ErrEdgeExists = errors.New("gview: edge already exists")

	// ErrSelfLoop indicates an attempt to connect a node to itself.
	ErrSelfLoop = errors.New("gview: self-loops not supported")
)

// Edge is an unweighted connection between two nodes, identified by their
// external IDs. In undirected views the canonical form has From < To.
type Edge struct {
	// From is the external ID of the source endpoint.
	From uint64

	// To is the external ID of the destination endpoint.
	To uint64
}

// Graph is the read-only view contract consumed by the algorithm packages.
//
// External IDs are stable uint64 keys owned by the host; compact indices are
// dense ints in [0, NodeCount()) suitable for array-backed algorithm state.
// Implementations must be safe for concurrent readers.
type Graph interface {
	// NodeCount reports the number of nodes in the view.
	NodeCount() int

	// Nodes returns every external node ID in ascending order.
	// The returned slice is shared and must not be modified.
	Nodes() []uint64

	// HasNode reports whether id is present in the view.
	HasNode(id uint64) bool

	// HasEdge reports whether an edge connects u and v.
	// In undirected views the orientation of the query is irrelevant.
	HasEdge(u, v uint64) bool

	// Neighbors returns the external IDs adjacent to id, ascending.
	// For directed views these are out-neighbors only.
	// The returned slice is shared and must not be modified.
	// Returns ErrNodeNotFound when id is absent.
	Neighbors(id uint64) ([]uint64, error)

	// Edges returns every edge in canonical form, sorted by (From, To).
	// The returned slice is shared and must not be modified.
	Edges() []Edge

	// Index maps an external ID to its compact index.
	Index(id uint64) (int, bool)

	// NodeID maps a compact index back to its external ID.
	NodeID(idx int) (uint64, bool)

	// Directed reports whether edges are one-way.
	Directed() bool
}
