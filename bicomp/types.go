// Package bicomp declares the Decomposition result types and sentinel errors
// for biconnected-component analysis.
package bicomp

import (
	"errors"

	"github.com/katalvlaran/centrality/gview"
)

// Sentinel errors for decomposition.
var (
	// ErrGraphNil is returned if a nil graph view is passed.
	ErrGraphNil = errors.New("bicomp: graph is nil")

	// ErrDirectedGraph is returned when Decompose is run on a directed view.
	ErrDirectedGraph = errors.New("bicomp: directed graphs not supported")
)

// Component is one biconnected component: its edge list and the set of
// nodes its edges touch. A node may belong to several components; only
// articulation points do.
type Component struct {
	// Edges holds every edge of the component in canonical (From < To) form.
	Edges []gview.Edge

	// Nodes is the set of external IDs incident to the component's edges.
	Nodes map[uint64]struct{}
}

// Decomposition is the full result of Decompose: the edge partition plus
// the global articulation-point set.
type Decomposition struct {
	// Components lists every biconnected component; isolated nodes appear
	// in none of them.
	Components []Component

	// Articulation is the set of articulation-point node IDs.
	Articulation map[uint64]struct{}

	// edgeComp maps a canonical edge to the index of its component.
	edgeComp map[gview.Edge]int
}

// IsArticulation reports whether id is an articulation point.
func (d *Decomposition) IsArticulation(id uint64) bool {
	_, ok := d.Articulation[id]

	return ok
}

// ComponentOf returns the index into Components of the component whose edge
// set contains (u, v), or -1 when no such edge exists. Orientation of the
// query is irrelevant.
func (d *Decomposition) ComponentOf(u, v uint64) int {
	if v < u {
		u, v = v, u
	}
	ci, ok := d.edgeComp[gview.Edge{From: u, To: v}]
	if !ok {
		return -1
	}

	return ci
}
