package bicomp_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/centrality/bicomp"
	"github.com/katalvlaran/centrality/gview"
)

// build freezes an undirected snapshot from an edge list.
func build(t *testing.T, edges [][2]uint64) *gview.Snapshot {
	t.Helper()
	b := gview.NewBuilder()
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return b.Snapshot()
}

// nodeSets extracts every component's node set, sorted for comparison.
func nodeSets(d *bicomp.Decomposition) [][]uint64 {
	sets := make([][]uint64, 0, len(d.Components))
	for _, c := range d.Components {
		ids := make([]uint64, 0, len(c.Nodes))
		for id := range c.Nodes {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		sets = append(sets, ids)
	}
	sort.Slice(sets, func(i, j int) bool {
		a, b := sets[i], sets[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})

	return sets
}

// articulation extracts the sorted articulation-point IDs.
func articulation(d *bicomp.Decomposition) []uint64 {
	ids := make([]uint64, 0, len(d.Articulation))
	for id := range d.Articulation {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// TestDecompose_Errors verifies input validation.
func TestDecompose_Errors(t *testing.T) {
	if _, err := bicomp.Decompose(nil); !errors.Is(err, bicomp.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	b := gview.NewBuilder(gview.WithDirected())
	if err := b.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := bicomp.Decompose(b.Snapshot()); !errors.Is(err, bicomp.ErrDirectedGraph) {
		t.Errorf("directed graph: want ErrDirectedGraph, got %v", err)
	}
}

// TestDecompose_Triangle covers the minimal biconnected graph.
func TestDecompose_Triangle(t *testing.T) {
	d, err := bicomp.Decompose(build(t, [][2]uint64{{0, 1}, {1, 2}, {0, 2}}))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Components) != 1 {
		t.Fatalf("components = %d; want 1", len(d.Components))
	}
	if len(d.Components[0].Edges) != 3 {
		t.Errorf("edges in component = %d; want 3", len(d.Components[0].Edges))
	}
	if len(d.Articulation) != 0 {
		t.Errorf("articulation points = %v; want none", articulation(d))
	}
}

// TestDecompose_Path checks that every edge of a path is its own bridge
// component and every inner node is an articulation point.
func TestDecompose_Path(t *testing.T) {
	d, err := bicomp.Decompose(build(t, [][2]uint64{{0, 1}, {1, 2}, {2, 3}}))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint64{{0, 1}, {1, 2}, {2, 3}}
	if got := nodeSets(d); !reflect.DeepEqual(got, want) {
		t.Errorf("component node sets = %v; want %v", got, want)
	}
	if got := articulation(d); !reflect.DeepEqual(got, []uint64{1, 2}) {
		t.Errorf("articulation = %v; want [1 2]", got)
	}
}

// TestDecompose_TrianglesOverBridge covers the mixed case: two cycles
// joined through a bridge, both bridge endpoints articulating.
func TestDecompose_TrianglesOverBridge(t *testing.T) {
	d, err := bicomp.Decompose(build(t, [][2]uint64{
		{0, 1}, {0, 2}, {1, 2},
		{2, 3},
		{3, 4}, {3, 5}, {4, 5},
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint64{{0, 1, 2}, {2, 3}, {3, 4, 5}}
	if got := nodeSets(d); !reflect.DeepEqual(got, want) {
		t.Errorf("component node sets = %v; want %v", got, want)
	}
	if got := articulation(d); !reflect.DeepEqual(got, []uint64{2, 3}) {
		t.Errorf("articulation = %v; want [2 3]", got)
	}

	// The two triangle edges share a component; the bridge stands alone.
	if d.ComponentOf(0, 1) != d.ComponentOf(1, 2) {
		t.Error("triangle edges landed in different components")
	}
	if d.ComponentOf(2, 3) == d.ComponentOf(0, 1) {
		t.Error("bridge shares a component with a triangle edge")
	}
	if d.ComponentOf(3, 2) != d.ComponentOf(2, 3) {
		t.Error("ComponentOf must ignore query orientation")
	}
	if d.ComponentOf(0, 3) != -1 {
		t.Errorf("ComponentOf(0,3) = %d for an absent edge; want -1", d.ComponentOf(0, 3))
	}
}

// TestDecompose_CycleWithPendant checks a cycle plus one dangling edge.
func TestDecompose_CycleWithPendant(t *testing.T) {
	d, err := bicomp.Decompose(build(t, [][2]uint64{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{2, 6},
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint64{{0, 1, 2, 3}, {2, 6}}
	if got := nodeSets(d); !reflect.DeepEqual(got, want) {
		t.Errorf("component node sets = %v; want %v", got, want)
	}
	if got := articulation(d); !reflect.DeepEqual(got, []uint64{2}) {
		t.Errorf("articulation = %v; want [2]", got)
	}
	if d.IsArticulation(6) || !d.IsArticulation(2) {
		t.Error("IsArticulation disagrees with the articulation set")
	}
}

// TestDecompose_DisconnectedAndIsolated checks that the walk spans every
// connected component and that isolated nodes join no component.
func TestDecompose_DisconnectedAndIsolated(t *testing.T) {
	b := gview.NewBuilder()
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {0, 2}, {10, 11}} {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	b.AddNode(99)

	d, err := bicomp.Decompose(b.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	want := [][]uint64{{0, 1, 2}, {10, 11}}
	if got := nodeSets(d); !reflect.DeepEqual(got, want) {
		t.Errorf("component node sets = %v; want %v", got, want)
	}
	for _, c := range d.Components {
		if _, ok := c.Nodes[99]; ok {
			t.Error("isolated node appeared in a component")
		}
	}
}
