package gview_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/centrality/gview"
)

// square returns an undirected 4-cycle 0–1–2–3–0.
func square(t *testing.T) *gview.Snapshot {
	t.Helper()
	b := gview.NewBuilder()
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return b.Snapshot()
}

// TestBuilder_Errors verifies edge validation during construction.
func TestBuilder_Errors(t *testing.T) {
	b := gview.NewBuilder()
	if err := b.AddEdge(7, 7); !errors.Is(err, gview.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := b.AddEdge(1, 2); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	if err := b.AddEdge(1, 2); !errors.Is(err, gview.ErrEdgeExists) {
		t.Errorf("duplicate: want ErrEdgeExists, got %v", err)
	}
	// Undirected duplicate in reverse orientation.
	if err := b.AddEdge(2, 1); !errors.Is(err, gview.ErrEdgeExists) {
		t.Errorf("reversed duplicate: want ErrEdgeExists, got %v", err)
	}
}

// TestSnapshot_Accessors covers node/edge queries and the compact index.
func TestSnapshot_Accessors(t *testing.T) {
	s := square(t)
	if got := s.NodeCount(); got != 4 {
		t.Fatalf("NodeCount = %d; want 4", got)
	}
	if want := []uint64{0, 1, 2, 3}; !reflect.DeepEqual(s.Nodes(), want) {
		t.Errorf("Nodes = %v; want %v", s.Nodes(), want)
	}
	if !s.HasEdge(1, 2) || !s.HasEdge(2, 1) {
		t.Error("undirected HasEdge must hold in both orientations")
	}
	if s.HasEdge(0, 2) {
		t.Error("HasEdge(0,2) = true for an absent chord")
	}
	if s.HasNode(9) {
		t.Error("HasNode(9) = true for an absent node")
	}

	nbrs, err := s.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors(0): %v", err)
	}
	if want := []uint64{1, 3}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(0) = %v; want %v", nbrs, want)
	}
	if _, err = s.Neighbors(42); !errors.Is(err, gview.ErrNodeNotFound) {
		t.Errorf("Neighbors(42): want ErrNodeNotFound, got %v", err)
	}

	// Compact index round-trips through NodeID.
	for _, id := range s.Nodes() {
		idx, ok := s.Index(id)
		if !ok {
			t.Fatalf("Index(%d) missing", id)
		}
		back, ok := s.NodeID(idx)
		if !ok || back != id {
			t.Errorf("NodeID(Index(%d)) = %d, %v", id, back, ok)
		}
	}
	if _, ok := s.NodeID(99); ok {
		t.Error("NodeID(99) = ok for an out-of-range index")
	}
}

// TestSnapshot_CanonicalEdges checks the (From < To, sorted) edge listing.
func TestSnapshot_CanonicalEdges(t *testing.T) {
	s := square(t)
	want := []gview.Edge{{From: 0, To: 1}, {From: 0, To: 3}, {From: 1, To: 2}, {From: 2, To: 3}}
	if !reflect.DeepEqual(s.Edges(), want) {
		t.Errorf("Edges = %v; want %v", s.Edges(), want)
	}
}

// TestSnapshot_Directed verifies that arcs stay one-way.
func TestSnapshot_Directed(t *testing.T) {
	b := gview.NewBuilder(gview.WithDirected())
	if err := b.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	s := b.Snapshot()
	if !s.Directed() {
		t.Fatal("Directed() = false")
	}
	if !s.HasEdge(0, 1) || s.HasEdge(1, 0) {
		t.Errorf("arc 0→1: HasEdge(0,1)=%v HasEdge(1,0)=%v", s.HasEdge(0, 1), s.HasEdge(1, 0))
	}
}

// TestSnapshot_FrozenFromBuilder ensures later builder mutations do not leak.
func TestSnapshot_FrozenFromBuilder(t *testing.T) {
	b := gview.NewBuilder()
	if err := b.AddEdge(0, 1); err != nil {
		t.Fatal(err)
	}
	s := b.Snapshot()
	if err := b.AddEdge(1, 2); err != nil {
		t.Fatal(err)
	}
	if s.HasNode(2) || s.HasEdge(1, 2) {
		t.Error("snapshot observed a mutation made after freezing")
	}
}

// TestDerive_Edges covers WithEdge/WithoutEdge and their error paths.
func TestDerive_Edges(t *testing.T) {
	s := square(t)

	chord, err := s.WithEdge(0, 2)
	if err != nil {
		t.Fatalf("WithEdge(0,2): %v", err)
	}
	if !chord.HasEdge(0, 2) {
		t.Error("derived snapshot lacks the added chord")
	}
	if s.HasEdge(0, 2) {
		t.Error("WithEdge mutated the receiver")
	}

	cut, err := s.WithoutEdge(2, 3)
	if err != nil {
		t.Fatalf("WithoutEdge(2,3): %v", err)
	}
	if cut.HasEdge(2, 3) || cut.HasEdge(3, 2) {
		t.Error("derived snapshot still has the removed edge")
	}
	if !s.HasEdge(2, 3) {
		t.Error("WithoutEdge mutated the receiver")
	}
	// Removing never drops endpoints.
	if cut.NodeCount() != 4 {
		t.Errorf("NodeCount after edge removal = %d; want 4", cut.NodeCount())
	}

	if _, err = s.WithEdge(5, 5); !errors.Is(err, gview.ErrSelfLoop) {
		t.Errorf("WithEdge self-loop: want ErrSelfLoop, got %v", err)
	}
	if _, err = s.WithEdge(0, 9); !errors.Is(err, gview.ErrNodeNotFound) {
		t.Errorf("WithEdge missing endpoint: want ErrNodeNotFound, got %v", err)
	}
	if _, err = s.WithEdge(0, 1); !errors.Is(err, gview.ErrEdgeExists) {
		t.Errorf("WithEdge duplicate: want ErrEdgeExists, got %v", err)
	}
	if _, err = s.WithoutEdge(0, 2); !errors.Is(err, gview.ErrEdgeNotFound) {
		t.Errorf("WithoutEdge absent: want ErrEdgeNotFound, got %v", err)
	}
}

// TestDerive_Nodes covers WithNode/WithoutNode and incident-edge cleanup.
func TestDerive_Nodes(t *testing.T) {
	s := square(t)

	grown, err := s.WithNode(9)
	if err != nil {
		t.Fatalf("WithNode(9): %v", err)
	}
	if !grown.HasNode(9) || grown.NodeCount() != 5 {
		t.Errorf("WithNode: HasNode(9)=%v count=%d", grown.HasNode(9), grown.NodeCount())
	}
	nbrs, err := grown.Neighbors(9)
	if err != nil {
		t.Fatal(err)
	}
	if len(nbrs) != 0 {
		t.Errorf("new node has neighbors %v; want none", nbrs)
	}

	shrunk, err := s.WithoutNode(1)
	if err != nil {
		t.Fatalf("WithoutNode(1): %v", err)
	}
	if shrunk.HasNode(1) || shrunk.NodeCount() != 3 {
		t.Errorf("WithoutNode: HasNode(1)=%v count=%d", shrunk.HasNode(1), shrunk.NodeCount())
	}
	if shrunk.HasEdge(0, 1) || shrunk.HasEdge(2, 1) {
		t.Error("removal left an edge incident to the dropped node")
	}
	if !shrunk.HasEdge(2, 3) || !shrunk.HasEdge(3, 0) {
		t.Error("removal dropped an unrelated edge")
	}

	if _, err = s.WithNode(0); !errors.Is(err, gview.ErrNodeExists) {
		t.Errorf("WithNode existing: want ErrNodeExists, got %v", err)
	}
	if _, err = s.WithoutNode(42); !errors.Is(err, gview.ErrNodeNotFound) {
		t.Errorf("WithoutNode absent: want ErrNodeNotFound, got %v", err)
	}
}
