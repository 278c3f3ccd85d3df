package region

import "testing"

func TestGraph_Symmetry(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	if !contains(g.Neighbors(1), 2) {
		t.Error("expected 1 -> 2")
	}
	if !contains(g.Neighbors(2), 1) {
		t.Error("expected 2 -> 1 (symmetry)")
	}
	if !contains(g.Neighbors(3), 4) || !contains(g.Neighbors(4), 3) {
		t.Error("expected symmetric edge between 3 and 4")
	}
}

func TestGraph_DuplicateEdgesAreIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	if len(g.Neighbors(1)) != 1 {
		t.Errorf("expected 1 neighbor after duplicate edges, got %d: %v", len(g.Neighbors(1)), g.Neighbors(1))
	}
	if len(g.Neighbors(2)) != 1 {
		t.Errorf("expected 1 neighbor after duplicate edges, got %d: %v", len(g.Neighbors(2)), g.Neighbors(2))
	}
}

func TestGraph_NodeOrderIsFirstSeen(t *testing.T) {
	g := NewGraph()
	g.AddEdge(5, 1)
	g.AddEdge(2, 9)

	order := g.Nodes()
	want := []FingerprintID{5, 1, 2, 9}
	if len(order) != len(want) {
		t.Fatalf("node order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("node order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func contains(ids []FingerprintID, target FingerprintID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
