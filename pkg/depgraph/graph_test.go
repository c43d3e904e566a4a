package depgraph

import (
	"slices"
	"testing"
)

func TestAddEdge_ImplicitNodes(t *testing.T) {
	g := New()
	g.AddEdge("src/app.js", "./util")
	g.AddEdge("src/app.js", "./models")
	g.AddEdge("src/util.js", "./models")

	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount() = %d, want 3", got)
	}
	if !g.HasEdge("src/app.js", "./util") {
		t.Error("HasEdge(src/app.js, ./util) = false, want true")
	}
	if g.HasEdge("./util", "src/app.js") {
		t.Error("HasEdge should be directional")
	}
}

func TestAddEdge_Dedup(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d after duplicate inserts, want 1", got)
	}
	if got := g.OutDegree("a"); got != 1 {
		t.Errorf("OutDegree(a) = %d, want 1", got)
	}
}

func TestTargets_InsertionOrder(t *testing.T) {
	g := New()
	g.AddEdge("a", "c")
	g.AddEdge("a", "b")
	g.AddEdge("a", "d")
	g.AddEdge("a", "b") // duplicate must not reorder

	want := []string{"c", "b", "d"}
	if got := g.Targets("a"); !slices.Equal(got, want) {
		t.Errorf("Targets(a) = %v, want %v", got, want)
	}
}

func TestSources_FirstSeenOrder(t *testing.T) {
	g := New()
	g.AddEdge("b", "x")
	g.AddEdge("a", "x")
	g.AddEdge("b", "y")

	want := []string{"b", "a"}
	if got := g.Sources(); !slices.Equal(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
}

func TestOutDegree_UnknownNode(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")

	if got := g.OutDegree("b"); got != 0 {
		t.Errorf("OutDegree(b) = %d, want 0 for target-only node", got)
	}
	if got := g.OutDegree("zzz"); got != 0 {
		t.Errorf("OutDegree(zzz) = %d, want 0 for unknown node", got)
	}
}

func TestAdjacency_Copy(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")

	adj := g.Adjacency()
	adj["a"][0] = "mutated"
	adj["new"] = []string{"x"}

	if got := g.Targets("a")[0]; got != "b" {
		t.Errorf("graph mutated through Adjacency() copy: Targets(a)[0] = %q", got)
	}
	if g.OutDegree("new") != 0 {
		t.Error("graph gained a node through Adjacency() copy")
	}
}
