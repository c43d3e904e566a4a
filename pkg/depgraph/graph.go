// Package depgraph holds the directed graph of internal dependency
// references and the cycle detector that runs over it.
//
// Edge sources are resolved repo-relative file paths while edge targets are
// the raw, unresolved reference strings found in the source (e.g. "../utils").
// A cycle is therefore only detectable when some file's identifier equals,
// by exact string match, a target string emitted elsewhere. That coupling is
// a documented characteristic of the analysis, not an accident to repair:
// resolving targets to canonical file identifiers before insertion would
// change which cycles are reported.
package depgraph

import "slices"

// Graph is a directed adjacency structure over string identifiers.
// Nodes come into existence implicitly as edge endpoints; there is no
// explicit registration. The graph is append-only for the duration of one
// analysis run and is not safe for concurrent use.
//
// Target lists are deduplicated per source (set semantics) but retain first
// insertion order, so traversal is deterministic for a given input stream.
type Graph struct {
	adjacency map[string][]string
	members   map[string]map[string]struct{}
	sources   []string // edge sources in first-seen order
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		members:   make(map[string]map[string]struct{}),
	}
}

// AddEdge records a directed edge from→to. Adding an existing edge is a
// no-op; self-edges are allowed and will surface as length-2 cycles.
func (g *Graph) AddEdge(from, to string) {
	set, ok := g.members[from]
	if !ok {
		set = make(map[string]struct{})
		g.members[from] = set
		g.sources = append(g.sources, from)
	}
	if _, dup := set[to]; dup {
		return
	}
	set[to] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.members[from][to]
	return ok
}

// Targets returns the targets of the given source in insertion order.
// The returned slice is a read-only view; callers must not modify it.
func (g *Graph) Targets(from string) []string {
	return g.adjacency[from]
}

// Sources returns all edge sources in first-seen order.
func (g *Graph) Sources() []string {
	return slices.Clone(g.sources)
}

// OutDegree returns the number of distinct targets of the given source
// (its fan-out). Returns 0 for unknown identifiers.
func (g *Graph) OutDegree(from string) int {
	return len(g.adjacency[from])
}

// EdgeCount returns the total number of distinct edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, targets := range g.adjacency {
		n += len(targets)
	}
	return n
}

// NodeCount returns the number of distinct identifiers appearing as either
// an edge source or an edge target.
func (g *Graph) NodeCount() int {
	seen := make(map[string]struct{}, len(g.sources))
	for _, src := range g.sources {
		seen[src] = struct{}{}
		for _, tgt := range g.adjacency[src] {
			seen[tgt] = struct{}{}
		}
	}
	return len(seen)
}

// Adjacency returns a copy of the adjacency structure, suitable for
// serialization. Mutating the result does not affect the graph.
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adjacency))
	for src, targets := range g.adjacency {
		out[src] = slices.Clone(targets)
	}
	return out
}
