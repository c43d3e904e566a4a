package depgraph

import "slices"

// Cycle is a closed loop of node identifiers: the first and last entries are
// identical and every consecutive pair is a recorded edge. A cycle always has
// at least two entries including the repeated closing node.
type Cycle []string

// Equal reports whether two cycles are exact ordered matches.
func (c Cycle) Equal(other Cycle) bool {
	return slices.Equal(c, other)
}

// frame is one level of the iterative depth-first search. path holds the
// full active chain from the root to this node, mirroring the per-call path
// copy of a recursive formulation.
type frame struct {
	node string
	path []string
	next int
}

// FindCycles runs a depth-first search from every not-yet-visited source
// node and returns the cycles found, in discovery order.
//
// The search keeps a global visited set and an on-stack set (the recursion
// stack). Hitting a neighbor that is visited and currently on the stack
// closes a cycle: the active path from the neighbor's first occurrence
// through the current node, with the neighbor appended again as the closing
// element.
//
// Deduplication is by exact ordered-sequence equality only. The same loop
// discovered from a different starting node, or traversed in the opposite
// direction, is reported as a separate entry. That weak matching is part of
// the reporting contract; callers wanting canonical cycles must rotate or
// sort the entries themselves.
//
// The search uses an explicit frame stack rather than recursion, so
// pathologically deep graphs cannot exhaust the call stack. Each node is
// visited at most once globally, which guarantees termination. The run is
// one-shot and synchronous; there is no cancellation.
func FindCycles(g *Graph) []Cycle {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var cycles []Cycle

	for _, root := range g.Sources() {
		if visited[root] {
			continue
		}

		visited[root] = true
		onStack[root] = true
		stack := []frame{{node: root, path: []string{root}}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			targets := g.Targets(f.node)

			if f.next >= len(targets) {
				onStack[f.node] = false
				stack = stack[:len(stack)-1]
				continue
			}

			next := targets[f.next]
			f.next++

			switch {
			case !visited[next]:
				visited[next] = true
				onStack[next] = true
				path := append(slices.Clone(f.path), next)
				stack = append(stack, frame{node: next, path: path})
			case onStack[next]:
				if c, ok := closeCycle(f.path, next); ok && !containsCycle(cycles, c) {
					cycles = append(cycles, c)
				}
			}
		}
	}

	return cycles
}

// closeCycle slices the active path from the first occurrence of node and
// appends node again as the closing element.
func closeCycle(path []string, node string) (Cycle, bool) {
	i := slices.Index(path, node)
	if i < 0 {
		// on-stack nodes are always on the active path; this guards the
		// invariant rather than an expected state
		return nil, false
	}
	return Cycle(append(slices.Clone(path[i:]), node)), true
}

func containsCycle(cycles []Cycle, c Cycle) bool {
	for _, existing := range cycles {
		if existing.Equal(c) {
			return true
		}
	}
	return false
}
