// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves neighbor order exactly.
// Concurrency:
//   - Read lock on the source; the clone shares no storage with it.

package core

import "maps"

// Clone returns a deep copy of the graph: vertex liveness, neighbor lists
// (same order) and the edge set.
//
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adj:   make([][]int, len(g.adj)),
		alive: make([]bool, len(g.alive)),
		edges: maps.Clone(g.edges),
		live:  g.live,
	}
	copy(clone.alive, g.alive)
	for v, nbrs := range g.adj {
		clone.adj[v] = append(make([]int, 0, len(nbrs)), nbrs...)
	}
	if clone.edges == nil {
		clone.edges = make(map[edgeKey]struct{})
	}

	return clone
}
