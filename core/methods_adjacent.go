// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbor order is edge insertion order; removals keep relative order.
// Concurrency:
//   - Read lock only; returned slices are copies.

package core

import "fmt"

// Neighbors returns the live neighbors of v in insertion order.
// A removed vertex has no neighbors. The result is a fresh slice.
//
// Errors:
//   - ErrInvalidNode: v outside [0, Order()).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrInvalidNode)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// AdjacencyList returns a deep copy of every neighbor list, indexed by
// vertex. Read-only walkers take it once instead of querying per step.
//
// Complexity: O(n + m).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append([]int(nil), nbrs...)
	}

	return out
}
