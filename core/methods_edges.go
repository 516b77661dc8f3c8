// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges.
// Determinism:
//   - Edges() returns pairs (u<v) sorted ascending by (u, v).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge {u,v}.
//
// Behavior highlights:
//   - Idempotent: an existing edge (in either orientation) is left untouched.
//   - Self-loops are ignored; they carry no meaning for Hamiltonian walks.
//   - Adding an edge to a removed vertex is ignored as well, so a removed
//     vertex can never be reconnected.
//
// Errors:
//   - ErrInvalidNode: u or v outside [0, Order()).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validIndex(u) || !g.validIndex(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrInvalidNode)
	}
	if u == v || !g.alive[u] || !g.alive[v] {
		return nil
	}
	k := keyOf(u, v)
	if _, ok := g.edges[k]; ok {
		return nil
	}
	g.edges[k] = struct{}{}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// RemoveEdge deletes the undirected edge {u,v}, keeping the relative order
// of the remaining neighbors of both endpoints.
//
// Errors:
//   - ErrInvalidNode: u or v outside [0, Order()).
//   - ErrEdgeNotFound: the edge does not exist.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validIndex(u) || !g.validIndex(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrInvalidNode)
	}
	k := keyOf(u, v)
	if _, ok := g.edges[k]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	g.unlinkLocked(u, v)

	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(u) || !g.validIndex(v) {
		return false
	}
	_, ok := g.edges[keyOf(u, v)]

	return ok
}

// Edges returns every edge once as a (u,v) pair with u < v, sorted
// ascending. The result is freshly allocated.
//
// Complexity: O(m log m).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	out := make([][2]int, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, [2]int{k.lo, k.hi})
	}
	g.mu.RUnlock()

	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	return out
}

// unlinkLocked removes {u,v} from the edge set and both neighbor lists.
// Caller holds the write lock and has checked that the edge exists.
func (g *Graph) unlinkLocked(u, v int) {
	delete(g.edges, keyOf(u, v))
	g.adj[u] = dropNeighbor(g.adj[u], v)
	g.adj[v] = dropNeighbor(g.adj[v], u)
}

// dropNeighbor deletes the first occurrence of x from list in place,
// preserving the order of the remaining entries.
func dropNeighbor(list []int, x int) []int {
	if i := slices.Index(list, x); i >= 0 {
		return slices.Delete(list, i, i+1)
	}

	return list
}
