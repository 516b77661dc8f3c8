// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns live indices ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import "fmt"

// HasVertex reports whether v is a live vertex. Out-of-range indices and
// removed vertices yield false.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.validIndex(v) && g.alive[v]
}

// Vertices returns the live vertex indices in ascending order.
//
// Complexity: O(n).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.live)
	for v, ok := range g.alive {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// Degree returns the live degree of v. A removed vertex has degree 0.
//
// Errors:
//   - ErrInvalidNode: v outside [0, Order()).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.validIndex(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrInvalidNode)
	}

	return len(g.adj[v]), nil
}

// MaxDegree returns the largest live degree, or 0 for a graph without edges.
//
// Complexity: O(n).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}

	return best
}

// DegreeSnapshot captures the current degree of every vertex index.
// The snapshot is independent of later mutations of g.
//
// Complexity: O(n).
func (g *Graph) DegreeSnapshot() DegreeSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := make(DegreeSnapshot, len(g.adj))
	for v, nbrs := range g.adj {
		snap[v] = len(nbrs)
	}

	return snap
}

// RemoveVertex marks v as removed and deletes every incident edge.
// Removing an already removed vertex is a no-op. Indices never shift.
//
// Errors:
//   - ErrInvalidNode: v outside [0, Order()).
//
// Complexity: O(Σ deg(u)) over the neighbors u of v.
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validIndex(v) {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrInvalidNode)
	}
	if !g.alive[v] {
		return nil
	}
	g.detachLocked(v)
	g.alive[v] = false
	g.live--

	return nil
}

// DetachVertex deletes every edge incident to v while keeping v live.
//
// Errors:
//   - ErrInvalidNode: v outside [0, Order()).
//
// Complexity: O(Σ deg(u)) over the neighbors u of v.
func (g *Graph) DetachVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.validIndex(v) {
		return fmt.Errorf("DetachVertex(%d): %w", v, ErrInvalidNode)
	}
	g.detachLocked(v)

	return nil
}

// detachLocked drops all edges of v. Caller holds the write lock.
func (g *Graph) detachLocked(v int) {
	for _, u := range g.adj[v] {
		delete(g.edges, keyOf(u, v))
		g.adj[u] = dropNeighbor(g.adj[u], v)
	}
	g.adj[v] = g.adj[v][:0]
}
