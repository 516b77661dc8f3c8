// Package core provides the undirected, integer-indexed Graph used by every
// Hamiltonian heuristic in hamwalk.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are the dense indices 0..n-1 fixed at construction (Order()).
//   - Edges are unordered pairs; adding an existing edge is a no-op and
//     self-loops are dropped, so parallel edges never exist.
//   - Neighbor lists keep insertion order, which makes every heuristic that
//     iterates them deterministic for a fixed edge list.
//   - HasEdge is O(1) through an edge set keyed by the normalized pair (min,max).
//   - RemoveVertex marks a vertex dead and drops its incident edges; indices
//     of the remaining vertices never shift.
//   - Clone produces a deep, independent copy so heuristics can explore
//     destructively without touching the caller's graph.
//
// Degree snapshots:
//
//	snap := g.DegreeSnapshot() // frozen degrees of the original graph
//
// A DegreeSnapshot is captured once before any mutation and used as the
// ranking key while a working clone shrinks.
//
// Core Methods:
//
//	NewGraph(n) (*Graph, error)              // O(n)
//	New(n, edges) (*Graph, error)            // O(n + m)
//	AddEdge(u, v) error                      // O(1) amortized
//	RemoveEdge(u, v) error                   // O(deg(u) + deg(v))
//	RemoveVertex(v) error                    // O(Σ deg(neighbors))
//	DetachVertex(v) error                    // O(Σ deg(neighbors))
//	HasEdge(u, v) bool                       // O(1)
//	Neighbors(v) ([]int, error)              // O(deg(v)), insertion order
//	Degree(v) (int, error)                   // O(1)
//	Clone() *Graph                           // O(n + m)
//	Components() [][]int                     // O(n + m), BFS
//
// Errors:
//
//	ErrInvalidOrder  - negative vertex count
//	ErrInvalidNode   - vertex index outside [0, Order())
//	ErrEdgeNotFound  - RemoveEdge on a missing edge
//
// Concurrency: a single sync.RWMutex guards adjacency. Concurrent readers are
// safe; heuristics never mutate the caller's graph, they mutate clones.
package core
