// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors and constructors.
// Determinism:
//   - Neighbor lists preserve edge insertion order.
// Concurrency:
//   - mu guards adj, alive and edges.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidOrder indicates a negative vertex count.
	ErrInvalidOrder = errors.New("core: invalid vertex count")

	// ErrInvalidNode indicates a vertex index outside [0, Order()).
	ErrInvalidNode = errors.New("core: invalid node index")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// edgeKey is the normalized (min,max) form of an undirected edge.
type edgeKey struct{ lo, hi int }

func keyOf(u, v int) edgeKey {
	if u > v {
		u, v = v, u
	}

	return edgeKey{lo: u, hi: v}
}

// Graph is an undirected simple graph over the vertex indices 0..n-1.
//
// adj[v] lists the live neighbors of v in insertion order; alive[v] is false
// once v has been removed. edges holds one entry per undirected edge.
type Graph struct {
	mu sync.RWMutex

	adj   [][]int
	alive []bool
	edges map[edgeKey]struct{}
	live  int
}

// DegreeSnapshot maps every vertex index to its degree at capture time.
type DegreeSnapshot []int

// NewGraph returns an edgeless graph with n live vertices.
//
// Errors:
//   - ErrInvalidOrder: n < 0.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidOrder)
	}
	g := &Graph{
		adj:   make([][]int, n),
		alive: make([]bool, n),
		edges: make(map[edgeKey]struct{}),
		live:  n,
	}
	for v := range g.alive {
		g.alive[v] = true
	}

	return g, nil
}

// New builds a graph with n vertices and the given edge list. Duplicate
// pairs (in either orientation) collapse into one edge and self-loops are
// skipped, so an edge list that already contains both arcs (u,v) and (v,u)
// is accepted as is.
//
// Errors:
//   - ErrInvalidOrder: n < 0.
//   - ErrInvalidNode: an endpoint lies outside [0, n), wrapped with the
//     offending edge position.
//
// Complexity: O(n + m).
func New(n int, edges [][2]int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("New: edge #%d (%d,%d): %w", i, e[0], e[1], err)
		}
	}

	return g, nil
}

// Order returns the number of vertex indices, removed vertices included.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validIndex reports whether v addresses a vertex slot. Caller holds mu.
func (g *Graph) validIndex(v int) bool {
	return v >= 0 && v < len(g.adj)
}
