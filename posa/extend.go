// File: extend.go
// Role: Rotation/extension loop and final cycle closure.
//
// Determinism:
//   - Orientation ties keep the current direction; option ties keep the
//     first option in RotationalOptions order.
//
// Concurrency:
//   - g is only read; every reduced graph is a private clone.

package posa

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hamwalk/core"
	"github.com/katalvlaran/hamwalk/ldf"
)

// Extend grows initial with rotations and least-degree-first extensions
// until it spans every live vertex of g or no rotation can be extended.
//
// Paths of length <= 2 and already closed cycles are returned as copies.
// Once the path is Hamiltonian, Extend closes it when its endpoints are
// adjacent; otherwise it orients the lower-degree endpoint first and returns
// the first rotation whose endpoints are adjacent, closed. Failing all that
// the open Hamiltonian path is returned.
//
// Errors: ErrGraphNil, ErrSnapshotMismatch, core.ErrInvalidNode (a vertex of
// initial outside [0, Order())).
//
// Complexity: O(n) rounds, each O(len(p)² + Walk).
func Extend(g *core.Graph, initial []int, snap core.DegreeSnapshot) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(snap) != g.Order() {
		return nil, fmt.Errorf("Extend: len(snap)=%d, order=%d: %w", len(snap), g.Order(), ErrSnapshotMismatch)
	}
	for _, v := range initial {
		if v < 0 || v >= g.Order() {
			return nil, fmt.Errorf("Extend: path vertex %d: %w", v, core.ErrInvalidNode)
		}
	}

	path := slices.Clone(initial)
	if len(path) <= 2 || isClosed(path) {
		return path, nil
	}

	n := g.VertexCount()
	for len(path) < n {
		if snap[path[0]] < snap[path[len(path)-1]] {
			path = reversed(path)
		}
		options := RotationalOptions(g, path)
		if len(options) == 0 {
			return path, nil
		}

		var (
			pick      []int
			pickCount int
		)
		for _, opt := range options {
			c := ExtendableCount(g, opt)
			if c == 0 {
				continue
			}
			if pick == nil || c < pickCount {
				pick, pickCount = opt, c
			}
		}
		if pick == nil {
			return path, nil
		}

		last := len(pick) - 1
		reduced := g.Clone()
		for _, v := range pick[:last] {
			if err := reduced.DetachVertex(v); err != nil {
				return nil, fmt.Errorf("Extend: %w", err)
			}
		}
		ext, err := ldf.Walk(reduced, pick[last], snap, ldf.WithDeadEndAvoidance(true))
		if err != nil {
			return nil, fmt.Errorf("Extend: %w", err)
		}
		path = append(pick[:last:last], ext...)
	}

	return closeCycle(g, path, snap), nil
}

// closeCycle turns a Hamiltonian path into a cycle when one rotation away.
func closeCycle(g *core.Graph, path []int, snap core.DegreeSnapshot) []int {
	if g.HasEdge(path[0], path[len(path)-1]) {
		return append(path, path[0])
	}
	if snap[path[0]] > snap[path[len(path)-1]] {
		path = reversed(path)
	}
	for _, opt := range RotationalOptions(g, path) {
		if g.HasEdge(opt[0], opt[len(opt)-1]) {
			return append(opt, opt[0])
		}
	}

	return path
}

// isClosed reports whether p already ends where it started.
func isClosed(p []int) bool {
	return len(p) >= 3 && p[0] == p[len(p)-1]
}
