// File: rotation.go
// Role: Rotation operator and extendable-count measure.
//
// Determinism:
//   - Options are emitted as p, reverse(p), then rotations by ascending pivot.

package posa

import (
	"slices"

	"github.com/katalvlaran/hamwalk/core"
)

// RotationalOptions returns every path reachable from p by one rotation:
// p itself, its reversal, and for each pivot i in [0, len(p)-3] with an edge
// (p[i], p[last]) the path p[0..i] ++ reverse(p[i+1..last]).
//
// Every option is a fresh slice over the same vertex set as p. An empty p
// yields no options.
//
// Complexity: O(len(p)²) in the worst case (one copy per chord).
func RotationalOptions(g *core.Graph, p []int) [][]int {
	if len(p) == 0 {
		return nil
	}
	last := len(p) - 1
	end := p[last]

	out := make([][]int, 0, 2)
	out = append(out, slices.Clone(p), reversed(p))
	for i := 0; i+2 < len(p); i++ {
		if !g.HasEdge(p[i], end) {
			continue
		}
		opt := make([]int, 0, len(p))
		opt = append(opt, p[:i+1]...)
		for j := last; j > i; j-- {
			opt = append(opt, p[j])
		}
		out = append(out, opt)
	}

	return out
}

// ExtendableCount returns the number of neighbors of p's last vertex that
// are not on p. An empty path or an invalid end vertex counts 0.
//
// Complexity: O(len(p) + deg(end)).
func ExtendableCount(g *core.Graph, p []int) int {
	if len(p) == 0 {
		return 0
	}
	nbrs, err := g.Neighbors(p[len(p)-1])
	if err != nil {
		return 0
	}
	onPath := make(map[int]struct{}, len(p))
	for _, v := range p {
		onPath[v] = struct{}{}
	}
	count := 0
	for _, x := range nbrs {
		if _, ok := onPath[x]; !ok {
			count++
		}
	}

	return count
}

// reversed returns a reversed copy of p.
func reversed(p []int) []int {
	out := slices.Clone(p)
	slices.Reverse(out)

	return out
}
