// File: validate.go
// Role: Structural checks and classification of returned paths.

package solver

import (
	"fmt"

	"github.com/katalvlaran/hamwalk/core"
)

// ValidatePath checks that p is a simple path of g, optionally closed:
//   - len(p) <= g.Order()+1;
//   - every vertex is in [0, Order());
//   - no vertex repeats, except p[last] == p[0] when len(p) >= 3;
//   - consecutive vertices are adjacent in g.
//
// The empty path is valid.
//
// Errors: ErrGraphNil, ErrPathTooLong, core.ErrInvalidNode, ErrPathNotSimple,
// ErrPathBrokenEdge.
//
// Complexity: O(len(p)) time, O(n) space.
func ValidatePath(g *core.Graph, p []int) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Order()
	if len(p) > n+1 {
		return fmt.Errorf("ValidatePath: len=%d, order=%d: %w", len(p), n, ErrPathTooLong)
	}

	seen := make([]bool, n)
	last := len(p) - 1
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("ValidatePath: position %d: vertex %d: %w", i, v, core.ErrInvalidNode)
		}
		closing := i == last && i >= 2 && v == p[0]
		if seen[v] && !closing {
			return fmt.Errorf("ValidatePath: position %d: vertex %d repeats: %w", i, v, ErrPathNotSimple)
		}
		seen[v] = true
		if i > 0 && !g.HasEdge(p[i-1], v) {
			return fmt.Errorf("ValidatePath: %d-%d: %w", p[i-1], v, ErrPathBrokenEdge)
		}
	}

	return nil
}

// Summary classifies a heuristic result.
type Summary struct {
	// Length is len(p), including a closing repeat.
	Length int `yaml:"length" json:"length"`
	// Vertices is the number of distinct vertices on p.
	Vertices int `yaml:"vertices" json:"vertices"`
	// Cycle reports a closed path (len >= 3, last == first).
	Cycle bool `yaml:"cycle" json:"cycle"`
	// Hamiltonian reports a valid path covering every live vertex of g.
	Hamiltonian bool `yaml:"hamiltonian" json:"hamiltonian"`
}

// Summarize classifies p against g. A nil graph yields the zero Summary
// apart from Length.
func Summarize(g *core.Graph, p []int) Summary {
	s := Summary{Length: len(p)}
	distinct := make(map[int]struct{}, len(p))
	for _, v := range p {
		distinct[v] = struct{}{}
	}
	s.Vertices = len(distinct)
	s.Cycle = len(p) >= 3 && p[0] == p[len(p)-1]
	if g == nil {
		return s
	}
	s.Hamiltonian = len(p) > 0 && s.Vertices == g.VertexCount() && ValidatePath(g, p) == nil

	return s
}
