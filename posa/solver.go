package posa

import (
	"github.com/katalvlaran/hamwalk/core"
	"github.com/katalvlaran/hamwalk/ldf"
)

// Solver seeds Extend with the best least-degree-first path. It is
// stateless and safe for concurrent use on distinct or unmutated graphs.
type Solver struct{}

// NewSolver returns a rotation-extension Solver.
func NewSolver() *Solver { return &Solver{} }

// Name returns "posa".
func (s *Solver) Name() string { return Name }

// Solve runs ldf.BestFromMaxDegreeStarts with dead-end avoidance and, when
// the result has more than two vertices, improves it with Extend.
func (s *Solver) Solve(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	p, err := ldf.BestFromMaxDegreeStarts(g, ldf.WithDeadEndAvoidance(true))
	if err != nil {
		return nil, err
	}
	if len(p) <= 2 {
		return p, nil
	}

	return Extend(g, p, g.DegreeSnapshot())
}
