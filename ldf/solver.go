package ldf

import "github.com/katalvlaran/hamwalk/core"

// Name is the registry name of the least-degree-first heuristic.
const Name = "ldf"

// Solver adapts BestFromMaxDegreeStarts to the solver contract. It holds no
// per-graph state and is safe for concurrent use.
type Solver struct {
	opts []Option
}

// NewSolver returns a Solver; dead-end avoidance is on unless disabled.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// Name returns "ldf".
func (s *Solver) Name() string { return Name }

// Solve returns the best least-degree-first path (or cycle) of g.
func (s *Solver) Solve(g *core.Graph) ([]int, error) {
	return BestFromMaxDegreeStarts(g, s.opts...)
}
