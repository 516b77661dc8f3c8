package ant

import "github.com/katalvlaran/hamwalk/core"

// Solver adapts Walk to the solver contract.
type Solver struct {
	opts []Option
}

// NewSolver returns a pheromone-walk Solver starting at vertex 0 unless
// WithStart is given.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// Name returns "ant".
func (s *Solver) Name() string { return Name }

// Solve returns Walk(g).Path.
func (s *Solver) Solve(g *core.Graph) ([]int, error) {
	res, err := Walk(g, s.opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}
