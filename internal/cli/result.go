package cli

import (
	"github.com/katalvlaran/hamwalk/core"
	"github.com/katalvlaran/hamwalk/graphio"
	"github.com/katalvlaran/hamwalk/solver"
)

// solverGraph pairs an instance with its built graph, reused to classify
// every heuristic's path.
type solverGraph struct {
	in solver.Instance
	g  *core.Graph
}

func (sg *solverGraph) result(heuristic string, p []int, validate bool) graphio.Result {
	if p == nil {
		p = []int{}
	}
	res := graphio.Result{
		Graph:     sg.in.Name,
		NumNodes:  sg.in.NumNodes,
		Heuristic: heuristic,
		Path:      p,
		Summary:   solver.Summarize(sg.g, p),
	}
	if validate {
		if err := solver.ValidatePath(sg.g, p); err != nil {
			res.Invalid = err.Error()
		}
	}

	return res
}
