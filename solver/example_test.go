package solver_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hamwalk/solver"
)

// ExampleSolveGraphs runs every registered heuristic on a 4-cycle.
func ExampleSolveGraphs() {
	batch := []solver.Instance{{
		Name:     "square",
		NumNodes: 4,
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}}
	for _, name := range solver.Names() {
		s, _ := solver.New(name)
		paths, _ := solver.SolveGraphs(context.Background(), s, batch)
		fmt.Println(name, paths[0])
	}
	// Output:
	// ant [0 1 2 3 0]
	// ldf [0 1 2 3 0]
	// posa [0 1 2 3 0]
}
