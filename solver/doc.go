// Package solver is the uniform front end of the Hamiltonian heuristics.
//
// Every heuristic (ldf, posa, ant) satisfies the one-method-plus-name
// Solver interface, so callers swap them freely:
//
//	s, _ := solver.New("posa")
//	paths, err := solver.SolveGraphs(ctx, s, instances, solver.WithWorkers(4))
//
// Instance mirrors the external {num_nodes, edges} shape. SolveGraphs builds
// and solves a batch concurrently with results in input order. ValidatePath
// and Summarize let callers check and classify what a heuristic returned;
// a short path is an ordinary outcome, never an error.
package solver
