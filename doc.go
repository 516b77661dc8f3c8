// Package hamwalk is a toolbox of heuristics for Hamiltonian paths and
// cycles on undirected graphs.
//
// 🚀 What is inside?
//
//	• core/     — int-indexed undirected Graph: idempotent edges, vertex
//	              removal, deep Clone, frozen DegreeSnapshot, components
//	• builder/  — deterministic fixtures: complete, cycle, path, star, wheel,
//	              grid, bipartite, Petersen, seeded random graphs
//	• ldf/      — least-degree-first walk with dead-end avoidance
//	• posa/     — Pósa rotations + greedy extension, closes cycles by rotation
//	• ant/      — deterministic pheromone walk with a sliding window
//	• solver/   — one Solver interface, registry, concurrent SolveGraphs,
//	              path validation and summaries
//	• graphio/  — TSPLIB HCP and YAML/JSON graph documents, result reports
//	• cmd/hamwalk — CLI: solve, generate, heuristics
//
// ✨ Guarantees
//
//   - Heuristics never mutate the caller's graph; they explore private clones.
//   - Same graph + same insertion order ⇒ same path, run after run.
//   - Failing to find a Hamiltonian path is a short result, never an error.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	every heuristic returns [0 1 2 3 0] on this square.
//
//	go install github.com/katalvlaran/hamwalk/cmd/hamwalk@latest
package hamwalk
