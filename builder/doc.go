// Package builder generates deterministic fixture graphs for the hamwalk
// heuristics: classic families with known Hamiltonicity plus a seeded
// Erdős–Rényi sampler.
//
// The package offers the following key components:
//
//   - Constructor: a function producing a local topology (vertex count and
//     edge list over 0..n-1).
//   - BuildGraph: runs constructors in order and lays their topologies out as
//     a disjoint union (each constructor's indices are offset by the vertices
//     emitted before it), then builds a core.Graph.
//   - BuilderOption: functional options (WithSeed, WithRand) resolved into an
//     immutable builderConfig.
//
// Families:
//
//	Complete(n)             K_n, Hamiltonian for n ≥ 3
//	Cycle(n)                C_n
//	Path(n)                 P_n, Hamiltonian path but no cycle
//	Star(n)                 K_{1,n-1}, no Hamiltonian path for n ≥ 4
//	Wheel(n)                C_{n-1} plus hub n-1
//	Grid(rows, cols)        4-neighborhood lattice, row-major indices
//	CompleteBipartite(a, b) K_{a,b}, Hamiltonian iff a == b ≥ 2
//	Petersen()              3-regular, Hamiltonian path but no cycle
//	Isolated(n)             n vertices, no edges
//	RandomSparse(n, p)      G(n, p), needs WithSeed or WithRand for 0<p<1
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed produce identical graphs.
//   - Runtime validation returns sentinel errors; only option constructors panic.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Isolated(1))
//	// 6 vertices: a 5-cycle on 0..4 and an isolated vertex 5.
package builder
