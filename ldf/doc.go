// Package ldf implements the least-degree-first walk, a greedy heuristic for
// Hamiltonian paths and cycles on undirected graphs.
//
// What:
//
//   - Walk: from a start vertex, repeatedly step to the live neighbor with
//     the smallest frozen degree, deleting every visited vertex from a
//     private working clone so it can never be revisited.
//   - Dead-end avoidance: a one-step lookahead that prefers neighbors whose
//     own live neighbors all keep degree > 1, so the walk does not strand a
//     vertex it can only finish on.
//   - BestFromMaxDegreeStarts: runs Walk from every maximum-degree vertex,
//     keeps the longest path and closes it into a cycle when it spans the
//     graph and its endpoints are adjacent.
//
// Ranking always uses a core.DegreeSnapshot taken on the original graph, not
// the live degree of the shrinking clone, so tie-breaking stays stable for
// the whole run. Ties between equal snapshot degrees fall back to neighbor
// insertion order.
//
// Complexity:
//
//   - Walk:                    O(n·Δ log Δ + m) plus one O(n + m) clone
//   - BestFromMaxDegreeStarts: O(s · Walk), s = number of maximum-degree vertices
//
// Errors:
//
//	ErrGraphNil          - nil *core.Graph
//	ErrSnapshotMismatch  - snapshot length differs from g.Order()
//	core.ErrInvalidNode  - start vertex outside [0, Order())
//
// Failing to find a Hamiltonian path is not an error: the result is simply
// shorter than g.Order().
package ldf
