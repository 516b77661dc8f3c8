// Package graphio reads and writes the external forms of hamwalk graphs and
// results.
//
// Formats:
//
//   - HCP: the TSPLIB Hamiltonian cycle problem text format. Header lines
//     "KEY : value" (NAME, TYPE, COMMENT, DIMENSION, EDGE_DATA_FORMAT), then
//     EDGE_DATA_SECTION with one 1-indexed "u v" pair per line, ended by -1
//     or EOF. ReadHCP converts ids to 0-indexed; WriteHCP inverts it.
//   - Document: YAML (or JSON) {graphs: [{name, num_nodes, edges}]} holding
//     any number of solver.Instance values.
//   - Report: per-graph, per-heuristic results rendered as YAML or JSON.
//
// Parse failures wrap ErrMalformedHCP or ErrMalformedDocument, so callers
// branch with errors.Is.
package graphio
