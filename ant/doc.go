// Package ant implements a deterministic pheromone-style walk for
// Hamiltonian paths and cycles.
//
// The walk keeps two scalars per vertex: mu, a running estimate of the steps
// remaining from that vertex along the trail actually taken, and tau, the
// step at which the vertex was last left. From the current vertex it always
// moves to the neighbor with the smallest (mu, tau) pair, so unexplored and
// least recently visited vertices are preferred. The candidate path is the
// trailing window of the last Order() vertices visited.
//
// The walk is capped at MaxSteps(n) = ⌈5·ln(n)·n²⌉ iterations and uses no
// randomness: the same graph, start vertex and neighbor order always yield
// the same Result.
//
// Only consecutive adjacency and the window bound are guaranteed; the
// window may repeat vertices when the walk did not find a Hamiltonian path.
package ant
