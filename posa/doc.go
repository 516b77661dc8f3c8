// Package posa implements a Pósa-style rotation and extension heuristic for
// Hamiltonian paths and cycles on undirected graphs.
//
// A rotation turns a simple path p = [p0 … pk] into another simple path over
// the same vertex set: whenever the chord (p[i], pk) exists, reversing the
// suffix p[i+1 … k] keeps every consecutive pair adjacent and moves the end
// of the path to p[i+1]. New endpoints expose new neighbors, so a greedy
// walk that got stuck can be resumed from a different place.
//
// Extend alternates the two moves until the path spans the graph or no
// rotation offers an unvisited neighbor:
//
//  1. orient the path so the endpoint with the larger snapshot degree is first;
//  2. enumerate RotationalOptions and keep those with ExtendableCount > 0;
//  3. take the first option with the smallest ExtendableCount;
//  4. detach every path vertex except the end and resume the least-degree-first
//     walk (package ldf) from the end on that reduced graph.
//
// Once the path has Order() vertices it is closed into a cycle directly, or
// through the first rotation whose endpoints are adjacent.
//
// Running out of options is not an error: the partial path is returned.
package posa
