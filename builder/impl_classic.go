// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// impl_classic.go — Complete, Cycle, Path, Star, Wheel and Isolated.
//
// Determinism:
//   • Edges are emitted in ascending order of their first endpoint, then
//     second endpoint, except Cycle/Wheel which emit the ring i -> i+1 first.

package builder

import "fmt"

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodIsolated = "Isolated"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4
	minIsolatedNodes = 1
)

// checkMin validates n ≥ floor and wraps ErrTooFewVertices with method context.
func checkMin(method string, n, floor int) error {
	if n < floor {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, floor, ErrTooFewVertices)
	}

	return nil
}

// Complete builds K_n: every unordered pair i<j.
// Complexity: O(n^2) edges.
func Complete(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return Topology{}, err
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}

		return Topology{N: n, Edges: edges}, nil
	}
}

// Cycle builds C_n with edges i -> (i+1)%n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return Topology{}, err
		}

		return Topology{N: n, Edges: ring(n)}, nil
	}
}

// Path builds P_n with edges i -> i+1.
func Path(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return Topology{}, err
		}
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}

		return Topology{N: n, Edges: edges}, nil
	}
}

// Star builds K_{1,n-1} with center 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return Topology{}, err
		}
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}

		return Topology{N: n, Edges: edges}, nil
	}
}

// Wheel builds W_n: a rim cycle over 0..n-2 and hub n-1 joined to every rim
// vertex. Rim edges are emitted first, then spokes.
func Wheel(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodWheel, n, minWheelNodes); err != nil {
			return Topology{}, err
		}
		hub := n - 1
		edges := ring(hub)
		for i := 0; i < hub; i++ {
			edges = append(edges, [2]int{i, hub})
		}

		return Topology{N: n, Edges: edges}, nil
	}
}

// Isolated emits n vertices without edges.
func Isolated(n int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if err := checkMin(methodIsolated, n, minIsolatedNodes); err != nil {
			return Topology{}, err
		}

		return Topology{N: n}, nil
	}
}

// ring returns the cycle edges i -> (i+1)%n for n ≥ 3.
func ring(n int) [][2]int {
	edges := make([][2]int, 0, n+n/2)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return edges
}
