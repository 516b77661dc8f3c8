// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// impl_grid.go — Grid(rows, cols) and CompleteBipartite(a, b).

package builder

import "fmt"

const (
	methodGrid              = "Grid"
	methodCompleteBipartite = "CompleteBipartite"
	minGridDim              = 1
	minPartitionSize        = 1
)

// Grid builds a rows×cols 4-neighborhood lattice. Vertex (r,c) has index
// r*cols + c. For each cell the right edge is emitted before the down edge.
// A grid has a Hamiltonian cycle iff rows*cols is even and both sides ≥ 2.
func Grid(rows, cols int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if rows < minGridDim || cols < minGridDim {
			return Topology{}, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, [2]int{v, v + 1})
				}
				if r+1 < rows {
					edges = append(edges, [2]int{v, v + cols})
				}
			}
		}

		return Topology{N: rows * cols, Edges: edges}, nil
	}
}

// CompleteBipartite builds K_{a,b}: left side 0..a-1, right side a..a+b-1.
func CompleteBipartite(a, b int) Constructor {
	return func(_ builderConfig) (Topology, error) {
		if a < minPartitionSize || b < minPartitionSize {
			return Topology{}, fmt.Errorf("%s: a=%d b=%d < min=%d: %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, a*b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				edges = append(edges, [2]int{i, a + j})
			}
		}

		return Topology{N: a + b, Edges: edges}, nil
	}
}
