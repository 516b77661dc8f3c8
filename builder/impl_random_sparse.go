// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n,p) sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j > i, one draw per pair.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples G(n, p): every unordered pair becomes an edge
// independently with probability p.
//
// Complexity: O(n^2) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (Topology, error) {
		if err := checkMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return Topology{}, err
		}
		if p < probMin || p > probMax {
			return Topology{}, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return Topology{}, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
					edges = append(edges, [2]int{i, j})
				case cfg.rng.Float64() < p:
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return Topology{N: n, Edges: edges}, nil
	}
}
