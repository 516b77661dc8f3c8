// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order, lays topologies out as a disjoint union, builds the core.Graph.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hamwalk/core"
)

// Topology is a constructor's output: N vertices and edges over 0..N-1.
type Topology struct {
	N     int
	Edges [][2]int
}

// Constructor emits a topology using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) (Topology, error)

// BuildGraph resolves bopts, runs every constructor in order and returns the
// disjoint union of their topologies as a core.Graph. Constructor k's vertex
// i becomes vertex offset_k + i, where offset_k is the total vertex count of
// constructors 0..k-1.
//
// Errors: constructor errors wrapped as "BuildGraph: %w"; a nil constructor
// yields ErrConstructFailed.
//
// Complexity: Σ cost of each constructor + O(n + m) graph construction.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	top, err := BuildTopology(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.New(top.N, top.Edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildTopology is BuildGraph without the final core.Graph construction.
func BuildTopology(bopts []BuilderOption, cons ...Constructor) (Topology, error) {
	cfg := newBuilderConfig(bopts...)

	var out Topology
	for i, fn := range cons {
		if fn == nil {
			return Topology{}, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		part, err := fn(cfg)
		if err != nil {
			return Topology{}, fmt.Errorf("BuildGraph: %w", err)
		}
		offset := out.N
		out.Edges = slices.Grow(out.Edges, len(part.Edges))
		for _, e := range part.Edges {
			out.Edges = append(out.Edges, [2]int{e[0] + offset, e[1] + offset})
		}
		out.N += part.N
	}

	return out, nil
}
