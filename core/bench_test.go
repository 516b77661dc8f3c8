// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/hamwalk/core"
)

// denseEdges returns the edge list of K_n.
func denseEdges(n int) [][2]int {
	out := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// BenchmarkNew_K200 measures construction of a 200-vertex clique.
func BenchmarkNew_K200(b *testing.B) {
	edges := denseEdges(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.New(200, edges)
	}
}

// BenchmarkClone_K200 measures the deep copy the heuristics rely on.
func BenchmarkClone_K200(b *testing.B) {
	g, _ := core.New(200, denseEdges(200))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkRemoveVertex_K200 measures draining a clique vertex by vertex.
func BenchmarkRemoveVertex_K200(b *testing.B) {
	g, _ := core.New(200, denseEdges(200))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := g.Clone()
		for v := 0; v < 200; v++ {
			_ = c.RemoveVertex(v)
		}
	}
}
