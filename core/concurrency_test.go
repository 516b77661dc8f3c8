// Package core_test verifies that concurrent readers and clone-and-mutate
// workers never disturb a shared source graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamwalk/core"
)

// TestConcurrentCloneAndMutate runs many goroutines that each clone a shared
// graph and destroy their clone, the access pattern of the heuristics.
func TestConcurrentCloneAndMutate(t *testing.T) {
	const n = 64
	edges := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g, err := core.New(n, edges)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(start int) {
			defer wg.Done()
			c := g.Clone()
			for v := 0; v < n; v++ {
				_ = c.RemoveVertex((start + v) % n)
				_ = g.HasEdge(start, v)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, n*(n-1)/2, g.EdgeCount())
	require.Equal(t, n, g.VertexCount())
}
