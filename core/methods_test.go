// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in idempotent edge insertion and stable neighbor order.
//   - Validate ErrInvalidNode / ErrEdgeNotFound surfaces.
//   - Check that Clone is fully independent of its source.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamwalk/core"
)

// square returns the 4-cycle 0-1-2-3-0.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	return g
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		want  error
	}{
		{"negative order", -1, nil, core.ErrInvalidOrder},
		{"endpoint too large", 3, [][2]int{{0, 3}}, core.ErrInvalidNode},
		{"negative endpoint", 3, [][2]int{{-1, 2}}, core.ErrInvalidNode},
		{"second edge invalid", 2, [][2]int{{0, 1}, {1, 7}}, core.ErrInvalidNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := core.New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.MaxDegree())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Components())
}

func TestAddEdge_IdempotentAndSymmetric(t *testing.T) {
	// Symmetrized input (both arcs) plus a literal duplicate and a self-loop.
	g, err := core.New(3, [][2]int{{0, 1}, {1, 0}, {0, 1}, {1, 2}, {2, 1}, {2, 2}})
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(2, 2))
	assert.False(t, g.HasEdge(0, 2))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbrs)

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g, err := core.New(5, [][2]int{{0, 4}, {0, 2}, {0, 3}, {0, 1}})
	require.NoError(t, err)

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3, 1}, nbrs)

	// Removing a middle neighbor keeps relative order of the rest.
	require.NoError(t, g.RemoveEdge(0, 2))
	nbrs, err = g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 1}, nbrs)
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := square(t)
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbrs[0] = 99

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, again)
}

func TestInvalidIndices(t *testing.T) {
	g := square(t)

	_, err := g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	assert.ErrorIs(t, g.RemoveVertex(10), core.ErrInvalidNode)
	assert.ErrorIs(t, g.DetachVertex(10), core.ErrInvalidNode)
	assert.ErrorIs(t, g.RemoveEdge(0, 10), core.ErrInvalidNode)
	assert.ErrorIs(t, g.AddEdge(0, 10), core.ErrInvalidNode)
	assert.False(t, g.HasEdge(0, 10))
	assert.False(t, g.HasVertex(10))
}

func TestRemoveEdge(t *testing.T) {
	g := square(t)

	require.NoError(t, g.RemoveEdge(1, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 3, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge(0, 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(0, 2), core.ErrEdgeNotFound)
}

func TestRemoveVertex(t *testing.T) {
	g := square(t)

	require.NoError(t, g.RemoveVertex(1))
	assert.False(t, g.HasVertex(1))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, g.Order(), "indices never shift")
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Zero(t, d)
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, nbrs)

	// Idempotent, and a removed vertex cannot be reconnected.
	require.NoError(t, g.RemoveVertex(1))
	require.NoError(t, g.AddEdge(1, 3))
	assert.False(t, g.HasEdge(1, 3))
	assert.Equal(t, []int{0, 2, 3}, g.Vertices())
}

func TestDetachVertex(t *testing.T) {
	g := square(t)

	require.NoError(t, g.DetachVertex(0))
	assert.True(t, g.HasVertex(0))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Zero(t, d)

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, nbrs)
}

func TestDegreeSnapshot_Frozen(t *testing.T) {
	g := square(t)
	snap := g.DegreeSnapshot()
	require.NoError(t, g.RemoveVertex(0))

	assert.Equal(t, core.DegreeSnapshot{2, 2, 2, 2}, snap)
	assert.Equal(t, core.DegreeSnapshot{0, 1, 2, 1}, g.DegreeSnapshot())
	assert.Equal(t, 2, g.MaxDegree())
}

func TestClone_Independent(t *testing.T) {
	g := square(t)
	c := g.Clone()

	require.NoError(t, c.RemoveVertex(0))
	require.NoError(t, c.RemoveEdge(1, 2))

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 1, c.EdgeCount())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nbrs)

	// Mutating the source leaves an earlier clone untouched as well.
	c2 := g.Clone()
	require.NoError(t, g.RemoveEdge(2, 3))
	assert.True(t, c2.HasEdge(2, 3))
}

func TestEdges_Sorted(t *testing.T) {
	g, err := core.New(4, [][2]int{{3, 2}, {1, 0}, {0, 3}, {2, 0}})
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {2, 3}}, g.Edges())
}

func TestAdjacencyList_DeepCopy(t *testing.T) {
	g := square(t)
	adj := g.AdjacencyList()
	require.Len(t, adj, 4)
	assert.Equal(t, []int{1, 3}, adj[0])

	adj[0][0] = 42
	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nbrs)
}
