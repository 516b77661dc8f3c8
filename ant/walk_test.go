package ant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamwalk/ant"
	"github.com/katalvlaran/hamwalk/builder"
	"github.com/katalvlaran/hamwalk/core"
)

func TestMaxSteps(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{2, 14},
		{3, 50},
		{4, 111},
		{5, 202},
		{10, 1152},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ant.MaxSteps(tc.n), "n=%d", tc.n)
	}
}

func TestWalk_HandTraced(t *testing.T) {
	cases := []struct {
		name  string
		cons  builder.Constructor
		path  []int
		steps int
	}{
		{"square", builder.Cycle(4), []int{0, 1, 2, 3, 0}, 111},
		{"K4", builder.Complete(4), []int{0, 1, 2, 3, 0}, 111},
		{"K5", builder.Complete(5), []int{3, 4, 0, 1, 2, 3}, 202},
		{"path", builder.Path(4), []int{0, 1, 2, 3}, 111},
		{"star", builder.Star(4), []int{0, 1, 0, 2, 0}, 111},
		{"K2", builder.Path(2), []int{1, 0, 1}, 14},
		{"isolated", builder.Isolated(3), []int{0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons)
			require.NoError(t, err)

			res, err := ant.Walk(g)
			require.NoError(t, err)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.steps, res.Steps)
		})
	}
}

func TestWalk_Start(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Isolated(1))
	require.NoError(t, err)

	res, err := ant.Walk(g, ant.WithStart(5))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, res.Path)
	assert.Zero(t, res.Steps)

	res, err = ant.Walk(g)
	require.NoError(t, err)
	assert.NotContains(t, res.Path, 5)

	_, err = ant.Walk(g, ant.WithStart(6))
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	assert.Panics(t, func() { ant.WithStart(-1) })
}

func TestWalk_Degenerate(t *testing.T) {
	_, err := ant.Walk(nil)
	assert.ErrorIs(t, err, ant.ErrGraphNil)

	empty, err := core.New(0, nil)
	require.NoError(t, err)
	res, err := ant.Walk(empty)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Steps)
}

func TestWalk_Bounds(t *testing.T) {
	fixtures := map[string][]builder.Constructor{
		"petersen": {builder.Petersen()},
		"grid":     {builder.Grid(4, 4)},
		"wheel":    {builder.Wheel(8)},
		"random":   {builder.RandomSparse(25, 0.2)},
		"forest":   {builder.Path(4), builder.Star(5)},
	}
	for name, cons := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, cons...)
			require.NoError(t, err)
			n := g.Order()

			res, err := ant.Walk(g)
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Steps, ant.MaxSteps(n))
			assert.LessOrEqual(t, len(res.Path), n+1)
			for i := 1; i < len(res.Path); i++ {
				require.True(t, g.HasEdge(res.Path[i-1], res.Path[i]), "step %d of %v", i, res.Path)
			}

			again, err := ant.Walk(g)
			require.NoError(t, err)
			assert.Equal(t, res, again, "deterministic")
		})
	}
}

func TestSolver_Cliques(t *testing.T) {
	s := ant.NewSolver()
	assert.Equal(t, ant.Name, s.Name())

	for n := 3; n <= 9; n++ {
		g, err := builder.BuildGraph(nil, builder.Complete(n))
		require.NoError(t, err)

		p, err := s.Solve(g)
		require.NoError(t, err)
		require.Len(t, p, n+1, "K_%d", n)
		assert.Equal(t, p[0], p[n])

		seen := make(map[int]bool, n)
		for _, v := range p[:n] {
			seen[v] = true
		}
		assert.Len(t, seen, n, "K_%d visits every vertex once", n)
	}
}
