// File: walk.go
// Role: Pheromone walk main loop.
//
// Determinism:
//   - Full (mu, tau) ties keep the first neighbor in insertion order.
//
// Concurrency:
//   - g is read once through AdjacencyList; all state is local.

package ant

import (
	"fmt"

	"github.com/katalvlaran/hamwalk/core"
)

// Walk runs the pheromone walk on g and returns the trailing window of
// visited vertices.
//
// Per step s = 1..MaxSteps(n):
//  1. next = neighbor of current minimizing (mu[next], tau[next]);
//     stop when current has no neighbor;
//  2. mu[current] = mu[next] + 1, tau[current] = s;
//  3. current = next, pushed into the window (capacity n).
//
// After the loop the window is closed into a cycle when its first and last
// entries are adjacent. An empty graph yields an empty path.
//
// Errors: ErrGraphNil, core.ErrInvalidNode (start vertex).
//
// Complexity: O(MaxSteps(n)·Δ) time, O(n + m) memory.
func Walk(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if n == 0 {
		return Result{Path: []int{}}, nil
	}
	if o.Start >= n {
		return Result{}, fmt.Errorf("Walk: start=%d: %w", o.Start, core.ErrInvalidNode)
	}

	adj := g.AdjacencyList()
	mu := make([]int, n)
	tau := make([]int, n)
	win := newWindow(n)

	current := o.Start
	win.push(current)
	limit := MaxSteps(n)
	steps := 0
	for step := 1; step <= limit; step++ {
		nbrs := adj[current]
		if len(nbrs) == 0 {
			break
		}
		next := nbrs[0]
		for _, x := range nbrs[1:] {
			if mu[x] < mu[next] || (mu[x] == mu[next] && tau[x] < tau[next]) {
				next = x
			}
		}
		mu[current] = mu[next] + 1
		tau[current] = step
		current = next
		win.push(current)
		steps = step
	}

	path := win.slice()
	if first, last := path[0], path[len(path)-1]; g.HasEdge(first, last) {
		path = append(path, first)
	}

	return Result{Path: path, Steps: steps}, nil
}
