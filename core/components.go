// File: components.go
// Role: Connected components over live vertices (breadth-first).
// Determinism:
//   - Components are ordered by their smallest vertex; members ascend.

package core

import "slices"

// Components partitions the live vertices into connected components using a
// breadth-first sweep from each unvisited vertex in ascending order. Each
// component is sorted ascending; isolated vertices form singleton components.
//
// Complexity: O(n + m) plus O(c log c) sorting per component.
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, len(g.adj))
	var (
		out   [][]int
		queue []int
	)
	for s := range g.adj {
		if !g.alive[s] || seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue[:0], s)
		comp := []int{}
		for head := 0; head < len(queue); head++ {
			v := queue[head]
			comp = append(comp, v)
			for _, u := range g.adj[v] {
				if !seen[u] {
					seen[u] = true
					queue = append(queue, u)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// LargestComponent returns the size of the biggest connected component,
// an upper bound on the length of any simple path in g.
func (g *Graph) LargestComponent() int {
	best := 0
	for _, c := range g.Components() {
		if len(c) > best {
			best = len(c)
		}
	}

	return best
}
