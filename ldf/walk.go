// File: walk.go
// Role: Greedy least-degree-first walker.
//
// Walk owns a private clone of the input graph and deletes every vertex it
// visits, so the produced sequence is always a simple path of g and the loop
// runs at most g.Order() times.

package ldf

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/hamwalk/core"
)

// Walk grows a simple path from start, always stepping to the remaining
// neighbor of lowest snapshot degree.
//
// Per step:
//  1. append current to the path;
//  2. candidates = live neighbors of current, stably sorted by snap ascending;
//  3. remove current (and its edges) from the working clone;
//  4. with dead-end avoidance, keep only candidates that still have live
//     neighbors all of live degree > 1, when at least one such candidate exists;
//  5. advance to the first candidate, or stop when none is left.
//
// The caller's graph is never mutated. snap must come from the graph the
// caller considers "original" and is never recomputed here.
//
// Errors: ErrGraphNil, ErrSnapshotMismatch, core.ErrInvalidNode (start).
func Walk(g *core.Graph, start int, snap core.DegreeSnapshot, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if len(snap) != n {
		return nil, fmt.Errorf("Walk: len(snap)=%d, order=%d: %w", len(snap), n, ErrSnapshotMismatch)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("Walk: start=%d: %w", start, core.ErrInvalidNode)
	}
	o := resolve(opts)

	work := g.Clone()
	path := make([]int, 0, n)
	current := start
	for step := 0; step < n; step++ {
		path = append(path, current)

		cands, err := work.Neighbors(current)
		if err != nil {
			return nil, fmt.Errorf("Walk: %w", err)
		}
		slices.SortStableFunc(cands, func(a, b int) int {
			return cmp.Compare(snap[a], snap[b])
		})
		if err = work.RemoveVertex(current); err != nil {
			return nil, fmt.Errorf("Walk: %w", err)
		}

		if o.DeadEndAvoidance {
			safe, err := safeCandidates(work, cands)
			if err != nil {
				return nil, fmt.Errorf("Walk: %w", err)
			}
			if len(safe) > 0 {
				cands = safe
			}
		}
		if len(cands) == 0 {
			break
		}
		current = cands[0]
	}

	return path, nil
}

// safeCandidates keeps the candidates x with at least one live neighbor
// where every live neighbor of x has live degree > 1. Order is preserved.
func safeCandidates(work *core.Graph, cands []int) ([]int, error) {
	var safe []int
	for _, x := range cands {
		nbrs, err := work.Neighbors(x)
		if err != nil {
			return nil, err
		}
		if len(nbrs) == 0 {
			continue
		}
		ok := true
		for _, y := range nbrs {
			d, err := work.Degree(y)
			if err != nil {
				return nil, err
			}
			if d <= 1 {
				ok = false
				break
			}
		}
		if ok {
			safe = append(safe, x)
		}
	}

	return safe, nil
}

// BestFromMaxDegreeStarts captures the degree snapshot once, runs Walk from
// every vertex of maximum degree (ascending index) and keeps the longest
// path; the first one found wins ties. When that path covers every live
// vertex and its endpoints are adjacent, the start vertex is appended to
// close a Hamiltonian cycle.
//
// An empty graph yields an empty path.
//
// Errors: ErrGraphNil.
func BestFromMaxDegreeStarts(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snap := g.DegreeSnapshot()
	maxDeg := g.MaxDegree()

	best := []int{}
	for _, v := range g.Vertices() {
		if snap[v] != maxDeg {
			continue
		}
		p, err := Walk(g, v, snap, opts...)
		if err != nil {
			return nil, err
		}
		if len(p) > len(best) {
			best = p
		}
	}

	if k := len(best); k > 0 && k == g.VertexCount() && g.HasEdge(best[0], best[k-1]) {
		best = append(best, best[0])
	}

	return best, nil
}
