package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamwalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrSolverNil is returned by SolveGraphs for a nil Solver.
	ErrSolverNil = errors.New("solver: solver is nil")

	// ErrUnknownHeuristic is returned by New for an unregistered name.
	ErrUnknownHeuristic = errors.New("solver: unknown heuristic")

	// ErrPathTooLong: the path has more than Order()+1 entries.
	ErrPathTooLong = errors.New("solver: path longer than order+1")

	// ErrPathNotSimple: a vertex repeats outside the closing position.
	ErrPathNotSimple = errors.New("solver: path is not simple")

	// ErrPathBrokenEdge: two consecutive vertices are not adjacent.
	ErrPathBrokenEdge = errors.New("solver: consecutive vertices not adjacent")
)

// Solver finds a Hamiltonian path or cycle heuristically. Solve must not
// mutate g and returns a fresh slice; a path shorter than the graph is an
// ordinary result.
type Solver interface {
	// Name is the registry name of the heuristic.
	Name() string
	// Solve returns a path of g, closed (last == first) when a cycle was found.
	Solve(g *core.Graph) ([]int, error)
}

// Instance is a graph in its external form: a vertex count and an edge list
// over [0, NumNodes).
type Instance struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	NumNodes int      `yaml:"num_nodes" json:"num_nodes"`
	Edges    [][2]int `yaml:"edges,flow" json:"edges"`
}

// Graph builds the core.Graph described by the instance. Duplicate edges
// collapse and self-loops are dropped.
//
// Errors: core.ErrInvalidOrder, core.ErrInvalidNode, wrapped with the
// instance name.
func (in Instance) Graph() (*core.Graph, error) {
	g, err := core.New(in.NumNodes, in.Edges)
	if err != nil {
		return nil, fmt.Errorf("Instance(%q).Graph: %w", in.Name, err)
	}

	return g, nil
}

// FromGraph captures g's live edges as an Instance named name.
func FromGraph(name string, g *core.Graph) Instance {
	return Instance{Name: name, NumNodes: g.Order(), Edges: g.Edges()}
}
