package solver

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hamwalk/ant"
	"github.com/katalvlaran/hamwalk/ldf"
	"github.com/katalvlaran/hamwalk/posa"
)

var registry = map[string]func() Solver{
	ldf.Name:  func() Solver { return ldf.NewSolver() },
	posa.Name: func() Solver { return posa.NewSolver() },
	ant.Name:  func() Solver { return ant.NewSolver() },
}

// Names lists the registered heuristics in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// New returns the default-configured Solver registered under name.
//
// Errors: ErrUnknownHeuristic.
func New(name string) (Solver, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknownHeuristic)
	}

	return mk(), nil
}

// All returns one Solver per registered heuristic, ordered as Names.
func All() []Solver {
	names := Names()
	out := make([]Solver, len(names))
	for i, name := range names {
		out[i] = registry[name]()
	}

	return out
}
