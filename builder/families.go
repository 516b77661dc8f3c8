// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// families.go — name-based lookup used by command-line fixture generation.

package builder

import (
	"fmt"
	"slices"
)

// Params carries the numeric knobs a named family may read.
type Params struct {
	N    int     // vertex count (complete, cycle, path, star, wheel, isolated, random)
	Rows int     // grid rows
	Cols int     // grid cols
	A, B int     // bipartite sides
	P    float64 // edge probability (random)
}

var families = map[string]func(Params) Constructor{
	"complete":  func(p Params) Constructor { return Complete(p.N) },
	"cycle":     func(p Params) Constructor { return Cycle(p.N) },
	"path":      func(p Params) Constructor { return Path(p.N) },
	"star":      func(p Params) Constructor { return Star(p.N) },
	"wheel":     func(p Params) Constructor { return Wheel(p.N) },
	"isolated":  func(p Params) Constructor { return Isolated(p.N) },
	"grid":      func(p Params) Constructor { return Grid(p.Rows, p.Cols) },
	"bipartite": func(p Params) Constructor { return CompleteBipartite(p.A, p.B) },
	"petersen":  func(Params) Constructor { return Petersen() },
	"random":    func(p Params) Constructor { return RandomSparse(p.N, p.P) },
}

// Families lists the registered family names in ascending order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// ByName returns the Constructor for a registered family.
//
// Errors: ErrConstructFailed for an unknown name.
func ByName(name string, p Params) (Constructor, error) {
	mk, ok := families[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): unknown family: %w", name, ErrConstructFailed)
	}

	return mk(p), nil
}
