package ant

import (
	"errors"
	"math"
)

// Name is the registry name of the pheromone-walk heuristic.
const Name = "ant"

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("ant: graph is nil")

// Result is the outcome of a walk.
type Result struct {
	// Path is the final window, closed when its ends are adjacent.
	Path []int
	// Steps is the number of moves performed, at most MaxSteps(n).
	Steps int
}

// Option configures Walk.
type Option func(*Options)

// Options holds the walk knobs.
type Options struct {
	// Start is the first vertex of the walk. Default 0.
	Start int
}

// DefaultOptions returns Options starting at vertex 0.
func DefaultOptions() Options {
	return Options{Start: 0}
}

// WithStart sets the first vertex of the walk. Panics on a negative index;
// an index beyond the graph order is reported by Walk.
func WithStart(v int) Option {
	if v < 0 {
		panic("ant: WithStart(negative)")
	}
	return func(o *Options) {
		o.Start = v
	}
}

// MaxSteps returns ⌈5·ln(n)·n²⌉ for n >= 2 and 0 otherwise.
func MaxSteps(n int) int {
	if n < 2 {
		return 0
	}
	f := float64(n)

	return int(math.Ceil(5 * math.Log(f) * f * f))
}
