package ldf

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("ldf: graph is nil")

	// ErrSnapshotMismatch indicates a degree snapshot whose length differs
	// from the graph order.
	ErrSnapshotMismatch = errors.New("ldf: degree snapshot does not match graph")
)

// Option configures optional behavior of Walk and BestFromMaxDegreeStarts.
type Option func(*Options)

// Options holds the walker knobs.
type Options struct {
	// DeadEndAvoidance enables the degree > 1 lookahead filter.
	// Default is true.
	DeadEndAvoidance bool
}

// DefaultOptions returns Options with dead-end avoidance enabled.
func DefaultOptions() Options {
	return Options{DeadEndAvoidance: true}
}

// WithDeadEndAvoidance toggles the dead-end lookahead.
func WithDeadEndAvoidance(on bool) Option {
	return func(o *Options) {
		o.DeadEndAvoidance = on
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
