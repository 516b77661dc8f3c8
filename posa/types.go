package posa

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("posa: graph is nil")

	// ErrSnapshotMismatch indicates a degree snapshot whose length differs
	// from the graph order.
	ErrSnapshotMismatch = errors.New("posa: degree snapshot does not match graph")
)

// Name is the registry name of the rotation-extension heuristic.
const Name = "posa"
