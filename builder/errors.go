// SPDX-License-Identifier: MIT
// Package: hamwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Algorithms never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, sides)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unknown family name.
var ErrConstructFailed = errors.New("builder: construction failed")
