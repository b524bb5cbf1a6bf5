// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("<Method>: ...: %w").
//   • Constructors never panic; validation panics are confined to WithX
//     option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a size parameter below the constructor minimum,
// or a layout that needs stops the graph does not have yet.
var ErrTooFewNodes = errors.New("builder: too few stops")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadRange indicates an attribute range with min < 0 or max < min.
// Returned by validateRange; option constructors panic on the same input.
var ErrBadRange = errors.New("builder: invalid attribute range")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrUnknownLayout indicates an unsupported layout name in ParseLayout.
var ErrUnknownLayout = errors.New("builder: unknown layout")

// ErrConstructFailed indicates that a constructor could not complete, e.g.
// a nil constructor or a link the graph store refused.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with "<method>: <formatted message>: %w".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
