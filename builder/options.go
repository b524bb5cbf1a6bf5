// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Randomness is explicit: seed with WithSeed or inject WithRand.
//     There is no package-level RNG.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDistanceRange sets the inclusive distance range for drawn edges.
// Panics if min < 0 or max < min.
func WithDistanceRange(min, max int) BuilderOption {
	r := NewRange(min, max)
	return func(c *builderConfig) {
		c.distance = r
	}
}

// WithTrafficRange sets the inclusive traffic range for drawn edges.
// Panics if min < 0 or max < min.
func WithTrafficRange(min, max int) BuilderOption {
	r := NewRange(min, max)
	return func(c *builderConfig) {
		c.traffic = r
	}
}

// WithRedLightRange sets the inclusive red-light range for drawn edges.
// Panics if min < 0 or max < min.
func WithRedLightRange(min, max int) BuilderOption {
	r := NewRange(min, max)
	return func(c *builderConfig) {
		c.redLight = r
	}
}

// WithCategoryFn overrides stop categorisation. Panics on nil.
func WithCategoryFn(fn CategoryFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCategoryFn(nil)")
	}
	return func(c *builderConfig) {
		c.categoryFn = fn
	}
}
