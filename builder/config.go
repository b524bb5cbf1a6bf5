// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng        = nil (stochastic constructors fail with ErrNeedRandSource)
//   • categoryFn = DefaultCategoryFn
//   • distance   = [3,10]
//   • traffic    = [2,8]
//   • redLight   = [0,4]

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for attribute draws; nil means "no randomness".
	rng *rand.Rand
	// Stop ID → category label.
	categoryFn CategoryFn

	// Inclusive attribute ranges for drawn edges.
	distance Range
	traffic  Range
	redLight Range
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		categoryFn: DefaultCategoryFn,
		distance:   Range{Min: DefaultMinDistance, Max: DefaultMaxDistance},
		traffic:    Range{Min: DefaultMinTraffic, Max: DefaultMaxTraffic},
		redLight:   Range{Min: DefaultMinRedLight, Max: DefaultMaxRedLight},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate re-checks the resolved ranges before any edge is drawn.
func (c builderConfig) validate(method string) error {
	if err := validateRange(method, "distance", c.distance); err != nil {
		return err
	}
	if err := validateRange(method, "traffic", c.traffic); err != nil {
		return err
	}

	return validateRange(method, "red-light", c.redLight)
}
