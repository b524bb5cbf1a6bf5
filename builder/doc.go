// SPDX-License-Identifier: MIT

// Package builder assembles city networks on top of core.Graph from small,
// composable constructors and functional options.
//
// Entry points:
//
//   - BuildGraph(gopts, bopts, cons...): new graph, options resolved once,
//     constructors applied in order.
//   - Apply(g, bopts, cons...): same, against an existing graph.
//   - City(seed): the standard 15-stop network (Stops + Forward).
//
// Constructors:
//
//   - Stops(n):     stops 1..n, categories by id % 3.
//   - Forward():    an edge i→j for every pair of stops i<j.
//   - Corridor():   a sparse 20-street grid over stops 1..15.
//   - Sparse(p):    forward pairs kept with probability p.
//   - Links(list):  explicit edges with fixed attributes.
//
// Options:
//
//   - WithSeed / WithRand: the only sources of randomness.
//   - WithDistanceRange (3..10), WithTrafficRange (2..8),
//     WithRedLightRange (0..4): inclusive attribute ranges.
//   - WithCategoryFn: stop labelling.
//
// Each drawn edge consumes three RNG values in the order distance, red
// lights, traffic. Same seed, options and constructor order give the same
// graph.
//
// Option constructors panic on meaningless input. Constructors never panic;
// they return ErrTooFewNodes, ErrNeedRandSource, ErrBadRange,
// ErrInvalidProbability or ErrConstructFailed wrapped with context.
package builder
