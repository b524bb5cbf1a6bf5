// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// attr_fn.go: random edge attributes for stochastic constructors.
//
// Every drawn edge consumes exactly three values from the RNG, in the order
// distance, red lights, traffic. Keeping the order fixed keeps a seed's city
// stable across releases.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/citynav/core"
)

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// NewRange returns [min, max]. Panics if min < 0 or max < min.
func NewRange(min, max int) Range {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: NewRange requires 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return Range{Min: min, Max: max}
}

// Draw samples uniformly from r. A nil rng yields r.Min.
// Complexity: O(1).
func (r Range) Draw(rng *rand.Rand) int {
	if rng == nil || r.Max == r.Min {
		return r.Min
	}

	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// Contains reports whether v lies in r.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// drawEdgeInfo samples one edge's attributes.
func drawEdgeInfo(cfg builderConfig) core.EdgeInfo {
	var info core.EdgeInfo
	info.Distance = cfg.distance.Draw(cfg.rng)
	info.RedLights = cfg.redLight.Draw(cfg.rng)
	info.Traffic = cfg.traffic.Draw(cfg.rng)

	return info
}
