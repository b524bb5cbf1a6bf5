// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// impl_forward.go: Forward() constructor.
//
// Contract:
//   • The graph holds at least MinStops stops (else ErrTooFewNodes).
//   • cfg.rng is non-nil (else ErrNeedRandSource).
//   • For every pair of stops i<j (by ascending ID) adds exactly one edge
//     i→j with drawn attributes. No edge ever points to a lower ID, so the
//     result is acyclic.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n) for the sorted stop list.
//
// Determinism:
//   • Pair order is lexicographic by (i,j); each edge consumes three draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Forward returns a Constructor connecting every stop to every higher stop.
func Forward() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1. Validate
		nodes := g.Nodes()
		if err := validateMin(MethodForward, len(nodes), MinStops); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodForward, ErrNeedRandSource)
		}
		if err := cfg.validate(MethodForward); err != nil {
			return err
		}

		// 2. Emit i→j for i<j in stable order
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				u, v := nodes[i].ID, nodes[j].ID
				info := drawEdgeInfo(cfg)
				if err := g.AddEdge(u, v, info); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodForward, u, v, err)
				}
			}
		}

		return nil
	}
}
