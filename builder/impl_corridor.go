// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// impl_corridor.go: Corridor() constructor.
//
// Contract:
//   • Stops 1..CorridorStops exist (else ErrTooFewNodes).
//   • cfg.rng is non-nil (else ErrNeedRandSource).
//   • Adds the 20 corridor streets in table order with drawn attributes.
//
// Shape:
//
//	 1 ─ 2 ─ 3
//	 │   │   │
//	 4 ─ 5 ─ 6
//	 │   │   │
//	 7 ─ 8 ─ 9
//	 │   │   │
//	10 ─11 ─12 → 13 → 14 → 15
//
// All streets point right or down, so the layout is acyclic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Corridor returns a Constructor adding the sparse corridor street layout.
// Complexity: O(1) (fixed 20 edges).
func Corridor() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for id := 1; id <= CorridorStops; id++ {
			if !g.HasNode(id) {
				return builderErrorf(MethodCorridor, ErrTooFewNodes, "stop %d missing, need 1..%d", id, CorridorStops)
			}
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodCorridor, ErrNeedRandSource)
		}
		if err := cfg.validate(MethodCorridor); err != nil {
			return err
		}

		for _, l := range corridorLinks {
			if err := g.AddEdge(l[0], l[1], drawEdgeInfo(cfg)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodCorridor, l[0], l[1], err)
			}
		}

		return nil
	}
}
