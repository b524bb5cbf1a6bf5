// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// impl_stops.go: Stops(n) constructor.
//
// Contract:
//   • n ≥ MinStops (else ErrTooFewNodes).
//   • Adds stops 1..n in ascending order, labelled by cfg.categoryFn.
//   • A stop that already exists is left alone (first registration wins),
//     so Stops can be re-applied to extend a graph.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Stops returns a Constructor adding stops 1..n.
// Complexity: O(n).
func Stops(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStops, n, MinStops); err != nil {
			return err
		}

		for id := 1; id <= n; id++ {
			err := g.AddNode(id, cfg.categoryFn(id))
			if err == nil || errors.Is(err, core.ErrDuplicateNode) {
				continue
			}
			return fmt.Errorf("%s: AddNode(%d): %w", MethodStops, id, err)
		}

		return nil
	}
}
