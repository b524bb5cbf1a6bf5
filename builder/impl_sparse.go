// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// impl_sparse.go: Sparse(p) constructor.
//
// Model: each forward pair i<j is kept independently with probability p.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • The graph holds at least MinStops stops (else ErrTooFewNodes).
//   • cfg.rng is non-nil (else ErrNeedRandSource). Even for p ∈ {0,1}.
//   • Kept edges get drawn attributes; rejected pairs consume one draw.
//
// Determinism:
//   • Stable trial order: i asc, then j asc with j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Sparse returns a Constructor sampling forward edges with probability p.
// Complexity: O(n²) Bernoulli trials.
func Sparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early
		if err := validateProbability(MethodSparse, p); err != nil {
			return err
		}
		nodes := g.Nodes()
		if err := validateMin(MethodSparse, len(nodes), MinStops); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodSparse, ErrNeedRandSource)
		}
		if err := cfg.validate(MethodSparse); err != nil {
			return err
		}

		// 2) Bernoulli trial per forward pair
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := nodes[i].ID, nodes[j].ID
				if err := g.AddEdge(u, v, drawEdgeInfo(cfg)); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
