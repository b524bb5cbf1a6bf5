// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// impl_links.go: Links(list) constructor for hand-written networks.
//
// Contract:
//   • Both endpoints of every link exist (else core.ErrNodeNotFound wrapped
//     with ErrConstructFailed). The graph store itself drops dangling edges
//     silently; fixtures are stricter.
//   • Attributes are taken verbatim; negative values surface the store's
//     ErrNegativeAttribute.
//   • Uses no randomness.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Link is one explicit directed street.
type Link struct {
	From int
	To   int
	Info core.EdgeInfo
}

// Links returns a Constructor adding every link in order.
// Complexity: O(len(list)).
func Links(list []Link) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, l := range list {
			for _, id := range [2]int{l.From, l.To} {
				if !g.HasNode(id) {
					return fmt.Errorf("%s: link %d (%d→%d): stop %d: %w: %w",
						MethodLinks, i, l.From, l.To, id, core.ErrNodeNotFound, ErrConstructFailed)
				}
			}
			if err := g.AddEdge(l.From, l.To, l.Info); err != nil {
				return fmt.Errorf("%s: link %d (%d→%d): %w", MethodLinks, i, l.From, l.To, err)
			}
		}

		return nil
	}
}
