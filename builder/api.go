// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// api.go: public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are declared here and implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/citynav/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph with options opts.
func Apply(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// City builds the standard network: DefaultStops stops and a Forward edge
// for every ordered pair i<j, with attributes drawn from seed.
func City(seed int64, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, []BuilderOption{WithSeed(seed)}, Stops(DefaultStops), Forward())
}

// Layout names an edge layout selectable at runtime.
type Layout string

// Supported layouts.
const (
	LayoutForward  Layout = "forward"
	LayoutCorridor Layout = "corridor"
	LayoutSparse   Layout = "sparse"
)

// Layouts lists every supported layout.
func Layouts() []Layout { return []Layout{LayoutForward, LayoutCorridor, LayoutSparse} }

// ParseLayout resolves a case-insensitive layout name.
func ParseLayout(name string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Layouts() {
		if l == known {
			return l, nil
		}
	}

	return "", fmt.Errorf("ParseLayout(%q): %w", name, ErrUnknownLayout)
}

// Constructor returns the edge constructor for l. density is used by
// LayoutSparse only.
func (l Layout) Constructor(density float64) (Constructor, error) {
	switch l {
	case LayoutForward:
		return Forward(), nil
	case LayoutCorridor:
		return Corridor(), nil
	case LayoutSparse:
		return Sparse(density), nil
	default:
		return nil, fmt.Errorf("Layout(%q): %w", string(l), ErrUnknownLayout)
	}
}
