// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/citynav/core"
)

// Sentinel errors.
var (
	// ErrEmptySource indicates that no positive source stop was supplied.
	ErrEmptySource = errors.New("dijkstra: source stop is not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source stop is absent.
	ErrVertexNotFound = errors.New("dijkstra: source stop not found in graph")

	// ErrNegativeWeight indicates a negative or NaN street weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates a destination that was never settled.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// WeightFn returns the cost of traversing e.
type WeightFn func(e core.Edge) float64

// DistanceWeight costs a street by its distance attribute.
func DistanceWeight(e core.Edge) float64 { return float64(e.Info.Distance) }

// Options configures a run. Build it through Option functions.
type Options struct {
	Source      int
	Weight      WeightFn
	MaxDistance float64
	Ctx         context.Context
}

// DefaultOptions returns Options with DistanceWeight, no distance bound and
// a background context.
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		Weight:      DistanceWeight,
		MaxDistance: math.Inf(1),
		Ctx:         context.Background(),
	}
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start stop.
func Source(id int) Option {
	return func(o *Options) { o.Source = id }
}

// WithWeight sets the street cost function. Panics on nil.
func WithWeight(fn WeightFn) Option {
	if fn == nil {
		panic("dijkstra: WithWeight(nil)")
	}
	return func(o *Options) { o.Weight = fn }
}

// WithMaxDistance stops exploring beyond cost max. Panics on max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(fmt.Sprintf("%s (%g)", ErrBadMaxDistance.Error(), max))
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithContext sets a context checked once per settled stop. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds settled costs and the shortest-path tree.
// Dist omits stops that were never reached.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// PathTo reconstructs the cheapest path from Source to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	var rev []int
	for cur := dest; ; {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		cur = r.Prev[cur]
	}
	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}
