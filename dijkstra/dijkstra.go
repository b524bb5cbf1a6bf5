// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/citynav/core"
)

// Dijkstra computes the cheapest cost from Options.Source to every reachable
// stop of g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No street may weigh < 0 or NaN (ErrNegativeWeight).
//
// Context cancellation returns the context error with a nil Result.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source <= 0 {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan every street so relaxation never sees a bad weight
	for _, e := range g.Edges() {
		if w := cfg.Weight(e); w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}
	}

	// 4) Run
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[int]float64, V),
			Prev:   make(map[int]int, V),
		},
		best:    make(map[int]float64, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	best    map[int]float64 // tentative costs; settled ones are copied to res.Dist
	visited map[int]bool
	pq      nodePQ
}

// init seeds the heap with Source at cost 0.
func (r *runner) init() {
	r.best[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles stops in cost order until the heap drains or the
// cheapest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		// 1) Pop the cheapest entry; skip stale ones
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}

		// 2) Everything left is farther than the bound
		if item.dist > r.options.MaxDistance {
			break
		}

		// 3) Finalize and relax
		r.visited[item.id] = true
		r.res.Dist[item.id] = item.dist
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every successor of u through its first street.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	seen := make(map[int]bool, len(edges))
	for _, e := range edges {
		v := e.To
		if seen[v] {
			continue // later parallel street
		}
		seen[v] = true
		if r.visited[v] {
			continue
		}

		newDist := r.res.Dist[u] + r.options.Weight(e)
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.best[v]; ok && newDist >= cur {
			continue
		}
		r.best[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a stop with a tentative cost.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist; stale entries are
// skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
