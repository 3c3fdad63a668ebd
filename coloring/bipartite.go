// Package coloring provides breadth-first 2-coloring with a pre-locked vertex
// set and the locked-set 3-coloring search built on top of it.
package coloring

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/core"
)

// walker encapsulates mutable BFS state over an adjacency snapshot.
// Buffers are reused across attempts of one run.
type walker struct {
	adj     [][]int
	colors  core.Coloring
	visited []bool
	queue   []int
}

// newWalker allocates buffers sized for adj.
func newWalker(adj [][]int) *walker {
	n := len(adj)
	return &walker{
		adj:     adj,
		colors:  make(core.Coloring, n),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}
}

// run 2-colors every vertex outside locked with {0,1}; locked vertices get
// LockedColor and are pre-marked visited, so they are never expanded.
// Components are seeded from the smallest-index unvisited vertex.
// Returns false on the first edge whose endpoints share a color.
//
// Edges between two locked vertices are never inspected here; the caller's
// final validity scan catches them.
func (w *walker) run(locked []int) bool {
	for u := range w.colors {
		w.colors[u] = core.Uncolored
		w.visited[u] = false
	}
	for _, v := range locked {
		w.colors[v] = LockedColor
		w.visited[v] = true
	}

	for s := 0; s < len(w.adj); s++ {
		if w.visited[s] {
			continue
		}
		// Fresh component: seed with color 0.
		w.colors[s] = 0
		w.visited[s] = true
		w.queue = append(w.queue[:0], s)

		for len(w.queue) > 0 {
			curr := w.queue[0]
			w.queue = w.queue[1:]
			for _, nb := range w.adj[curr] {
				if w.colors[curr] == w.colors[nb] {
					return false
				}
				if !w.visited[nb] {
					w.colors[nb] = 1 - w.colors[curr]
					w.visited[nb] = true
					w.queue = append(w.queue, nb)
				}
			}
		}
	}

	return true
}

// runner binds a graph, resolved options and a walker for one run.
type runner struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	log   *zap.Logger
	w     *walker
}

// newRunner snapshots g's adjacency; g must not change structure until the
// run returns.
func newRunner(g *core.Graph, o Options) *runner {
	return &runner{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		log:   o.Logger,
		w:     newWalker(g.AdjacencyList()),
	}
}

// order returns N of the snapshot.
func (r *runner) order() int { return len(r.w.adj) }

// cancelled resets colors and returns the context error, if any.
func (r *runner) cancelled() error {
	select {
	case <-r.ctx.Done():
		r.graph.ResetColors()
		return r.ctx.Err()
	default:
		return nil
	}
}

// attempt performs one full 2-coloring attempt with the given lock:
// reset, BFS, commit, final validity scan. On failure the graph's colors
// are left reset.
func (r *runner) attempt(locked []int) (core.Coloring, bool, error) {
	r.graph.ResetColors()

	ok := r.w.run(locked)
	if ok {
		if err := r.graph.SetColors(r.w.colors); err != nil {
			r.graph.ResetColors()
			return nil, false, fmt.Errorf("coloring: commit: %w", err)
		}
		// Exhaustive scan over every edge, locked–locked included.
		if !r.graph.IsColoringValid() {
			r.graph.ResetColors()
			ok = false
		}
	}
	r.opts.OnAttempt(locked, ok)
	if !ok {
		return nil, false, nil
	}

	return r.graph.Colors(), true, nil
}

// TwoColor resets g's colors, gives every vertex in locked the label
// LockedColor and properly 2-colors the rest with {0,1} by breadth-first
// search, restarting from the smallest unvisited index for each connected
// component.
//
// locked should be an independent set. A violation is not rejected up
// front; it is caught by the final validity scan and reported as
// "no coloring".
//
// Returns (coloring, true, nil) on success, leaving the coloring on g.
// Returns (nil, false, nil) when no coloring exists with this lock; g's
// colors are then all Uncolored. Errors are reserved for invalid input
// (ErrGraphNil, core.ErrVertexOutOfRange, ErrOptionViolation) and
// cancellation; g's colors are reset on those too, except for a nil graph.
//
// Complexity: O(N + E).
func TwoColor(g *core.Graph, locked []int, opts ...Option) (core.Coloring, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		g.ResetColors()
		return nil, false, err
	}

	r := newRunner(g, o)
	n := r.order()
	for _, v := range locked {
		if v < 0 || v >= n {
			g.ResetColors()
			return nil, false, fmt.Errorf("TwoColor: locked vertex %d: %w", v, core.ErrVertexOutOfRange)
		}
	}
	if err = r.cancelled(); err != nil {
		return nil, false, err
	}

	o.OnStart(n)
	col, ok, err := r.attempt(locked)
	if err != nil {
		return nil, false, err
	}
	r.log.Debug("two-coloring finished",
		zap.Int("order", n),
		zap.Int("locked", len(locked)),
		zap.Bool("found", ok),
	)
	o.OnDone(ok)

	return col, ok, nil
}
