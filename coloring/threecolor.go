package coloring

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/core"
)

// ThreeColor searches for a proper coloring of g with labels {0,1,2}.
//
// It first tries TwoColor with an empty lock; a bipartite graph is returned
// right there and never uses label 2. Otherwise it enumerates locked sets S
// by increasing size 1..⌊N/3⌋ in lexicographic order, skips sets that are
// not independent, and returns the first S for which the rest of the graph
// 2-colors. The bound is sufficient: the smallest class of any 3-coloring
// holds at most ⌊N/3⌋ vertices, and locking it leaves a bipartite rest.
//
// Returns (coloring, true, nil) on success, leaving the coloring on g.
// Returns (nil, false, nil) when no coloring exists within the bound; g's
// colors are then all Uncolored. Cancellation via WithContext is observed
// between candidate sets and returns ctx.Err() with colors reset.
//
// Complexity: Σ_{s≤N/3} C(N,s)·O(N+E) in the worst case. Callers on large
// graphs should bound the run with a context deadline.
func ThreeColor(g *core.Graph, opts ...Option) (core.Coloring, bool, error) {
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
	bound := n / 3
	if o.MaxLockedSize >= 0 && o.MaxLockedSize < bound {
		bound = o.MaxLockedSize
	}
	r.log.Debug("three-coloring search started",
		zap.Int("order", n),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("bound", bound),
	)
	if err = r.cancelled(); err != nil {
		return nil, false, err
	}
	o.OnStart(n)

	// Step 1: maybe the graph is bipartite already.
	col, ok, err := r.attempt(nil)
	if err != nil {
		return nil, false, err
	}
	if ok {
		r.log.Debug("three-coloring search finished: bipartite", zap.Int("order", n))
		o.OnDone(true)
		return col, true, nil
	}

	// Step 2: locked sets of size 1..bound; size 0 is the empty lock above.
	mark := make([]bool, n)
	attempts := 1
	for size := 1; size <= bound; size++ {
		r.log.Debug("enumerating locked sets", zap.Int("size", size))
		for subset := range Combinations(n, size) {
			if err = r.cancelled(); err != nil {
				return nil, false, err
			}
			indep := independent(r.w.adj, subset, mark)
			o.OnCandidate(subset, indep)
			if !indep {
				continue
			}
			attempts++
			col, ok, err = r.attempt(subset)
			if err != nil {
				return nil, false, err
			}
			if ok {
				r.log.Debug("three-coloring search finished",
					zap.Int("order", n),
					zap.Ints("locked", subset),
					zap.Int("attempts", attempts),
				)
				o.OnDone(true)
				return col, true, nil
			}
		}
	}

	g.ResetColors()
	r.log.Debug("three-coloring search exhausted",
		zap.Int("order", n),
		zap.Int("bound", bound),
		zap.Int("attempts", attempts),
	)
	o.OnDone(false)

	return nil, false, nil
}
