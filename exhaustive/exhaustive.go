// Package exhaustive provides a brute-force k-coloring search used as a
// differential reference for package coloring.
//
// Search enumerates all k^N label assignments, so it is only practical for
// tiny graphs (k=3, N≤12 is already half a million candidates).
package exhaustive

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvcolor/core"
)

// DefaultColors is the conventional k for differential tests against the
// 3-coloring search.
const DefaultColors = 3

// ctxCheckEvery is how many candidates are tried between context checks.
const ctxCheckEvery = 1 << 10

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("exhaustive: graph is nil")

	// ErrBadColorCount is returned when k < 1.
	ErrBadColorCount = errors.New("exhaustive: color count must be positive")
)

// Colorings lazily yields every assignment of labels 0..k-1 to n vertices in
// odometer order: vertex n-1 varies fastest, vertex 0 slowest. For n=0 it
// yields one empty coloring. The yielded slice is reused between steps.
func Colorings(n, k int) iter.Seq[core.Coloring] {
	return func(yield func(core.Coloring) bool) {
		if n < 0 || k < 1 {
			return
		}
		c := make(core.Coloring, n)
		for {
			if !yield(c) {
				return
			}
			// Increment the odometer from the right.
			i := n - 1
			for i >= 0 && int(c[i]) == k-1 {
				c[i] = 0
				i--
			}
			if i < 0 {
				return
			}
			c[i]++
		}
	}
}

// Search tries every k-coloring of g in Colorings order and returns the
// first valid one, leaving it on g. If none is valid it resets g's colors
// and returns ok=false. ctx is checked every ctxCheckEvery candidates; on
// cancellation colors are reset and ctx.Err() returned.
func Search(ctx context.Context, g *core.Graph, k int) (core.Coloring, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if k < 1 {
		return nil, false, fmt.Errorf("Search(k=%d): %w", k, ErrBadColorCount)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := g.Order()
	tried := 0
	for c := range Colorings(n, k) {
		if tried%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				g.ResetColors()
				return nil, false, err
			}
		}
		tried++
		if err := g.SetColors(c); err != nil {
			g.ResetColors()
			return nil, false, fmt.Errorf("Search: %w", err)
		}
		if g.IsColoringValid() {
			return g.Colors(), true, nil
		}
	}

	g.ResetColors()

	return nil, false, nil
}
