// File: methods_colors.go
// Role: Color label state: Colors/Color/SetColor/SetColors/ResetColors and
//       the coloring validity check.
// Concurrency:
//   - Writers take the write lock; IsColoringValid and getters the read lock.

package core

import "fmt"

// Colors returns a copy of the current color array (length N).
//
// Complexity: O(N).
func (g *Graph) Colors() Coloring {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Coloring(g.colors).Clone()
}

// Color returns the label of vertex u.
func (g *Graph) Color(u int) (Color, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return Uncolored, fmt.Errorf("Color(%d): %w", u, ErrVertexOutOfRange)
	}

	return g.colors[u], nil
}

// SetColor assigns label c to vertex u. c must be a non-negative color id
// or Uncolored; anything else returns ErrInvalidColor.
func (g *Graph) SetColor(u int, c Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) {
		return fmt.Errorf("SetColor(%d): %w", u, ErrVertexOutOfRange)
	}
	if !c.Valid() {
		return fmt.Errorf("SetColor(%d, %d): %w", u, c, ErrInvalidColor)
	}
	g.colors[u] = c

	return nil
}

// SetColors replaces the whole color array with a copy of c.
// Returns ErrMalformedColors if len(c) != N and ErrInvalidColor if any
// label is below Uncolored; the graph is unchanged on error.
//
// Complexity: O(N).
func (g *Graph) SetColors(c Coloring) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(c) != len(g.adj) {
		return fmt.Errorf("SetColors(len=%d, N=%d): %w", len(c), len(g.adj), ErrMalformedColors)
	}
	if i := firstInvalid(c); i >= 0 {
		return fmt.Errorf("SetColors: colors[%d]=%d: %w", i, c[i], ErrInvalidColor)
	}
	copy(g.colors, c)

	return nil
}

// ResetColors marks every vertex Uncolored.
//
// Complexity: O(N).
func (g *Graph) ResetColors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for u := range g.colors {
		g.colors[u] = Uncolored
	}
}

// IsColoringValid reports whether the current labels form a proper coloring:
// every vertex with at least one neighbor is colored and no edge joins two
// equal labels. Isolated vertices may stay Uncolored.
//
// Complexity: O(N + E).
func (g *Graph) IsColoringValid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, nbrs := range g.adj {
		cu := g.colors[u]
		for v := range nbrs {
			cv := g.colors[v]
			if !cu.Assigned() || !cv.Assigned() {
				return false
			}
			if cu == cv {
				return false
			}
		}
	}

	return true
}
