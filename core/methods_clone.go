// File: methods_clone.go
// Role: Derived constructions: Clone (deep copy) and Union (disjoint union
//       with an optional bridge edge).
// Concurrency:
//   - Read locks on the sources; the result is a fresh, unshared Graph.
// Notes:
//   - Union does NOT carry colors over; the result starts fully Uncolored.

package core

import "fmt"

// Clone returns an independent deep copy: adjacency sets and color labels
// are duplicated, so mutating either graph never affects the other.
//
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	clone := &Graph{
		adj:    make([]map[int]struct{}, n),
		colors: make([]Color, n),
		edges:  g.edges,
	}
	for u, nbrs := range g.adj {
		clone.adj[u] = make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			clone.adj[u][v] = struct{}{}
		}
	}
	copy(clone.colors, g.colors)

	return clone
}

// UnionOption configures Union.
type UnionOption func(c *unionConfig)

type unionConfig struct {
	bridge  bool
	bridgeU int
	bridgeV int
}

// WithBridge joins vertex u of the receiver and vertex v of the other graph
// (in the other graph's own numbering) with one edge in the union.
func WithBridge(u, v int) UnionOption {
	return func(c *unionConfig) {
		c.bridge = true
		c.bridgeU, c.bridgeV = u, v
	}
}

// Union returns the disjoint union of g and other. Vertices of other are
// renumbered by +g.Order(). With WithBridge a single edge joins the halves.
//
// The union carries no colors: every vertex of the result is Uncolored,
// whatever either source held. It is a graph-building helper, not a combinator
// for colored graphs.
//
// Errors: ErrVertexOutOfRange if a bridge endpoint is invalid on its side.
//
// Complexity: O(N1 + N2 + E1 + E2).
func (g *Graph) Union(other *Graph, opts ...UnionOption) (*Graph, error) {
	var cfg unionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	left := g.AdjacencyList()
	var right [][]int
	if other != nil {
		right = other.AdjacencyList()
	}
	offset := len(left)

	if cfg.bridge {
		if cfg.bridgeU < 0 || cfg.bridgeU >= len(left) || cfg.bridgeV < 0 || cfg.bridgeV >= len(right) {
			return nil, fmt.Errorf("Union: bridge (%d,%d): %w", cfg.bridgeU, cfg.bridgeV, ErrVertexOutOfRange)
		}
	}

	// Shift the right half into [offset, offset+len(right)).
	rows := make([][]int, 0, offset+len(right))
	rows = append(rows, left...)
	for _, nbrs := range right {
		shifted := make([]int, len(nbrs))
		for i, v := range nbrs {
			shifted[i] = v + offset
		}
		rows = append(rows, shifted)
	}

	u, err := NewGraph(len(rows), WithEdges(rows))
	if err != nil {
		return nil, fmt.Errorf("Union: %w", err)
	}
	if cfg.bridge {
		if err = u.AddEdge(cfg.bridgeU, cfg.bridgeV+offset); err != nil {
			return nil, fmt.Errorf("Union: %w", err)
		}
	}

	return u, nil
}
