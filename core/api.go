// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of graph size and coloring progress.
type GraphStats struct {
	Order        int // number of vertices N
	EdgeCount    int // number of undirected edges
	Isolated     int // vertices with degree 0
	ColoredCount int // vertices with an assigned color
	MaxDegree    int // largest vertex degree (0 for N==0)
}

// Order returns the vertex count N.
//
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Stats produces a deterministic snapshot of sizes and degree figures.
// Coloring runs log it at debug level before searching.
//
// Complexity: O(N).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Order: len(g.adj), EdgeCount: g.edges}
	for u, nbrs := range g.adj {
		d := len(nbrs)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if g.colors[u].Assigned() {
			st.ColoredCount++
		}
	}

	return st
}

// inRange reports whether u is a valid vertex index. Caller holds mu.
func (g *Graph) inRange(u int) bool {
	return u >= 0 && u < len(g.adj)
}
