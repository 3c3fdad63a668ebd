// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges.
// Determinism:
//   - Edges() returns edges sorted by (U,V) with U < V.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"slices"
)

// AddEdge inserts the undirected edge u-v.
//
// Duplicate insertion is a precondition violation and returns ErrEdgeExists;
// the graph is left untouched on every error.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrEdgeExists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrEdgeExists)
	}

	// Mirror both directions so symmetry holds.
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// RemoveEdge deletes the undirected edge u-v.
// Removing an absent edge returns ErrEdgeNotFound (no silent ignore).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}

	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edges--

	return nil
}

// HasEdge reports whether u and v are adjacent. Invalid indices yield false.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Edges returns every edge once, as (U,V) with U < V, sorted by U then V.
//
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})

	return out
}
