// File: methods_vertices.go
// Role: Vertex lifecycle & neighborhood queries: AddNode, Neighbors, Degree,
//       AdjacencyList.
// Determinism:
//   - Neighbors() and AdjacencyList() return neighbor indices sorted ascending.
// Concurrency:
//   - AddNode under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"slices"
)

// AddNode appends a new isolated, uncolored vertex and returns its index
// (the previous N).
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, make(map[int]struct{}))
	g.colors = append(g.colors, Uncolored)

	return len(g.adj) - 1
}

// Neighbors returns the neighbor indices of u in ascending order.
// Returns ErrVertexOutOfRange for an invalid index.
//
// Complexity: O(d·log d).
func (g *Graph) Neighbors(u int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}

	return sortedKeys(g.adj[u]), nil
}

// Degree returns the number of neighbors of u.
//
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrVertexOutOfRange)
	}

	return len(g.adj[u]), nil
}

// AdjacencyList returns a snapshot of the whole adjacency: row u holds the
// sorted neighbors of u. The result shares nothing with the graph.
//
// Complexity: O(N + E·log d).
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]int, len(g.adj))
	for u, nbrs := range g.adj {
		out[u] = sortedKeys(nbrs)
	}

	return out
}

// sortedKeys returns the members of set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for v := range set {
		keys = append(keys, v)
	}
	slices.Sort(keys)

	return keys
}
