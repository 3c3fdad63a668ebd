// Package core defines the central Graph type for small-k coloring:
// an undirected simple graph over vertex indices 0..N-1 with a per-vertex
// color label array.
//
// All Graph methods take a single sync.RWMutex internally, so a Graph can be
// queried and mutated across goroutines. A coloring run (package coloring)
// snapshots adjacency once, so callers must not mutate the structure of a
// graph while a coloring run on it is in progress.
//
// This file declares Color, Coloring, Edge, Graph, GraphOption, sentinel
// errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeOrder     - vertex count below zero.
//	ErrVertexOutOfRange  - vertex index outside [0,N).
//	ErrLoopNotAllowed    - edge from a vertex to itself.
//	ErrEdgeExists        - edge already present (duplicate insertion).
//	ErrEdgeNotFound      - edge to remove is absent.
//	ErrMalformedEdges    - initial adjacency length differs from N.
//	ErrAsymmetricEdges   - initial adjacency is not symmetric.
//	ErrMalformedColors   - color array length differs from N.
//	ErrInvalidColor      - negative label other than Uncolored.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a negative vertex count passed to NewGraph.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0,N).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates AddEdge was called for an already adjacent pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrMalformedEdges indicates the initial adjacency does not have N rows.
	ErrMalformedEdges = errors.New("core: adjacency length does not match vertex count")

	// ErrAsymmetricEdges indicates v ∈ edges[u] without u ∈ edges[v].
	ErrAsymmetricEdges = errors.New("core: adjacency is not symmetric")

	// ErrMalformedColors indicates a color array whose length is not N.
	ErrMalformedColors = errors.New("core: color array length does not match vertex count")

	// ErrInvalidColor indicates a label below Uncolored.
	ErrInvalidColor = errors.New("core: color must be non-negative or Uncolored")
)

// Color is a vertex color label. Non-negative values are color ids;
// Uncolored marks a vertex without an assigned color.
type Color int

// Uncolored is the label of a vertex that has no color assigned.
const Uncolored Color = -1

// Assigned reports whether c is a real color id.
func (c Color) Assigned() bool { return c >= 0 }

// Valid reports whether c may be stored on a vertex: a color id or Uncolored.
func (c Color) Valid() bool { return c >= Uncolored }

// firstInvalid returns the index of the first label that is not Valid, or -1.
func firstInvalid(cs []Color) int {
	for i, c := range cs {
		if !c.Valid() {
			return i
		}
	}

	return -1
}

// Coloring is a color assignment indexed by vertex.
type Coloring []Color

// Clone returns an independent copy of c (nil stays nil).
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	out := make(Coloring, len(c))
	copy(out, c)

	return out
}

// Distinct returns the number of distinct assigned colors in c.
func (c Coloring) Distinct() int {
	seen := make(map[Color]struct{}, 3)
	for _, col := range c {
		if col.Assigned() {
			seen[col] = struct{}{}
		}
	}

	return len(seen)
}

// Edge is an undirected edge reported with U < V.
type Edge struct {
	U int
	V int
}

// GraphOption configures the initial contents of a Graph in NewGraph.
type GraphOption func(c *graphConfig)

// graphConfig collects initial contents before validation.
type graphConfig struct {
	edges  [][]int
	colors []Color
}

// WithEdges seeds the adjacency: edges[u] lists the neighbors of u.
// The slice is deep-copied; it must have exactly N rows and be symmetric.
func WithEdges(edges [][]int) GraphOption {
	return func(c *graphConfig) { c.edges = edges }
}

// WithColors seeds the color array. It is copied; its length must be N.
func WithColors(colors []Color) GraphOption {
	return func(c *graphConfig) { c.colors = colors }
}

// Graph is an undirected simple graph on vertices 0..N-1 carrying a color
// label per vertex.
//
// adj[u] is the neighbor set of u; v ∈ adj[u] ⟺ u ∈ adj[v] and u ∉ adj[u]
// hold after every mutation. colors always has length N.
type Graph struct {
	mu sync.RWMutex // guards everything below

	adj    []map[int]struct{} // vertex → neighbor set
	colors []Color            // vertex → label (Uncolored if none)
	edges  int                // undirected edge count
}

// NewGraph creates a Graph with n vertices, optionally seeded via WithEdges
// and WithColors. Seeds are deep-copied and never aliased.
// Without WithColors every vertex starts Uncolored.
//
// Errors: ErrNegativeOrder, ErrMalformedEdges, ErrVertexOutOfRange,
// ErrLoopNotAllowed, ErrAsymmetricEdges, ErrMalformedColors, ErrInvalidColor.
//
// Complexity: O(N + E).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		adj:    make([]map[int]struct{}, n),
		colors: make([]Color, n),
	}
	for u := 0; u < n; u++ {
		g.adj[u] = make(map[int]struct{})
		g.colors[u] = Uncolored
	}

	if cfg.edges != nil {
		if err := g.seedEdges(cfg.edges); err != nil {
			return nil, err
		}
	}
	if cfg.colors != nil {
		if len(cfg.colors) != n {
			return nil, ErrMalformedColors
		}
		if firstInvalid(cfg.colors) >= 0 {
			return nil, ErrInvalidColor
		}
		copy(g.colors, cfg.colors)
	}

	return g, nil
}

// seedEdges copies an adjacency list into the fresh graph g and verifies
// range, loop and symmetry constraints. Repeated entries within one row
// collapse into a single neighbor.
func (g *Graph) seedEdges(edges [][]int) error {
	n := len(g.adj)
	if len(edges) != n {
		return ErrMalformedEdges
	}
	var u, v int
	for u = 0; u < n; u++ {
		for _, v = range edges[u] {
			if v < 0 || v >= n {
				return ErrVertexOutOfRange
			}
			if v == u {
				return ErrLoopNotAllowed
			}
			g.adj[u][v] = struct{}{}
		}
	}
	// Symmetry check and edge count on the copied sets.
	half := 0
	for u = 0; u < n; u++ {
		for v = range g.adj[u] {
			if _, ok := g.adj[v][u]; !ok {
				return ErrAsymmetricEdges
			}
			half++
		}
	}
	g.edges = half / 2

	return nil
}
