// Package core provides the thread-safe in-memory Graph used by the coloring
// algorithms of lvcolor.
//
// The Graph G = (V,E) is narrow:
//
//   - Undirected, unweighted, simple: no self-loops, no parallel edges.
//   - Vertices are the dense indices 0..N-1; AddNode appends index N.
//   - Adjacency is a neighbor set per vertex, kept symmetric by every mutation:
//     v ∈ adj[u] ⟺ u ∈ adj[v].
//   - Each vertex carries a Color label; Uncolored (-1) means "unassigned".
//     Labels below -1 are rejected with ErrInvalidColor.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n, WithEdges(rows), WithColors(cs)) (*Graph, error) // O(N+E), deep copies
//	Clone() *Graph                                               // O(N+E), colors included
//	Union(other, WithBridge(u, v)) (*Graph, error)               // O(N+E), colors NOT carried
//
//	// Structure
//	AddNode() int                 // O(1)
//	AddEdge(u, v int) error       // O(1); duplicate → ErrEdgeExists
//	RemoveEdge(u, v int) error    // O(1); absent → ErrEdgeNotFound
//	HasEdge(u, v int) bool        // O(1)
//	Neighbors(u) ([]int, error)   // O(d·log d), sorted
//	AdjacencyList() [][]int       // O(N+E), sorted snapshot
//	Edges() []Edge                // O(E·log E), U < V, sorted
//
//	// Colors
//	Colors() Coloring             // O(N) copy
//	SetColor / SetColors          // O(1) / O(N)
//	ResetColors()                 // O(N)
//	IsColoringValid() bool        // O(N+E)
//
// Validity:
//
//	A coloring is valid iff every vertex with at least one neighbor is
//	colored and colors[u] != colors[v] for every edge (u,v).
//
// Errors:
//
//	ErrNegativeOrder, ErrVertexOutOfRange, ErrLoopNotAllowed, ErrEdgeExists,
//	ErrEdgeNotFound, ErrMalformedEdges, ErrAsymmetricEdges, ErrMalformedColors,
//	ErrInvalidColor.
//
// Mutators do not return the graph for chaining; they mutate the receiver in
// place and report precondition violations as errors, which callers branch
// on with errors.Is. A violation leaves the graph unchanged, so these errors
// must not be discarded: a caller that drops the error from AddEdge,
// RemoveEdge, SetColor or SetColors has silently built a different graph
// than it asked for.
package core
