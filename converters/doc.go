// Package converters moves graphs between core.Graph and plain YAML/JSON
// documents, so coloring fixtures and results can live in files.
//
// A document lists the vertex count, the undirected edges as index pairs,
// and optionally one color per vertex (null for an uncolored vertex):
//
//	order: 3
//	edges: [[0, 1], [1, 2]]
//	colors: [0, 1, null]
//
// Decoding rebuilds the graph through the core mutators, so every core
// precondition applies: out-of-range endpoints, self-loops and duplicate
// edges are rejected with the matching core sentinel.
package converters
