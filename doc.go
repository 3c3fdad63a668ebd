// Package lvcolor decides small-k colorability of undirected graphs: exact
// 2-coloring by breadth-first search and 3-coloring by enumerating a locked
// independent class and 2-coloring the rest.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Graph over vertex indices 0..N-1 with a per-vertex color label
//	coloring/   - IsIndependentSet, TwoColor, ThreeColor, Combinations
//	exhaustive/ - brute-force k-coloring, the reference for differential tests
//	builder/    - deterministic fixtures: paths, cycles, wheels, grids, solids, G(n,p)
//	converters/ - YAML/JSON graph documents
//	metrics/    - Prometheus collectors fed by coloring hooks
//
// Quick start:
//
//	g, _ := builder.Build(builder.Cycle(5))
//	col, ok, err := coloring.ThreeColor(g)
//	// ok == true, col == [2 0 1 0 1], g.IsColoringValid() == true
//
// "No coloring" is reported as ok == false with a nil error and every
// vertex Uncolored; errors are reserved for invalid input and cancellation.
package lvcolor
