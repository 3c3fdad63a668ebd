// Package builder provides deterministic, composable constructors for the
// canonical test topologies used to exercise graph coloring: paths, cycles,
// stars, wheels, complete and complete bipartite graphs, grids, Platonic
// solids and Erdős–Rényi random graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:  func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:   creates an empty graph and applies constructors in order.
//     – Build:        BuildGraph without options.
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG used by RandomSparse.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinGridDim, ...
//     – MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens used as error context.
//
// Guarantees:
//
//   - Every constructor appends a fresh block of vertices, so composing
//     several constructors in one BuildGraph call yields their disjoint union.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation) wrapped with
//     the constructor name.
//   - Same inputs, seed and constructor order ⇒ identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(5),
//		builder.RandomSparse(12, 0.25),
//	)
package builder
