// Package coloring decides 2- and 3-colorability of a core.Graph and
// computes a coloring when one exists.
//
// What
//
//   - IsIndependentSet: no two members of a vertex subset are adjacent.
//   - TwoColor: breadth-first 2-coloring with an optional locked vertex set.
//     Locked vertices carry LockedColor (2); the rest get {0,1}. Every
//     connected component is seeded from its smallest unvisited index, so
//     disconnected graphs and isolated vertices are handled.
//   - ThreeColor: tries TwoColor with no lock, then enumerates independent
//     locked sets of size up to ⌊N/3⌋ and delegates each to TwoColor.
//   - Combinations: lazy lexicographic k-subset enumeration (iter.Seq).
//
// Results
//
//	"No coloring" is a normal outcome, not an error:
//	    col, ok, err := coloring.ThreeColor(g)
//	    // ok == false, err == nil → none exists; g.Colors() all Uncolored.
//	err != nil only for nil graphs, out-of-range locked ids, invalid
//	options, and context cancellation.
//
// Safety net
//
//	TwoColor never compares two locked vertices during BFS. It therefore
//	finishes every successful pass with an exhaustive validity scan of g,
//	so a non-independent lock yields "no coloring" instead of a coloring
//	with two adjacent LockedColor vertices.
//
// Determinism
//
//	Adjacency is read as sorted neighbor lists and components are seeded
//	in index order, so equal graphs produce equal colorings.
//
// Complexity (N = vertices, E = edges)
//
//   - TwoColor:   O(N + E)
//   - ThreeColor: O(Σ_{s≤N/3} C(N,s) · (N + E)) worst case. Exponential in N;
//     bound long runs with WithContext(ctx) and a deadline.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked between locked sets.
//   - WithLogger(l):          zap logger for debug progress records.
//   - WithMaxLockedSize(k):   lower the ⌊N/3⌋ enumeration bound.
//   - WithOnStart / WithOnCandidate / WithOnAttempt / WithOnDone: hooks,
//     used by package metrics.
//
// Usage
//
//	col, ok, err := coloring.ThreeColor(g,
//	    coloring.WithContext(ctx),
//	    coloring.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation or ctx.Err()
//	}
//	if !ok {
//	    // not 3-colorable
//	}
package coloring
