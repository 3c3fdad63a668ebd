// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name and %w.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// addBlock appends n fresh vertices to g and returns the index of the first.
// Constructors address their own vertices as base+i, so several constructors
// in one BuildGraph call produce a disjoint union.
//
// Complexity: O(n) time, O(1) extra space.
func addBlock(g *core.Graph, n int) int {
	base := g.Order()
	for i := 0; i < n; i++ {
		g.AddNode()
	}

	return base
}

// link adds the edge u-v, wrapping failures with the method context and
// ErrConstructFailed while keeping the core sentinel reachable.
func link(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

// checkMin validates n ≥ minimum for the given method.
func checkMin(method, param string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, n, minimum, ErrTooFewVertices)
	}

	return nil
}
