// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_cycle.go - implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3, Path: n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices base..base+n-1.
//   • Emits edges in stable order i-(i+1) (Cycle closes with (n-1)-0).
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.
//
// Coloring notes:
//   • Paths and even cycles are bipartite; odd cycles need exactly 3 colors.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := checkMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		base := addBlock(g, n)

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := link(g, MethodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		for i := 0; i+1 < n; i++ {
			if err := link(g, MethodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
