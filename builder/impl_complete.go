// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go - implementation of Complete(n) and CompleteBipartite(n1,n2).
//
// Contract:
//   • Complete: n ≥ 1; emits every pair {i,j}, i<j, in lexicographic order.
//   • CompleteBipartite: n1,n2 ≥ 1; left side base..base+n1-1, right side
//     base+n1..base+n1+n2-1; emits left-major order.
//
// Complexity:
//   • Complete: O(n) vertices + O(n²) edges.
//   • CompleteBipartite: O(n1+n2) vertices + O(n1·n2) edges.
//
// Coloring notes:
//   • χ(K_n) = n, so K_4 and above are never 3-colorable.
//   • K_{n1,n2} is bipartite.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, MethodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}

		left := addBlock(g, n1)
		right := addBlock(g, n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link(g, MethodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
