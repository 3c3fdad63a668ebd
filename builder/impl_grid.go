// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) is base + r*cols + c (row-major).
//   • For each cell in row-major order: Right edge, then Bottom edge.
//
// Complexity:
//   • Time: O(R·C) vertices + O(R·C) edges.
//   • Space: O(1) extra.
//
// Coloring notes:
//   • Grids are bipartite (checkerboard).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := addBlock(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				// Right neighbor (r, c+1).
				if c+1 < cols {
					if err := link(g, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				// Bottom neighbor (r+1, c).
				if r+1 < rows {
					if err := link(g, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
