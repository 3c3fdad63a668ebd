// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go - implementation of Wheel(n) and Star(n) constructors.
//
// Canonical definitions:
//   • Wₙ = Cₙ₋₁ + hub: rim base..base+n-2, hub base+n-1 (n ≥ 4).
//   • Star Sₙ: hub base, leaves base+1..base+n-1 (n ≥ 2).
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.
//
// Coloring notes:
//   • Stars are bipartite.
//   • Odd rims (even n) make the wheel 4-chromatic; even rims make it 3-colorable.

package builder

import "github.com/katalvlaran/lvcolor/core"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		// Build the rim first so it occupies base..base+n-2.
		base := g.Order()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return err
		}
		hub := g.AddNode()

		// Spokes in ascending rim order.
		for i := 0; i < n-1; i++ {
			if err := link(g, MethodWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		hub := addBlock(g, n)
		for i := 1; i < n; i++ {
			if err := link(g, MethodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
