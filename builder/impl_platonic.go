// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation.
//   • Appends shell vertices base..base+V-1 and emits shell edges in the
//     pre-sorted dataset order.
//   • If withCenter == true, appends a hub at base+V and spokes to every
//     shell vertex in ascending order.
//
// Complexity:
//   • Time: O(V+E) for the selected solid (V≤20, E≤30).
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
//
// A hub raises the chromatic number by one, so e.g. an Octahedron with
// center is a compact 4-chromatic instance.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %q: %w", MethodPlatonicSolid, name, ErrConstructFailed)
		}

		base := addBlock(g, n)
		for _, ch := range edges {
			if err := link(g, MethodPlatonicSolid, base+ch.U, base+ch.V); err != nil {
				return err
			}
		}

		if !withCenter {
			return nil
		}
		hub := g.AddNode()
		for i := 0; i < n; i++ {
			if err := link(g, MethodPlatonicSolid, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
