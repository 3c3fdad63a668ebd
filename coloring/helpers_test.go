package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/core"
)

// graphOf builds an n-vertex graph from an edge list.
func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// build wraps builder.Build for tests.
func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.Build(cons...)
	require.NoError(t, err)
	return g
}

// petersen returns the Petersen graph (χ = 3).
func petersen(t testing.TB) *core.Graph {
	return graphOf(t, 10,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{0, 4},
		[2]int{0, 5}, [2]int{1, 6}, [2]int{2, 7}, [2]int{3, 8}, [2]int{4, 9},
		[2]int{5, 7}, [2]int{7, 9}, [2]int{6, 9}, [2]int{6, 8}, [2]int{5, 8},
	)
}

// grotzsch returns the Grötzsch graph: triangle-free with χ = 4.
func grotzsch(t testing.TB) *core.Graph {
	return graphOf(t, 11,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{0, 4},
		[2]int{1, 5}, [2]int{4, 5}, [2]int{0, 6}, [2]int{2, 6}, [2]int{1, 7},
		[2]int{3, 7}, [2]int{2, 8}, [2]int{4, 8}, [2]int{0, 9}, [2]int{3, 9},
		[2]int{5, 10}, [2]int{6, 10}, [2]int{7, 10}, [2]int{8, 10}, [2]int{9, 10},
	)
}

// allUncolored reports whether every label of g is core.Uncolored.
func allUncolored(g *core.Graph) bool {
	for _, c := range g.Colors() {
		if c.Assigned() {
			return false
		}
	}
	return true
}
