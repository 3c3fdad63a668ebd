// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvcolor/core"
)

// BenchmarkAddEdge measures adding edges of a long path.
func BenchmarkAddEdge(b *testing.B) {
	g, _ := core.NewGraph(b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i, i+1)
	}
}

// benchGrid builds an r×c 4-neighborhood grid directly on core.
func benchGrid(r, c int) *core.Graph {
	g, _ := core.NewGraph(r * c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			id := i*c + j
			if j+1 < c {
				_ = g.AddEdge(id, id+1)
			}
			if i+1 < r {
				_ = g.AddEdge(id, id+c)
			}
		}
	}

	return g
}

// BenchmarkIsColoringValid scans a 100×100 grid with a checkerboard coloring.
func BenchmarkIsColoringValid(b *testing.B) {
	const side = 100
	g := benchGrid(side, side)
	cols := make(core.Coloring, side*side)
	for i := range cols {
		cols[i] = core.Color((i/side + i%side) % 2)
	}
	_ = g.SetColors(cols)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !g.IsColoringValid() {
			b.Fatal("checkerboard must be valid")
		}
	}
}

// BenchmarkClone measures the deep copy of a 100×100 grid.
func BenchmarkClone(b *testing.B) {
	g := benchGrid(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
