package coloring_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvcolor/coloring"
)

// collect drains a Combinations sequence, copying the reused buffer.
func collect(n, k int) [][]int {
	var out [][]int
	for s := range coloring.Combinations(n, k) {
		out = append(out, slices.Clone(s))
	}
	return out
}

func TestCombinations_Order(t *testing.T) {
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, collect(4, 2))
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
}

func TestCombinations_Counts(t *testing.T) {
	binom := func(n, k int) int {
		r := 1
		for i := 1; i <= k; i++ {
			r = r * (n - k + i) / i
		}
		return r
	}
	for n := 0; n <= 9; n++ {
		for k := 0; k <= n; k++ {
			got := collect(n, k)
			assert.Len(t, got, binom(n, k), "C(%d,%d)", n, k)
			for _, s := range got {
				assert.True(t, slices.IsSorted(s), "ascending tuple %v", s)
			}
		}
	}
}

func TestCombinations_EdgeCases(t *testing.T) {
	// k = 0 yields the empty set exactly once
	assert.Equal(t, [][]int{{}}, collect(5, 0))
	assert.Equal(t, [][]int{{}}, collect(0, 0))

	assert.Empty(t, collect(3, 4))
	assert.Empty(t, collect(3, -1))
	assert.Empty(t, collect(-1, 0))
}

func TestCombinations_RestartAndBreak(t *testing.T) {
	seq := coloring.Combinations(5, 2)

	var first []int
	for s := range seq {
		first = slices.Clone(s)
		break
	}
	assert.Equal(t, []int{0, 1}, first)

	// A fresh range starts over.
	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 10, n)
}
