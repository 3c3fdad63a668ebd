// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/core"
)

// TestConcurrentAddEdge adds a star's spokes from many goroutines and
// checks that every edge lands exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200 // number of concurrent adds
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(leaf int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, leaf))
		}(i)
	}
	wg.Wait()

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, deg)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentDuplicateAddEdge races the same edge; exactly one wins.
func TestConcurrentDuplicateAddEdge(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	const racers = 64
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			if g.AddEdge(0, 1) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, 1, g.EdgeCount())
}

// TestConcurrentNodesColorsAndClone mixes AddNode, color writes, reads and
// clones to verify no races or panics occur.
func TestConcurrentNodesColorsAndClone(t *testing.T) {
	g, err := core.NewGraph(10)
	require.NoError(t, err)

	const workers = 40
	var wg sync.WaitGroup
	wg.Add(3 * workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.AddNode()
		}()
		go func(id int) {
			defer wg.Done()
			_ = g.SetColor(id%10, core.Color(id%3))
			_ = g.IsColoringValid()
		}(i)
		go func() {
			defer wg.Done()
			c := g.Clone()
			require.Equal(t, c.Order(), len(c.Colors()))
		}()
	}
	wg.Wait()

	require.Equal(t, 10+workers, g.Order())
	require.Len(t, g.Colors(), 10+workers)
}
