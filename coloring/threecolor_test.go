package coloring_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/exhaustive"
)

func TestThreeColor_Errors(t *testing.T) {
	_, ok, err := coloring.ThreeColor(nil)
	assert.ErrorIs(t, err, coloring.ErrGraphNil)
	assert.False(t, ok)

	g := build(t, builder.Complete(3))
	_, _, err = coloring.ThreeColor(g, coloring.WithMaxLockedSize(-2))
	assert.ErrorIs(t, err, coloring.ErrOptionViolation)
	assert.True(t, allUncolored(g))
}

func TestThreeColor_Empty(t *testing.T) {
	col, ok, err := coloring.ThreeColor(graphOf(t, 0))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, col)
}

func TestThreeColor_Triangle(t *testing.T) {
	g := build(t, builder.Complete(3))
	col, ok, err := coloring.ThreeColor(g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, core.Coloring{2, 0, 1}, col)
	assert.Equal(t, 3, col.Distinct())
	assert.True(t, g.IsColoringValid())
}

// Bipartite graphs are answered by the empty lock: the result equals
// TwoColor's and no candidate set is ever enumerated.
func TestThreeColor_BipartiteMatchesTwoColor(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"grid": builder.Grid(3, 4),
		"cube": builder.PlatonicSolid(builder.Cube, false),
		"K2,5": builder.CompleteBipartite(2, 5),
		"C10":  builder.Cycle(10),
	} {
		g := build(t, ctor)
		two, ok, err := coloring.TwoColor(g, nil)
		require.NoError(t, err)
		require.True(t, ok)

		candidates := 0
		three, ok, err := coloring.ThreeColor(g,
			coloring.WithOnCandidate(func([]int, bool) { candidates++ }))
		require.NoError(t, err)
		require.True(t, ok, name)
		assert.Equal(t, two, three, name)
		assert.Zero(t, candidates, name)
		assert.NotContains(t, three, coloring.LockedColor, name)
	}
}

func TestThreeColor_ThreeChromatic(t *testing.T) {
	cases := map[string]*core.Graph{
		"C5":           build(t, builder.Cycle(5)),
		"C9":           build(t, builder.Cycle(9)),
		"W7":           build(t, builder.Wheel(7)),
		"octahedron":   build(t, builder.PlatonicSolid(builder.Octahedron, false)),
		"dodecahedron": build(t, builder.PlatonicSolid(builder.Dodecahedron, false)),
		"petersen":     petersen(t),
		"two blocks":   build(t, builder.Complete(3), builder.Grid(2, 2)),
	}
	for name, g := range cases {
		col, ok, err := coloring.ThreeColor(g)
		require.NoError(t, err, name)
		require.True(t, ok, name)
		assert.True(t, g.IsColoringValid(), name)
		assert.Equal(t, 3, col.Distinct(), name)
		assert.Equal(t, col, g.Colors(), name)
	}
}

func TestThreeColor_NotThreeColorable(t *testing.T) {
	cases := map[string]*core.Graph{
		"K4":              build(t, builder.Complete(4)),
		"W6":              build(t, builder.Wheel(6)),
		"icosahedron":     build(t, builder.PlatonicSolid(builder.Icosahedron, false)),
		"octahedron+ctr":  build(t, builder.PlatonicSolid(builder.Octahedron, true)),
		"grotzsch":        grotzsch(t),
		"K4 plus a path":  build(t, builder.Path(4), builder.Complete(4)),
		"K5 (bound 1)":    build(t, builder.Complete(5)),
		"tetrahedron+ctr": build(t, builder.PlatonicSolid(builder.Tetrahedron, true)),
	}
	for name, g := range cases {
		col, ok, err := coloring.ThreeColor(g)
		require.NoError(t, err, name)
		assert.False(t, ok, name)
		assert.Nil(t, col, name)
		assert.True(t, allUncolored(g), name)
	}
}

func TestThreeColor_MaxLockedSize(t *testing.T) {
	g := build(t, builder.Complete(3))
	_, ok, err := coloring.ThreeColor(g, coloring.WithMaxLockedSize(0))
	require.NoError(t, err)
	assert.False(t, ok, "only the empty lock is tried")

	// Larger caps are clamped to ⌊N/3⌋.
	var sizes []int
	_, ok, err = coloring.ThreeColor(build(t, builder.Complete(4)),
		coloring.WithMaxLockedSize(10),
		coloring.WithOnCandidate(func(s []int, _ bool) { sizes = append(sizes, len(s)) }))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []int{1, 1, 1, 1}, sizes)
}

func TestThreeColor_CandidateOrder(t *testing.T) {
	var seen [][]int
	var attempted [][]int
	_, ok, err := coloring.ThreeColor(build(t, builder.Wheel(6)),
		coloring.WithOnCandidate(func(s []int, _ bool) { seen = append(seen, slices.Clone(s)) }),
		coloring.WithOnAttempt(func(s []int, _ bool) { attempted = append(attempted, slices.Clone(s)) }),
	)
	require.NoError(t, err)
	require.False(t, ok)

	// N=6, bound 2: 6 singletons then C(6,2)=15 pairs, lexicographic.
	require.Len(t, seen, 21)
	assert.Equal(t, []int{0}, seen[0])
	assert.Equal(t, []int{5}, seen[5])
	assert.Equal(t, []int{0, 1}, seen[6])
	assert.Equal(t, []int{4, 5}, seen[20])

	// The empty lock comes first; only independent sets are attempted.
	assert.Empty(t, attempted[0])
	for _, s := range attempted[1:] {
		assert.True(t, coloring.IsIndependentSet(build(t, builder.Wheel(6)), s), "%v", s)
	}
}

func TestThreeColor_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, builder.Complete(4))
	_, _, err := coloring.ThreeColor(g, coloring.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// Cancel mid-search: observed at the next candidate boundary.
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	candidates := 0
	done := false
	g = grotzsch(t)
	_, ok, err := coloring.ThreeColor(g,
		coloring.WithContext(ctx),
		coloring.WithOnCandidate(func([]int, bool) {
			candidates++
			cancel()
		}),
		coloring.WithOnDone(func(bool) { done = true }),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Equal(t, 1, candidates)
	assert.False(t, done)
	assert.True(t, allUncolored(g))
}

func TestThreeColor_Logging(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	g := build(t, builder.Complete(3))
	_, ok, err := coloring.ThreeColor(g, coloring.WithLogger(zap.New(zc)))
	require.NoError(t, err)
	require.True(t, ok)

	started := logs.FilterMessage("three-coloring search started").All()
	require.Len(t, started, 1)
	assert.Equal(t, int64(3), started[0].ContextMap()["order"])
	assert.Equal(t, int64(1), started[0].ContextMap()["bound"])

	finished := logs.FilterMessage("three-coloring search finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(2), finished[0].ContextMap()["attempts"])

	// Info level hides the debug records.
	zc, logs = observer.New(zapcore.InfoLevel)
	_, _, err = coloring.ThreeColor(g, coloring.WithLogger(zap.New(zc)))
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

// DifferentialSuite checks ThreeColor against brute-force enumeration on
// seeded random graphs.
type DifferentialSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DifferentialSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *DifferentialSuite) check(g *core.Graph) {
	want, wantOK, err := exhaustive.Search(s.ctx, g.Clone(), exhaustive.DefaultColors)
	s.Require().NoError(err)

	col, ok, err := coloring.ThreeColor(g)
	s.Require().NoError(err)
	s.Require().Equal(wantOK, ok, "edges %v (oracle %v)", g.Edges(), want)
	if !ok {
		s.True(allUncolored(g))
		return
	}
	s.True(g.IsColoringValid())
	for _, c := range col {
		s.Contains([]core.Color{0, 1, 2}, c)
	}
}

func (s *DifferentialSuite) TestRandomSparse() {
	for seed := int64(1); seed <= 20; seed++ {
		for n := 1; n <= 8; n++ {
			for _, p := range []float64{0.25, 0.45, 0.7} {
				g, err := builder.BuildGraph(
					[]builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomSparse(n, p),
				)
				s.Require().NoError(err)
				s.check(g)
			}
		}
	}
}

func (s *DifferentialSuite) TestNamedGraphs() {
	for _, g := range []*core.Graph{
		build(s.T(), builder.Wheel(5)),
		build(s.T(), builder.Wheel(6)),
		build(s.T(), builder.Complete(4)),
		build(s.T(), builder.PlatonicSolid(builder.Octahedron, true)),
		build(s.T(), builder.Cycle(7), builder.Star(3)),
	} {
		s.check(g)
	}
}

func TestDifferentialSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("brute-force comparison skipped in -short mode")
	}
	suite.Run(t, new(DifferentialSuite))
}
