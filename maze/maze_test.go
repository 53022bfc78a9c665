package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/maze"
	"github.com/katalvlaran/lvlath-maze/search"
)

// TestNew_Idle checks the pre-generation state and its guards.
func TestNew_Idle(t *testing.T) {
	m := maze.New(maze.WithSeed(1))
	assert.Equal(t, maze.ModeIdle, m.Mode())
	assert.Equal(t, "Idle", m.Title())
	assert.Nil(t, m.Snapshot())
	assert.Nil(t, m.Route())
	assert.True(t, m.ShowVisited())

	requirePanicIs(t, maze.ErrNoMaze, func() { m.Advance() })
	requirePanicIs(t, maze.ErrNoMaze, func() { m.SetMode(maze.ModeSearchBFS) })
	requirePanicIs(t, maze.ErrNoMaze, func() { m.QueryCell(0, 0) })
	requirePanicIs(t, maze.ErrNoMaze, func() { m.Rebias(gridgraph.BiasVertical) })
	requirePanicIs(t, maze.ErrNotTraversing, func() { m.RequestMove(gridgraph.East) })
}

// TestRegenerate_InvalidSize panics with gridgraph.ErrInvalidSize.
func TestRegenerate_InvalidSize(t *testing.T) {
	m := maze.New(maze.WithSeed(1))
	requirePanicIs(t, gridgraph.ErrInvalidSize, func() { m.Regenerate(0, 5, gridgraph.BiasNone, nil) })
	requirePanicIs(t, gridgraph.ErrInvalidSize, func() { m.Regenerate(5, -1, gridgraph.BiasNone, nil) })
	assert.Equal(t, maze.ModeIdle, m.Mode())
}

// TestRegenerate_Snapshot: every size yields a connected tree of w·h−1 edges
// and a valid route from the top-left to the bottom-right corner.
func TestRegenerate_Snapshot(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {5, 5}, {12, 8}, {30, 3}}
	for _, sz := range sizes {
		m := maze.New(maze.WithSeed(int64(sz.w*100 + sz.h)))
		snap := m.Regenerate(sz.w, sz.h, gridgraph.BiasNone, nil)

		assert.Equal(t, maze.ModeMazeBuild, m.Mode())
		assert.Equal(t, "Maze Construction", m.Title())
		assert.Len(t, snap.Tree, sz.w*sz.h-1)
		assert.Equal(t, 2*sz.w*sz.h-sz.w-sz.h, snap.TotalEdges)
		assert.Equal(t, cell{0, 0}, snap.Start)
		assert.Equal(t, cell{sz.h - 1, sz.w - 1}, snap.End)

		g, open := treeOf(t, snap)
		assert.True(t, g.Connected(open), "%dx%d", sz.w, sz.h)

		var sum int64
		for _, e := range snap.Tree {
			sum += e.Weight
		}
		assert.Equal(t, snap.TotalWeight, sum)

		route := snap.Route
		require.NotEmpty(t, route)
		assert.Equal(t, snap.Start, route[0])
		assert.Equal(t, snap.End, route[len(route)-1])
		for i := 1; i < len(route); i++ {
			e, ok := g.EdgeBetween(route[i-1], route[i])
			require.True(t, ok)
			assert.True(t, open.Contains(e.ID))
		}
	}
}

// TestRegenerate_Deterministic: the same seed reproduces the same maze, but
// every generation gets its own ID.
func TestRegenerate_Deterministic(t *testing.T) {
	a := maze.New().Regenerate(9, 6, gridgraph.BiasHorizontal, rand.New(rand.NewSource(42)))
	b := maze.New().Regenerate(9, 6, gridgraph.BiasHorizontal, rand.New(rand.NewSource(42)))

	assert.Equal(t, a.Tree, b.Tree)
	assert.Equal(t, a.Route, b.Route)
	assert.NotEqual(t, a.ID, b.ID)
}

// TestRegenerate_SearchOrderAgrees: the route is the tree's unique path
// whichever order computes it.
func TestRegenerate_SearchOrderAgrees(t *testing.T) {
	bfs := maze.New(maze.WithSeed(3), maze.WithSearchOrder(search.BreadthFirst)).Regenerate(10, 10, gridgraph.BiasNone, nil)
	dfs := maze.New(maze.WithSeed(3), maze.WithSearchOrder(search.DepthFirst)).Regenerate(10, 10, gridgraph.BiasNone, nil)
	assert.Equal(t, bfs.Route, dfs.Route)
}

// TestResize_Clamps and Rebias keep the other dimension of the configuration.
func TestResize_Rebias(t *testing.T) {
	m := maze.New(maze.WithSeed(8))
	snap := m.Resize(2, 9)
	assert.Equal(t, maze.MinSide, snap.Width)
	assert.Equal(t, 9, snap.Height)

	snap = m.Rebias(gridgraph.BiasVertical)
	assert.Equal(t, gridgraph.BiasVertical, snap.Bias)
	assert.Equal(t, maze.MinSide, snap.Width)
	assert.Equal(t, 9, snap.Height)

	snap = m.Resize(7, 1)
	assert.Equal(t, gridgraph.BiasVertical, snap.Bias, "resize keeps the bias")
	assert.Equal(t, 7, snap.Width)
	assert.Equal(t, maze.MinSide, snap.Height)
	assert.Equal(t, maze.ModeMazeBuild, m.Mode())
}

// TestSnapshot_IsCopy: mutating a returned snapshot does not leak back.
func TestSnapshot_IsCopy(t *testing.T) {
	m := generated(t, 5, 5, 2)
	s := m.Snapshot()
	s.Route[0] = cell{4, 4}
	s.Tree[0].Weight = -1
	assert.Equal(t, cell{0, 0}, m.Snapshot().Route[0])
	assert.Equal(t, cell{0, 0}, m.Route()[0])
	assert.NotEqual(t, int64(-1), m.Snapshot().Tree[0].Weight)
}

// TestBuildReplay reveals the tree edge by edge and hands over to the user.
func TestBuildReplay(t *testing.T) {
	m := generated(t, 6, 5, 4)
	snap := m.Snapshot()

	for r := 0; r < snap.Height; r++ {
		for c := 0; c < snap.Width; c++ {
			assert.Equal(t, [4]bool{}, m.QueryCell(r, c).Open, "nothing revealed yet")
		}
	}

	var revealed []gridgraph.Edge
	for i := range snap.Tree {
		res := m.Advance()
		require.True(t, res.Changed)
		revealed = append(revealed, res.Edge)
		last := i == len(snap.Tree)-1
		assert.Equal(t, last, res.Transitioned, "step %d", i)
		if !last {
			assert.Equal(t, maze.ModeMazeBuild, res.Mode)
		}

		e := res.Edge
		d := dirTo(t, e.A, e.B)
		assert.True(t, m.QueryCell(e.A.Row, e.A.Col).Open[d])
		assert.True(t, m.QueryCell(e.B.Row, e.B.Col).Open[d.Opposite()])
	}
	assert.Equal(t, snap.Tree, revealed)
	assert.Equal(t, maze.ModeUserTraversal, m.Mode())
	assert.Equal(t, "User", m.Title())
	assert.Equal(t, snap.Start, m.Position())
	assert.True(t, m.QueryCell(0, 0).Current)
}

// TestBuildReplay_SingleCell: with no edges to reveal the first Advance only
// transitions.
func TestBuildReplay_SingleCell(t *testing.T) {
	m := generated(t, 1, 1, 1)
	res := m.Advance()
	assert.False(t, res.Changed)
	assert.True(t, res.Transitioned)
	assert.Equal(t, maze.ModeUserTraversal, res.Mode)
}

// TestBuildReplay_LocksModes: mode requests and the toggle are ignored until
// construction finishes.
func TestBuildReplay_LocksModes(t *testing.T) {
	m := generated(t, 5, 5, 6)
	m.Advance()

	assert.False(t, m.SetMode(maze.ModeSearchBFS))
	assert.False(t, m.ShowGradient(cell{0, 0}))
	assert.False(t, m.ToggleShowVisited())
	assert.Equal(t, maze.ModeMazeBuild, m.Mode())
	assert.True(t, m.ShowVisited())
}

// TestSetMode_Rebuild replays construction of the same maze.
func TestSetMode_Rebuild(t *testing.T) {
	m := built(t, 5, 6, 9)
	before := m.Snapshot()

	require.True(t, m.SetMode(maze.ModeMazeBuild))
	assert.Equal(t, maze.ModeMazeBuild, m.Mode())
	assert.Equal(t, [4]bool{}, m.QueryCell(2, 2).Open)
	assert.Equal(t, before.ID, m.Snapshot().ID)
}

// TestSetMode_Idle panics.
func TestSetMode_Idle(t *testing.T) {
	m := built(t, 5, 5, 1)
	requirePanicIs(t, maze.ErrIdleRequested, func() { m.SetMode(maze.ModeIdle) })
}

// TestQueryCell_Flags covers start/end and bounds.
func TestQueryCell_Flags(t *testing.T) {
	m := built(t, 5, 7, 3)
	assert.True(t, m.QueryCell(0, 0).Start)
	assert.True(t, m.QueryCell(6, 4).End)
	assert.False(t, m.QueryCell(6, 4).Start)
	assert.Equal(t, maze.NoBand, m.QueryCell(1, 1).GradientBand)

	requirePanicIs(t, maze.ErrCellOutOfRange, func() { m.QueryCell(7, 0) })
	requirePanicIs(t, maze.ErrCellOutOfRange, func() { m.QueryCell(0, -1) })
}

// TestMode_String covers titles.
func TestMode_String(t *testing.T) {
	cases := map[maze.Mode]string{
		maze.ModeIdle:          "Idle",
		maze.ModeMazeBuild:     "Maze Construction",
		maze.ModeSearchBFS:     "Breadth-First Search",
		maze.ModeSearchDFS:     "Depth-First Search",
		maze.ModePathReplay:    "Path Replay",
		maze.ModeUserTraversal: "User",
		maze.ModeGradient:      "Color Gradient",
		maze.Mode(42):          "mode(42)",
	}
	for mode, want := range cases {
		assert.Equal(t, want, mode.String())
	}
	assert.True(t, maze.ModeSearchDFS.Searching())
	assert.False(t, maze.ModePathReplay.Searching())
}
