package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/maze"
	"github.com/katalvlaran/lvlath-maze/search"
)

// TestSearchReplay reveals the exact trace of an independent search, counts
// steps and wrong moves, and hands over to path replay on the last cell.
func TestSearchReplay(t *testing.T) {
	cases := []struct {
		mode  maze.Mode
		order search.Order
		title string
	}{
		{maze.ModeSearchBFS, search.BreadthFirst, "Breadth-First Search"},
		{maze.ModeSearchDFS, search.DepthFirst, "Depth-First Search"},
	}
	for _, tc := range cases {
		t.Run(tc.order.String(), func(t *testing.T) {
			m := built(t, 8, 7, 21)
			snap := m.Snapshot()
			g, open := treeOf(t, snap)
			want, err := search.Run(g, open, snap.Start, snap.End, search.WithOrder(tc.order))
			require.NoError(t, err)

			onRoute := map[cell]bool{}
			for _, c := range snap.Route {
				onRoute[c] = true
			}

			require.True(t, m.SetMode(tc.mode))
			assert.Equal(t, tc.mode, m.Mode())
			assert.Equal(t, tc.title, m.Title())
			assert.Equal(t, maze.Metrics{}, m.Metrics())

			wrong := 0
			for i, c := range want.Visits {
				res := m.Advance()
				require.True(t, res.Changed)
				assert.Equal(t, c, res.Cell, "visit %d", i)
				assert.Equal(t, !onRoute[c], res.WrongMove, "visit %d", i)
				if !onRoute[c] {
					wrong++
				}
				assert.True(t, m.QueryCell(c.Row, c.Col).Visited)

				last := i == len(want.Visits)-1
				assert.Equal(t, last, res.Transitioned)
				if last {
					assert.Equal(t, maze.ModePathReplay, res.Mode)
				} else {
					assert.Equal(t, tc.mode, res.Mode)
				}
			}
			assert.Equal(t, maze.Metrics{Steps: len(want.Visits), WrongMoves: wrong}, m.Metrics())
			assert.Equal(t, tc.title, m.Title(), "automatic transition keeps the caption")
		})
	}
}

// TestSearchReplay_HiddenVisited skips straight to path replay.
func TestSearchReplay_HiddenVisited(t *testing.T) {
	m := built(t, 6, 6, 5, maze.WithShowVisited(false))
	require.True(t, m.SetMode(maze.ModeSearchDFS))
	assert.Equal(t, maze.ModePathReplay, m.Mode())
	assert.Equal(t, "Depth-First Search", m.Title())
	assert.Equal(t, maze.Metrics{}, m.Metrics())
}

// TestPathReplay reveals the route start first and then stays finished.
func TestPathReplay(t *testing.T) {
	m := built(t, 7, 5, 13)
	route := m.Route()
	require.True(t, m.SetMode(maze.ModePathReplay))
	assert.Equal(t, "Path Replay", m.Title())

	for i, c := range route {
		assert.False(t, m.QueryCell(c.Row, c.Col).OnFinalPath)
		res := m.Advance()
		require.True(t, res.Changed)
		assert.Equal(t, c, res.Cell)
		assert.True(t, m.QueryCell(c.Row, c.Col).OnFinalPath)
		assert.Equal(t, i == len(route)-1, res.Finished)
	}
	assert.True(t, m.Finished())

	res := m.Advance()
	assert.False(t, res.Changed)
	assert.True(t, res.Finished)
	assert.Equal(t, maze.ModePathReplay, res.Mode)
}

// TestSearchThenPath keeps the search counters through path replay.
func TestSearchThenPath(t *testing.T) {
	m := built(t, 5, 5, 77)
	require.True(t, m.SetMode(maze.ModeSearchBFS))
	for m.Mode() == maze.ModeSearchBFS {
		m.Advance()
	}
	after := m.Metrics()
	for !m.Finished() {
		m.Advance()
	}
	assert.Equal(t, after, m.Metrics())
	assert.Greater(t, after.Steps, 0)
}

// TestAdvance_NoOps in traversal and gradient modes.
func TestAdvance_NoOps(t *testing.T) {
	m := built(t, 5, 5, 2)
	res := m.Advance()
	assert.Equal(t, maze.StepResult{Mode: maze.ModeUserTraversal}, res)
	assert.Equal(t, m.Snapshot().Start, m.Position())

	require.True(t, m.SetMode(maze.ModeGradient))
	res = m.Advance()
	assert.Equal(t, maze.StepResult{Mode: maze.ModeGradient}, res)
}

// TestToggleShowVisited is allowed outside search and gradient and only
// changes what QueryCell reports.
func TestToggleShowVisited(t *testing.T) {
	m := built(t, 6, 6, 31)
	require.True(t, m.SetMode(maze.ModeSearchDFS))
	m.Advance()
	assert.False(t, m.ToggleShowVisited(), "locked during search replay")

	for m.Mode() != maze.ModePathReplay {
		m.Advance()
	}
	start := m.Snapshot().Start
	assert.True(t, m.QueryCell(start.Row, start.Col).Visited)

	require.True(t, m.ToggleShowVisited())
	assert.False(t, m.ShowVisited())
	assert.False(t, m.QueryCell(start.Row, start.Col).Visited)
	require.True(t, m.ToggleShowVisited())
	assert.True(t, m.QueryCell(start.Row, start.Col).Visited)

	require.True(t, m.SetMode(maze.ModeGradient))
	assert.False(t, m.ToggleShowVisited(), "locked during gradient")

	require.True(t, m.SetMode(maze.ModeUserTraversal))
	assert.True(t, m.ToggleShowVisited())
}

// TestRegenerate_ResetsReplay: a regeneration mid-replay discards progress.
func TestRegenerate_ResetsReplay(t *testing.T) {
	m := built(t, 6, 6, 1)
	require.True(t, m.SetMode(maze.ModeSearchBFS))
	m.Advance()
	m.Advance()

	m.Regenerate(5, 5, gridgraph.BiasVertical, nil)
	assert.Equal(t, maze.ModeMazeBuild, m.Mode())
	assert.Equal(t, maze.Metrics{}, m.Metrics())
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			v := m.QueryCell(r, c)
			assert.False(t, v.Visited)
			assert.False(t, v.OnFinalPath)
		}
	}
}
