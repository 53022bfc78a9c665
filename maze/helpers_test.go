package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/maze"
)

type cell = gridgraph.Cell

// requirePanicIs runs fn and expects it to panic with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

// generated returns a seeded maze that has just been regenerated.
func generated(t *testing.T, w, h int, seed int64, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m := maze.New(append([]maze.Option{maze.WithSeed(seed)}, opts...)...)
	m.Regenerate(w, h, gridgraph.BiasNone, nil)
	require.Equal(t, maze.ModeMazeBuild, m.Mode())

	return m
}

// built returns a seeded maze whose construction replay has completed.
func built(t *testing.T, w, h int, seed int64, opts ...maze.Option) *maze.Maze {
	t.Helper()
	m := generated(t, w, h, seed, opts...)
	for i := 0; m.Mode() == maze.ModeMazeBuild; i++ {
		require.Less(t, i, w*h, "construction replay does not terminate")
		m.Advance()
	}
	require.Equal(t, maze.ModeUserTraversal, m.Mode())

	return m
}

// treeOf rebuilds the snapshot's grid and spanning tree as an open-edge set.
// Build enumerates edges identically for any weight function, so the IDs match.
func treeOf(t *testing.T, snap *maze.Snapshot) (*gridgraph.GridGraph, *gridgraph.EdgeSet) {
	t.Helper()
	g, err := gridgraph.Build(snap.Width, snap.Height, nil)
	require.NoError(t, err)
	open := gridgraph.NewEdgeSet()
	for _, e := range snap.Tree {
		require.Equal(t, g.Edge(e.ID).A, e.A)
		open.Add(e.ID)
	}

	return g, open
}

// dirTo returns the direction leading from a to its neighbour b.
func dirTo(t *testing.T, a, b cell) gridgraph.Direction {
	t.Helper()
	for _, d := range gridgraph.Directions {
		if a.Step(d) == b {
			return d
		}
	}
	t.Fatalf("%v and %v are not adjacent", a, b)

	return gridgraph.North
}
