package maze

import (
	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/search"
)

// state is the tagged variant behind Maze.Mode. Exactly one is active; each
// carries only the cursor and payload its mode needs.
type state interface {
	mode() Mode
}

type idleState struct{}

// buildState reveals snapshot.Tree[cursor] on the next Advance.
type buildState struct {
	cursor int
}

// searchState reveals trace.Visits[cursor] on the next Advance.
type searchState struct {
	trace  *search.Trace
	cursor int
}

// pathState reveals route[cursor] on the next Advance.
type pathState struct {
	cursor   int
	finished bool
}

type userState struct{}

// gradientState holds the band of every cell, indexed like the grid.
type gradientState struct {
	ref   gridgraph.Cell
	bands []int
}

func (idleState) mode() Mode      { return ModeIdle }
func (*buildState) mode() Mode    { return ModeMazeBuild }
func (*pathState) mode() Mode     { return ModePathReplay }
func (*userState) mode() Mode     { return ModeUserTraversal }
func (*gradientState) mode() Mode { return ModeGradient }

func (s *searchState) mode() Mode {
	if s.trace.Order == search.BreadthFirst {
		return ModeSearchBFS
	}

	return ModeSearchDFS
}
