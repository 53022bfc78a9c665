package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/maze"
)

// Frame writes the title, the metrics and the ASCII grid of m to w.
func Frame(w io.Writer, m *maze.Maze) error {
	met := m.Metrics()
	_, err := fmt.Fprintf(w, "%s\nSteps: %d  Wrong moves: %d\n%s\n", m.Title(), met.Steps, met.WrongMoves, Render(m))

	return err
}

// Render draws the maze with one 3-column slot per cell:
//
//	+---+---+
//	| S   . |
//	+   +---+
//	| * * E |
//	+---+---+
//
// Glyphs, highest priority first: @ user, S start, E end, * route,
// 0-4 gradient band, . visited.
func Render(m *maze.Maze) string {
	snap := m.Snapshot()
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", snap.Width) + "\n")
	for r := 0; r < snap.Height; r++ {
		mid, low := strings.Builder{}, strings.Builder{}
		mid.WriteByte('|')
		low.WriteByte('+')
		for c := 0; c < snap.Width; c++ {
			v := m.QueryCell(r, c)
			mid.WriteString(" " + string(glyph(v)) + " ")
			if v.Open[gridgraph.East] {
				mid.WriteByte(' ')
			} else {
				mid.WriteByte('|')
			}
			if v.Open[gridgraph.South] {
				low.WriteString("   +")
			} else {
				low.WriteString("---+")
			}
		}
		b.WriteString(mid.String() + "\n" + low.String() + "\n")
	}

	return b.String()
}

func glyph(v maze.CellView) rune {
	switch {
	case v.Current:
		return '@'
	case v.Start:
		return 'S'
	case v.End:
		return 'E'
	case v.OnFinalPath:
		return '*'
	case v.GradientBand != maze.NoBand:
		return rune('0' + v.GradientBand)
	case v.Visited:
		return '.'
	}

	return ' '
}
