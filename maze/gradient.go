package maze

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
	"github.com/katalvlaran/lvlath-maze/search"
)

// ShowGradient enters ModeGradient with every cell banded by its distance
// from ref. It returns false, changing nothing, during construction replay.
// Panics with ErrNoMaze before the first Regenerate and with
// ErrCellOutOfRange if ref is off the grid.
func (m *Maze) ShowGradient(ref gridgraph.Cell) bool {
	m.mustHaveMaze("ShowGradient")
	m.mustContain("ShowGradient", ref)
	if m.building() {
		return false
	}

	bands, err := GradientBands(m.graph, m.tree, ref, m.opts.SearchOrder)
	if err != nil {
		panic(errors.Wrapf(err, "gradient from %v", ref))
	}
	m.resetProgress()
	m.title = ModeGradient.String()
	m.transition(&gradientState{ref: ref, bands: bands})

	return true
}

// GradientRef returns the reference cell of the active gradient.
func (m *Maze) GradientRef() (gridgraph.Cell, bool) {
	st, ok := m.state.(*gradientState)
	if !ok {
		return gridgraph.Cell{}, false
	}

	return st.ref, true
}

// GradientBands explores open from ref and returns, indexed like g, the band of
// every cell. A cell's distance is the length in cells of its route to ref
// (ref itself is 1), normalised by the largest distance on the grid.
// Cells unreachable from ref get NoBand.
// Complexity: O(V + E).
func GradientBands(g *gridgraph.GridGraph, open *gridgraph.EdgeSet, ref gridgraph.Cell, order search.Order) ([]int, error) {
	tr, err := search.Explore(g, open, ref, search.WithOrder(order))
	if err != nil {
		return nil, err
	}
	maxLen := tr.MaxDepth() + 1

	bands := make([]int, g.Len())
	for i, c := range g.Cells() {
		d, ok := tr.Depth[c]
		if !ok {
			bands[i] = NoBand
			continue
		}
		bands[i] = Band(d+1, maxLen)
	}

	return bands, nil
}

// Band buckets length/maxLen into five bands: ≤20%, ≤40%, ≤60%, ≤80%, >80%
// map to 0..4. A non-positive maxLen yields band 0.
func Band(length, maxLen int) int {
	if maxLen <= 0 {
		return 0
	}
	pct := length * 100 // compared against maxLen·limit to stay in integers
	switch {
	case pct <= 20*maxLen:
		return 0
	case pct <= 40*maxLen:
		return 1
	case pct <= 60*maxLen:
		return 2
	case pct <= 80*maxLen:
		return 3
	}

	return 4
}
