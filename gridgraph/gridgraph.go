// Package gridgraph provides a weighted, 4-connected grid graph whose cells are
// addressed by (row, col) and whose edges are first-class values referencing
// their endpoints by index. It supports:
//
//   - Construction with a pluggable WeightFn
//   - O(1) incidence and direction lookups
//   - Open-edge sets and connected components over them
package gridgraph

import "fmt"

// Build constructs a width×height grid graph. For each cell in row-major order
// it creates the South edge (if row+1 < height) and then the East edge (if
// col+1 < width), asking weight(row, col, dir) for the edge's weight.
// A nil weight function falls back to DefaultWeightFn.
// Returns ErrInvalidSize if width < 1 or height < 1.
// Complexity: O(W×H) time and memory.
func Build(width, height int, weight WeightFn) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if weight == nil {
		weight = DefaultWeightFn
	}

	n := width * height
	gg := &GridGraph{
		Width:    width,
		Height:   height,
		edges:    make([]Edge, 0, 2*n-width-height),
		toward:   make([][4]EdgeID, n),
		incident: make([][]EdgeID, n),
	}
	for i := range gg.toward {
		gg.toward[i] = [4]EdgeID{NoEdge, NoEdge, NoEdge, NoEdge}
		gg.incident[i] = make([]EdgeID, 0, 4)
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			here := Cell{Row: r, Col: c}
			if r+1 < height {
				gg.link(here, South, weight(r, c, South))
			}
			if c+1 < width {
				gg.link(here, East, weight(r, c, East))
			}
		}
	}

	return gg, nil
}

// link appends the edge from c toward d and registers it on both endpoints.
func (gg *GridGraph) link(c Cell, d Direction, w int64) {
	other := c.Step(d)
	id := EdgeID(len(gg.edges))
	gg.edges = append(gg.edges, Edge{ID: id, A: c, B: other, Weight: w})

	ci, oi := gg.index(c), gg.index(other)
	gg.toward[ci][d] = id
	gg.toward[oi][d.Opposite()] = id
	gg.incident[ci] = append(gg.incident[ci], id)
	gg.incident[oi] = append(gg.incident[oi], id)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Len returns the number of cells.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// NumEdges returns the number of edges, 2·W·H − W − H.
func (gg *GridGraph) NumEdges() int {
	return len(gg.edges)
}

// index maps c to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Index maps c to its row-major index. Panics with ErrCellOutOfRange for a
// cell outside the grid.
func (gg *GridGraph) Index(c Cell) int {
	gg.mustContain(c)

	return gg.index(c)
}

// CellAt converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) CellAt(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}

// Cells returns every cell in row-major order.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Len())
	for i := 0; i < gg.Len(); i++ {
		out = append(out, gg.CellAt(i))
	}

	return out
}

// Edge returns the edge with the given id. Panics if id is out of range.
func (gg *GridGraph) Edge(id EdgeID) Edge {
	return gg.edges[id]
}

// Edges returns a copy of all edges in enumeration (EdgeID) order.
func (gg *GridGraph) Edges() []Edge {
	out := make([]Edge, len(gg.edges))
	copy(out, gg.edges)

	return out
}

// IncidentEdges returns the (≤4) edges touching c in creation order:
// North, West, South, East, skipping sides on the grid border.
// The order is stable and drives search tie-breaking.
func (gg *GridGraph) IncidentEdges(c Cell) []Edge {
	gg.mustContain(c)
	ids := gg.incident[gg.index(c)]
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = gg.edges[id]
	}

	return out
}

// EdgeToward returns the edge leaving c in direction d.
// ok is false when c sits on the grid border in that direction.
func (gg *GridGraph) EdgeToward(c Cell, d Direction) (e Edge, ok bool) {
	gg.mustContain(c)
	id := gg.toward[gg.index(c)][d]
	if id == NoEdge {
		return Edge{}, false
	}

	return gg.edges[id], true
}

// EdgeBetween returns the edge joining a and b, if they are orthogonal neighbours.
func (gg *GridGraph) EdgeBetween(a, b Cell) (e Edge, ok bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return gg.EdgeToward(a, d)
		}
	}

	return Edge{}, false
}

// Neighbor returns the in-bounds cell adjacent to c in direction d.
func (gg *GridGraph) Neighbor(c Cell, d Direction) (Cell, bool) {
	n := c.Step(d)

	return n, gg.InBounds(n)
}

// OtherEndpoint returns the endpoint of e that is not c.
// Panics with ErrInvalidEdgeEndpoint when c is not on e; that can only happen
// through a programming error, never through a well-formed graph.
func (gg *GridGraph) OtherEndpoint(e Edge, c Cell) Cell {
	return e.Other(c)
}

func (gg *GridGraph) mustContain(c Cell) {
	if !gg.InBounds(c) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrCellOutOfRange, c, gg.Width, gg.Height))
	}
}
