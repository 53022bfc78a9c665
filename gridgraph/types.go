// Package gridgraph defines cells, directions and edges of a rectangular grid graph.
package gridgraph

import (
	"fmt"
	"strings"
)

// Cell identifies a grid position. Row grows downward, Col grows rightward.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the cell one unit away in direction d. The result may lie
// outside the grid; use GridGraph.InBounds to check.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Offset()

	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction selects one of the four orthogonal neighbours.
// The numeric order (North, East, South, West) is the order CellView and
// renderers use for per-side flags.
type Direction int

const (
	// North points to the row above (row−1).
	North Direction = iota
	// East points to the column to the right (col+1).
	East
	// South points to the row below (row+1).
	South
	// West points to the column to the left (col−1).
	West
)

// Directions lists all four directions in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// offsets indexed by Direction: {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offset returns the (dRow, dCol) step for d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d]

	return o[0], o[1]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns the lowercase compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}

	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection accepts compass names (north, n), screen names (up, down,
// left, right) and their first letters where unambiguous, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up", "u":
		return North, nil
	case "e", "east", "right", "r":
		return East, nil
	case "s", "south", "down", "d":
		return South, nil
	case "w", "west", "left", "l":
		return West, nil
	}

	return 0, fmt.Errorf("gridgraph: unknown direction %q", s)
}

// EdgeID is the enumeration index of an edge within its GridGraph.
type EdgeID int

// NoEdge marks the absence of an edge in incidence tables.
const NoEdge EdgeID = -1

// Edge is a weighted potential passage between two orthogonally adjacent cells.
// A is always the upper (South edge) or left (East edge) endpoint.
// Identity is ID; Weight is fixed at Build time and never mutated.
type Edge struct {
	ID     EdgeID
	A, B   Cell
	Weight int64
}

// Other returns the endpoint of e that is not c.
// Panics with ErrInvalidEdgeEndpoint if c is neither endpoint.
func (e Edge) Other(c Cell) Cell {
	switch c {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	panic(fmt.Errorf("%w: %v not on edge %d %v-%v", ErrInvalidEdgeEndpoint, c, e.ID, e.A, e.B))
}

// Has reports whether c is an endpoint of e.
func (e Edge) Has(c Cell) bool {
	return c == e.A || c == e.B
}

// Horizontal reports whether e joins two cells of the same row.
func (e Edge) Horizontal() bool {
	return e.A.Row == e.B.Row
}

// String renders the edge as "id:(r,c)-(r,c)/w".
func (e Edge) String() string {
	return fmt.Sprintf("%d:%v-%v/%d", e.ID, e.A, e.B, e.Weight)
}

// GridGraph is an immutable Width×Height grid graph. Cells live in a row-major
// arena; edges live in a flat slice indexed by EdgeID; incidence is a per-cell
// table of EdgeIDs indexed by Direction.
type GridGraph struct {
	Width, Height int
	edges         []Edge
	// toward[idx][d] is the edge leaving cell idx in direction d, or NoEdge.
	toward [][4]EdgeID
	// incident[idx] lists edges of cell idx in creation order (N, W, S, E).
	incident [][]EdgeID
}
