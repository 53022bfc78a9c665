// Package gridgraph models a rectangular 4-connected grid as a weighted graph:
// an arena of cells addressed by (row, col) plus a flat edge list whose entries
// reference their two endpoint cells by value.
//
// What:
//
//   - GridGraph holds Width×Height cells and every potential passage between
//     orthogonal neighbours (2·W·H − W − H edges).
//   - Each edge carries a weight assigned once, at Build time, by a WeightFn.
//   - EdgeSet tracks which edges are currently open (passages); the rest are walls.
//   - Components groups cells into regions connected through an EdgeSet.
//
// Why:
//
//   - Maze generation: randomized Kruskal over the edge list.
//   - Maze solving: frontier searches over the open edges only.
//   - Rendering: each cell can ask which of its four sides is open.
//
// Determinism:
//
//	Edges are enumerated row-major; for every cell the South edge is created
//	before the East edge, and EdgeID is the enumeration index. Consequently the
//	incident edges of a cell are listed North, West, South, East. Both orders are
//	part of the contract: Kruskal breaks weight ties by EdgeID and searches
//	expand neighbours in incidence order.
//
// Complexity:
//
//   - Build:      O(W×H), Memory: O(W×H).
//   - Incidence:  O(1) per lookup (index arithmetic, no pointer chasing).
//   - Components: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidSize: width or height below 1.
//   - ErrInvalidEdgeEndpoint: Edge.Other called with a foreign cell (panics).
package gridgraph
