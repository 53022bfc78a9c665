// Package kruskal computes the minimum spanning tree of a gridgraph.GridGraph
// with Kruskal's algorithm. Fed a grid whose edge weights were drawn at random,
// the tree is a perfect maze: exactly one simple path joins any two cells.
//
// What & Why
//
//   - What is a perfect maze?
//     A spanning tree T ⊆ E of the W×H grid graph: T touches every cell, has
//     exactly W·H − 1 edges and no cycles. Edges in T are passages; every other
//     edge is a wall.
//
//   - Why Kruskal?
//     Sorting randomized weights and merging components yields a uniform-looking
//     maze with many short dead ends. Skewing the weights of one axis (see
//     gridgraph.Bias) stretches corridors along the other.
//
// Strategy
//
//  1. Copy the graph's edges in EdgeID order (row-major, South before East).
//  2. Stable-sort them by ascending weight; equal weights keep EdgeID order.
//  3. Walk the sorted worklist while more than one tree remains:
//     if the endpoints lie in different dsu trees, accept the edge and
//     Union(A, B); otherwise reject it.
//
// Incremental emission
//
//	Result.Edges lists accepted edges in acceptance order. Generation itself is
//	atomic; callers that animate construction reveal Result.Edges one by one.
//
// Complexity
//
//   - Time:   O(E log E) for the sort, plus O(E · depth) for the union-find walk.
//   - Memory: O(V + E) for parents and the sorted edge list.
//
// Error Conditions
//
//   - ErrGraphNil:     graph is nil.
//   - ErrDisconnected: the worklist ran out with more than one tree left
//     (impossible on a full grid; kept as a guard for custom inputs).
package kruskal
