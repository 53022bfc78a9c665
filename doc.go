// Package lvlathmaze is a grid-graph algorithm engine: it carves a random
// perfect maze out of a rectangular grid with Kruskal's algorithm, then
// computes and replays breadth-first and depth-first searches between its
// corners, the reconstructed route, and a distance gradient over every cell.
//
// Everything is organized under these subpackages, leaves first:
//
//	gridgraph/      cells, directions, weighted edges, open-edge sets, weight functions
//	dsu/            disjoint-set forest with directional union
//	kruskal/        minimum spanning tree with stable tie-breaking and acceptance order
//	search/         unified BFS/DFS frontier search, traces and route backtracking
//	maze/           replay engine: one mode at a time, one Advance per animation tick
//	cmd/mazetrace/  ASCII host that drives the engine from flags or the environment
//
// Quick ASCII example (2×2, the (1,0)-(1,1) edge is a wall):
//
//	(0,0)───(0,1)
//	  │       │
//	(1,0)   (1,1)
//
//	BFS from (0,0) pops (0,0) (1,0) (0,1) (1,1);
//	DFS pops (0,0) (0,1) (1,1); both return the route (0,0) (0,1) (1,1).
//
//	go install github.com/katalvlaran/lvlath-maze/cmd/mazetrace@latest
package lvlathmaze
