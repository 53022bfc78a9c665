// Package maze is the replay engine of lvlath-maze.
//
// What:
//
//	A Maze owns one generated perfect maze (a gridgraph.GridGraph plus its
//	kruskal spanning tree) and a single active mode. Every algorithm runs to
//	completion when a mode is entered; Advance then reveals the precomputed
//	result one item per call so a host can animate it at its own cadence.
//
// Modes:
//
//	Idle           nothing generated yet
//	MazeBuild      reveal spanning-tree edges in acceptance order
//	SearchBFS/DFS  reveal the cells of a search trace in pop order
//	PathReplay     reveal the start → end route, then stay finished
//	UserTraversal  RequestMove walks the maze one cell at a time
//	Gradient       every cell carries a distance band 0..4
//
// Automatic transitions:
//
//	MazeBuild  → UserTraversal  after the last edge is revealed
//	Search*    → PathReplay     after the last trace cell (immediately if show-visited is off)
//	UserTraversal → PathReplay  when the end cell is reached
//
// Calls that break the engine's preconditions (advancing before the first
// Regenerate, moving outside UserTraversal, querying a cell off the grid)
// panic with an error wrapping one of the package sentinels. Expected
// non-events, such as moving into a wall, are reported through the result
// values instead.
//
// A Maze is single-writer; it is not safe for concurrent use.
package maze
