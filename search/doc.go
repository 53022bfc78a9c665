// Package search provides a unified frontier search over the open edges of a
// gridgraph.GridGraph, producing a visitation trace and a predecessor map, and
// reconstructs routes from that map.
//
// What
//
//   - One walker serves both traversals; only the frontier discipline differs:
//   - BreadthFirst: FIFO, newly discovered cells are inserted at the tail.
//   - DepthFirst:   LIFO, newly discovered cells are inserted at the head.
//   - Cells are popped from the head. A cell is marked discovered (and its
//     predecessor recorded) when it is inserted, so no cell is ever enqueued or
//     visited twice.
//   - Run stops as soon as the target is popped; Explore visits every cell
//     reachable from the start.
//   - Trace carries:
//   - Visits: cells in pop order (start first; target last when found)
//   - Prev:   cell → predecessor, with Prev[start] == start
//   - Depth:  cell → number of edges from start along Prev links
//
// Determinism
//
//	Neighbours are expanded in gridgraph incidence order (North, West, South,
//	East). For DepthFirst, head insertion means the neighbour expanded last is
//	popped first. Re-running a search over the same open set reproduces the
//	same Trace.
//
// Hooks
//
//   - OnDiscover (when a cell is first inserted into the frontier)
//   - OnVisit    (when a cell is popped; may abort with an error)
//
// Complexity (V = cells, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (frontier, Prev, Depth)
//
// Usage
//
//	tr, err := search.Run(g, open, start, target, search.WithOrder(search.BreadthFirst))
//	if err != nil {
//		// ErrGraphNil, ErrOpenSetNil, ErrCellOutOfRange, ErrTargetUnreachable, or hook errors
//	}
//	route, _ := tr.Route() // start → target
package search
