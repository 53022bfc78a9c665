// Package kruskal provides an implementation of Kruskal's Minimum Spanning Tree
// algorithm over a gridgraph.GridGraph.
package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-maze/dsu"
	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// SpanningTree computes the minimum spanning tree of g.
//
// Steps:
//  1. Validate: g != nil.
//  2. Copy all edges in EdgeID order.
//  3. Sort edges by ascending Weight (sort.SliceStable keeps EdgeID order for ties).
//  4. Initialize a dsu.DisjointSet with one tree per cell.
//  5. While TreeCount() > 1, take the next edge: if its endpoints lie in
//     different trees, Union(A, B) and accept it; otherwise reject it.
//  6. If the worklist runs out first → ErrDisconnected.
//
// Complexity: O(E log E + E·depth). Memory: O(E + V).
func SpanningTree(g *gridgraph.GridGraph, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2–3. Collect and sort the worklist.
	sorted := g.Edges()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 4. One tree per cell.
	var dopts []dsu.Option
	if o.PathCompression {
		dopts = append(dopts, dsu.WithPathCompression())
	}
	forest := dsu.New(g.Len(), dopts...)

	// 5. Build the tree.
	res := &Result{
		Sorted: sorted,
		Edges:  make([]gridgraph.Edge, 0, g.Len()-1),
	}
	next := 0
	for forest.TreeCount() > 1 {
		if next == len(sorted) {
			// 6. Ran out of candidates with several trees left.
			return nil, fmt.Errorf("%w: %d trees remain after %d edges",
				ErrDisconnected, forest.TreeCount(), len(sorted))
		}
		e := sorted[next]
		next++

		if !forest.Union(g.Index(e.A), g.Index(e.B)) {
			if o.OnReject != nil {
				o.OnReject(e)
			}
			continue
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		if o.OnAccept != nil {
			o.OnAccept(e)
		}
	}

	return res, nil
}
