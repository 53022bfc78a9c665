// Package kruskal defines configuration options, results and sentinel errors
// for spanning-tree computation.
package kruskal

import (
	"errors"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// ErrGraphNil indicates a nil *gridgraph.GridGraph.
var ErrGraphNil = errors.New("kruskal: graph is nil")

// ErrDisconnected indicates the edges cannot span every cell.
var ErrDisconnected = errors.New("kruskal: graph is disconnected")

// Option configures Options.
type Option func(*Options)

// Options tunes SpanningTree.
type Options struct {
	// PathCompression is forwarded to the union-find structure.
	PathCompression bool

	// OnAccept, if non-nil, is called for each edge added to the tree, in order.
	OnAccept func(e gridgraph.Edge)

	// OnReject, if non-nil, is called for each examined edge that would close a cycle.
	OnReject func(e gridgraph.Edge)
}

// DefaultOptions returns Options with no compression and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithPathCompression enables path compression in the union-find walk.
// The resulting tree is identical either way.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// WithOnAccept registers a callback for accepted edges.
func WithOnAccept(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnReject registers a callback for rejected (cycle-forming) edges.
func WithOnReject(fn func(e gridgraph.Edge)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}

// Result is the outcome of SpanningTree.
type Result struct {
	// Sorted is the full worklist: every edge, ascending by weight, ties by EdgeID.
	Sorted []gridgraph.Edge

	// Edges holds the accepted tree edges in acceptance order (W·H − 1 of them).
	Edges []gridgraph.Edge

	// TotalWeight is the sum of accepted edge weights.
	TotalWeight int64
}

// Open returns a fresh EdgeSet containing every tree edge, in acceptance order.
func (r *Result) Open() *gridgraph.EdgeSet {
	ids := make([]gridgraph.EdgeID, len(r.Edges))
	for i, e := range r.Edges {
		ids[i] = e.ID
	}

	return gridgraph.NewEdgeSet(ids...)
}
