// Package search provides tunable options and error definitions
// for frontier search over a gridgraph.GridGraph.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOpenSetNil is returned if a nil open-edge set is passed.
	ErrOpenSetNil = errors.New("search: open-edge set is nil")

	// ErrCellOutOfRange is returned when start or target lies outside the grid.
	ErrCellOutOfRange = errors.New("search: cell out of range")

	// ErrTargetUnreachable is returned when the frontier empties before the
	// target is popped. Over a spanning tree this signals a broken invariant.
	ErrTargetUnreachable = errors.New("search: target unreachable")

	// ErrBrokenChain is returned by Backtrack when predecessor links are
	// missing or cyclic.
	ErrBrokenChain = errors.New("search: broken predecessor chain")
)

// Order selects the frontier discipline.
type Order int

const (
	// BreadthFirst uses a FIFO frontier (tail insertion).
	BreadthFirst Order = iota
	// DepthFirst uses a LIFO frontier (head insertion).
	DepthFirst
)

// String returns "bfs" or "dfs".
func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	}

	return fmt.Sprintf("order(%d)", int(o))
}

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Order selects BreadthFirst or DepthFirst.
	Order Order

	// Ctx allows cancellation; checked once per popped cell.
	Ctx context.Context

	// OnDiscover is called when a cell is first inserted into the frontier,
	// with the cell it was discovered from (the start reports itself).
	OnDiscover func(cell, from gridgraph.Cell)

	// OnVisit is called when a cell is popped. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(cell gridgraph.Cell, depth int) error
}

// DefaultOptions returns Options with sane defaults:
//   - BreadthFirst
//   - context.Background()
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Order:      BreadthFirst,
		Ctx:        context.Background(),
		OnDiscover: func(gridgraph.Cell, gridgraph.Cell) {},
		OnVisit:    func(gridgraph.Cell, int) error { return nil },
	}
}

// WithOrder selects the frontier discipline.
func WithOrder(o Order) Option {
	return func(opts *Options) {
		opts.Order = o
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback to run on discovery.
func WithOnDiscover(fn func(cell, from gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(cell gridgraph.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Trace holds the outcome of one search:
//   - Visits: cells in the order they were popped from the frontier.
//   - Prev:   map from each discovered cell to its predecessor; Prev[Start] == Start.
//   - Depth:  map from each discovered cell to its edge count from Start.
//   - Found:  whether Target was popped (always false for Explore).
type Trace struct {
	Order  Order
	Start  gridgraph.Cell
	Target gridgraph.Cell
	Visits []gridgraph.Cell
	Prev   map[gridgraph.Cell]gridgraph.Cell
	Depth  map[gridgraph.Cell]int
	Found  bool
}

// Discovered reports whether c was inserted into the frontier.
func (t *Trace) Discovered(c gridgraph.Cell) bool {
	_, ok := t.Prev[c]

	return ok
}

// MaxDepth returns the largest Depth value, 0 for an empty trace.
func (t *Trace) MaxDepth() int {
	maxD := 0
	for _, d := range t.Depth {
		if d > maxD {
			maxD = d
		}
	}

	return maxD
}
