// Package search provides breadth-first and depth-first search over the open
// edges of a gridgraph.GridGraph, returning visit order, predecessor links and
// depths.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// walker encapsulates mutable search state.
type walker struct {
	graph    *gridgraph.GridGraph
	open     *gridgraph.EdgeSet
	opts     Options
	ctx      context.Context
	frontier *frontier
	res      *Trace
	target   gridgraph.Cell
	stopAt   bool // whether reaching target ends the search
}

// Run searches g from start toward target, following only edges in open.
// It stops as soon as target is popped from the frontier and reports Found.
// Returns ErrGraphNil, ErrOpenSetNil or ErrCellOutOfRange for invalid input,
// ErrTargetUnreachable when the frontier empties first, ctx errors on
// cancellation, or any OnVisit hook error. The partial Trace is returned
// alongside every error raised after validation.
func Run(g *gridgraph.GridGraph, open *gridgraph.EdgeSet, start, target gridgraph.Cell, opts ...Option) (*Trace, error) {
	w, err := newWalker(g, open, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrCellOutOfRange, target)
	}
	w.target, w.stopAt = target, true
	w.res.Target = target

	if err = w.loop(); err != nil {
		return w.res, err
	}
	if !w.res.Found {
		return w.res, fmt.Errorf("%w: %v from %v after %d visits",
			ErrTargetUnreachable, target, start, len(w.res.Visits))
	}

	return w.res, nil
}

// Explore visits every cell reachable from start through open edges.
// The returned Trace has Found == false and Target == Start.
func Explore(g *gridgraph.GridGraph, open *gridgraph.EdgeSet, start gridgraph.Cell, opts ...Option) (*Trace, error) {
	w, err := newWalker(g, open, start, opts)
	if err != nil {
		return nil, err
	}
	w.res.Target = start

	return w.res, w.loop()
}

// newWalker validates input, applies options and seeds the frontier with start.
func newWalker(g *gridgraph.GridGraph, open *gridgraph.EdgeSet, start gridgraph.Cell, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if open == nil {
		return nil, ErrOpenSetNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCellOutOfRange, start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	w := &walker{
		graph:    g,
		open:     open,
		opts:     o,
		ctx:      o.Ctx,
		frontier: newFrontier(o.Order),
		res: &Trace{
			Order:  o.Order,
			Start:  start,
			Visits: make([]gridgraph.Cell, 0, n),
			Prev:   make(map[gridgraph.Cell]gridgraph.Cell, n),
			Depth:  make(map[gridgraph.Cell]int, n),
		},
	}
	// Seed frontier with start (its own predecessor).
	w.discover(start, start, 0)

	return w, nil
}

// discover marks c discovered from prev at depth d, calls OnDiscover,
// and inserts it into the frontier.
func (w *walker) discover(c, prev gridgraph.Cell, d int) {
	w.res.Prev[c] = prev
	w.res.Depth[c] = d
	w.opts.OnDiscover(c, prev)
	w.frontier.push(c)
}

// loop processes the frontier until target, exhaustion, error, or cancellation.
func (w *walker) loop() error {
	for {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur, ok := w.frontier.pop()
		if !ok {
			return nil
		}
		if err := w.visit(cur); err != nil {
			return err
		}
		if w.stopAt && cur == w.target {
			w.res.Found = true
			return nil
		}
		w.expand(cur)
	}
}

// visit records the cell in Visits and calls OnVisit.
func (w *walker) visit(c gridgraph.Cell) error {
	w.res.Visits = append(w.res.Visits, c)
	if err := w.opts.OnVisit(c, w.res.Depth[c]); err != nil {
		return fmt.Errorf("search: OnVisit error at %v: %w", c, err)
	}

	return nil
}

// expand discovers every undiscovered cell joined to cur by an open edge,
// in incidence order.
func (w *walker) expand(cur gridgraph.Cell) {
	next := w.res.Depth[cur] + 1
	for _, e := range w.graph.IncidentEdges(cur) {
		if !w.open.Contains(e.ID) {
			continue // wall
		}
		nb := e.Other(cur)
		// first time seen?
		if _, seen := w.res.Prev[nb]; !seen {
			w.discover(nb, cur, next)
		}
	}
}
