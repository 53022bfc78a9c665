package search

import (
	"fmt"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

// Backtrack follows prev from target until it reaches a cell mapped to itself
// (the start), returning the cells in target → start order, start included.
// Returns ErrBrokenChain if a link is missing or the chain does not close within
// len(prev) steps (which would mean a cycle).
// Complexity: O(len(route)).
func Backtrack(target gridgraph.Cell, prev map[gridgraph.Cell]gridgraph.Cell) ([]gridgraph.Cell, error) {
	path := make([]gridgraph.Cell, 0, 16)
	cur := target
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrBrokenChain, cur)
		}
		path = append(path, cur)
		if p == cur {
			return path, nil
		}
		cur = p
	}

	return nil, fmt.Errorf("%w: no self-mapped start reached from %v", ErrBrokenChain, target)
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []gridgraph.Cell) []gridgraph.Cell {
	out := make([]gridgraph.Cell, len(s)) // allocate new slice of same length
	for i := range s {
		out[i] = s[len(s)-1-i] // assign from opposite end
	}

	return out
}

// PathTo reconstructs the start → dest route through t's predecessor map.
// Returns an error wrapping ErrBrokenChain if dest was not discovered.
func (t *Trace) PathTo(dest gridgraph.Cell) ([]gridgraph.Cell, error) {
	back, err := Backtrack(dest, t.Prev)
	if err != nil {
		return nil, err
	}

	return Reverse(back), nil
}

// Route returns the start → target route of a successful Run.
func (t *Trace) Route() ([]gridgraph.Cell, error) {
	if !t.Found {
		return nil, fmt.Errorf("%w: %v not found", ErrTargetUnreachable, t.Target)
	}

	return t.PathTo(t.Target)
}
