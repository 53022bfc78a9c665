package dsu

import "fmt"

// Option configures a DisjointSet.
type Option func(*Options)

// Options holds DisjointSet configuration.
type Options struct {
	// PathCompression enables path halving inside Find.
	PathCompression bool
}

// DefaultOptions returns Options with compression disabled, matching the
// plain parent-following Find.
func DefaultOptions() Options {
	return Options{PathCompression: false}
}

// WithPathCompression enables path halving in Find.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// DisjointSet tracks a partition of [0, n) into trees.
// It is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	trees  int
	opts   Options
}

// New returns a DisjointSet of n singleton trees. Panics if n < 0.
func New(n int, opts ...Option) *DisjointSet {
	if n < 0 {
		panic(fmt.Sprintf("dsu.New: n must be ≥ 0, got %d", n))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &DisjointSet{parent: parent, trees: n, opts: o}
}

// Len returns the number of tracked elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Find returns the representative (root) of the tree containing x.
// Panics if x is out of range.
func (ds *DisjointSet) Find(x int) int {
	ds.check(x)
	// Walk up until the root (parent[x] == x).
	for ds.parent[x] != x {
		if ds.opts.PathCompression {
			// Path halving: make x point to its grandparent.
			ds.parent[x] = ds.parent[ds.parent[x]]
		}
		x = ds.parent[x]
	}

	return x
}

// Union grafts the root of a under the root of b.
// Returns false, leaving the forest untouched, if a and b already share a root.
func (ds *DisjointSet) Union(a, b int) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	ds.parent[ra] = rb
	ds.trees--

	return true
}

// Connected reports whether a and b share a representative.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.Find(a) == ds.Find(b)
}

// TreeCount returns the number of distinct roots.
func (ds *DisjointSet) TreeCount() int {
	return ds.trees
}

func (ds *DisjointSet) check(x int) {
	if x < 0 || x >= len(ds.parent) {
		panic(fmt.Sprintf("dsu: element %d out of range [0,%d)", x, len(ds.parent)))
	}
}
