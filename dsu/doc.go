// Package dsu provides a disjoint-set (union-find) structure over dense
// integer elements [0, n), as used by Kruskal's spanning-tree construction.
//
// Semantics
//
//   - Every element starts as its own representative (a root).
//   - Find follows representative links until it reaches a self-mapped root.
//     It is iterative, so long chains never grow the call stack.
//   - Union(a, b) is directional: the root of a is grafted under the root of b.
//     The direction does not affect which elements end up connected, only the
//     shape of the forest.
//   - TreeCount reports the number of distinct roots; it drops by exactly one per
//     merging Union and is unchanged by a Union of already-connected elements.
//
// Options
//
//   - WithPathCompression(): Find re-points visited elements at their grandparent.
//     A pure optimisation: roots, TreeCount and Connected answers are identical.
//
// Complexity
//
//   - Find/Union: O(depth) without compression, amortised near-O(1) with it.
//   - TreeCount:  O(1) (maintained incrementally).
//   - Memory:     O(n).
package dsu
