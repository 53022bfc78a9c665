// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-maze/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild shows the enumeration order of a 3×2 grid's edges.
// Scenario:
//
//   - Width 3, Height 2 → 2·3·2 − 3 − 2 = 7 edges.
//   - Each cell contributes its South edge, then its East edge.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleBuild() {
	gg, _ := gridgraph.Build(3, 2, gridgraph.ConstantWeightFn(1))

	fmt.Println("edges:", gg.NumEdges())
	for _, e := range gg.Edges() {
		fmt.Printf("%d %v-%v\n", e.ID, e.A, e.B)
	}

	// Output:
	// edges: 7
	// 0 (0,0)-(1,0)
	// 1 (0,0)-(0,1)
	// 2 (0,1)-(1,1)
	// 3 (0,1)-(0,2)
	// 4 (0,2)-(1,2)
	// 5 (1,0)-(1,1)
	// 6 (1,1)-(1,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents groups cells joined by open edges.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.Build(3, 1, nil)
	// a 3×1 chain has edges 0:(0,0)-(0,1) and 1:(0,1)-(0,2); open only the first
	open := gridgraph.NewEdgeSet(0)

	for i, comp := range gg.ConnectedComponents(open) {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", gg.CellAt(idx))
		}
		fmt.Println()
	}

	// Output:
	// component 0: (0,0) (0,1)
	// component 1: (0,2)
}
