package search_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-maze/search"
)

// BenchmarkRun measures corner-to-corner searches on a 100×100 maze.
func BenchmarkRun(b *testing.B) {
	gg, open := maze(b, 100, 100, 42)
	for _, order := range []search.Order{search.BreadthFirst, search.DepthFirst} {
		b.Run(order.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Run(gg, open, cell{0, 0}, cell{99, 99}, search.WithOrder(order))
			}
		})
	}
}
