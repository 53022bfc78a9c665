package gridgraph

// ConnectedComponents finds all regions of cells joined through edges in open.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in discovery order, and components are ordered by their lowest
// index. A nil open set treats every edge as a wall.
//
// To convert an index back to a Cell, use CellAt(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents(open *EdgeSet) [][]int {
	total := gg.Len()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, id := range gg.incident[u] {
				if open == nil || !open.Contains(id) {
					continue // wall
				}
				vi := gg.index(gg.edges[id].Other(gg.CellAt(u)))
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether open joins every cell into a single region.
func (gg *GridGraph) Connected(open *EdgeSet) bool {
	return len(gg.ConnectedComponents(open)) == 1
}
