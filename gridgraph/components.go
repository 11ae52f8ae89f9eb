package gridgraph

// ConnectedComponents finds all contiguous regions of cells for which
// member returns true, according to g.Conn connectivity.
// Returns a slice of components; each component is a slice of positions
// in BFS discovery order. Components are ordered by their first cell in
// row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(member func(Pos) bool) [][]Pos {
	seen := make([]bool, g.Area())
	var comps [][]Pos

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p0 := Pos{Row: row, Col: col}
			i0 := g.Index(p0)
			if seen[i0] || !member(p0) {
				continue
			}
			// BFS to collect component
			queue := []Pos{p0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range g.neighborOffsets {
					v := u.Add(d)
					if !g.InBounds(v) {
						continue
					}
					vi := g.Index(v)
					if seen[vi] || !member(v) {
						continue
					}
					seen[vi] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
