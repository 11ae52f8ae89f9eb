package board

// NeighborHazardCount returns the number of hazards among the up-to-8
// king-move neighbors of p. Neighbors outside the grid are skipped, so
// corner cells examine 3 cells and edge cells 5.
func (b *Board) NeighborHazardCount(p Pos) (int, error) {
	if _, err := b.lookup(p); err != nil {
		return 0, err
	}
	return b.hazardsAround(p), nil
}

// hazardsAround is NeighborHazardCount for a position already known to be in bounds.
func (b *Board) hazardsAround(p Pos) int {
	n := 0
	for _, d := range b.grid.NeighborOffsets() {
		q := p.Add(d)
		if b.grid.InBounds(q) && b.hazards[b.grid.Index(q)] {
			n++
		}
	}
	return n
}
