package board

import "github.com/katalvlaran/minegrid/gridgraph"

// IsWon reports whether every non-hazard cell is Revealed.
// Flagged cells never count toward a win; hazards never need revealing.
// Complexity: O(Size²).
func (b *Board) IsWon() bool {
	for i, hazard := range b.hazards {
		if hazard {
			continue
		}
		switch b.cells[i].Kind() {
		case Revealed:
		case Unrevealed, Flagged, Exploded:
			return false
		}
	}
	return true
}

// Openings returns the number of 8-connected regions of non-hazard cells
// with no adjacent hazards. Each opening is cleared by a single reveal.
func (b *Board) Openings() int {
	return len(b.grid.ConnectedComponents(func(p gridgraph.Pos) bool {
		return !b.hazards[b.grid.Index(p)] && b.hazardsAround(p) == 0
	}))
}
