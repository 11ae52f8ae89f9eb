package board

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minegrid/bfs"
)

// FloodReveal opens the connected zero-count region around origin together
// with the ring of numbered cells that borders it.
//
// Behavior:
//  1. origin must be a non-hazard cell with no adjacent hazards,
//     otherwise ErrFloodOrigin.
//  2. Breadth-first walk over 8-connected neighbors:
//     • hazard neighbors are filtered out and never revealed;
//     • an Unrevealed cell becomes Revealed(count) when visited;
//     • only Revealed(0) cells are expanded, numbered cells are the boundary;
//     • Flagged cells stay flagged and block the walk.
//  3. The visited set guarantees each cell is processed at most once.
//
// Returns the number of cells that changed from Unrevealed to Revealed.
// Complexity: O(N) for N cells in the region and its border.
func (b *Board) FloodReveal(origin Pos) (int, error) {
	i, err := b.lookup(origin)
	if err != nil {
		return 0, err
	}
	if b.hazards[i] || b.hazardsAround(origin) != 0 {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrFloodOrigin, origin.Row, origin.Col)
	}

	revealed := 0
	res, err := bfs.BFS(b.grid, origin,
		bfs.WithFilterNeighbor(func(_, nbr Pos) bool {
			return !b.hazards[b.grid.Index(nbr)]
		}),
		bfs.WithOnVisit(func(p Pos, _ int) error {
			if b.revealSafe(p) {
				revealed++
			}
			return nil
		}),
		bfs.WithExpand(func(p Pos, _ int) bool {
			n, ok := b.cells[b.grid.Index(p)].Count()
			return ok && n == 0
		}),
	)
	if err != nil {
		return revealed, err
	}

	b.log.WithFields(logrus.Fields{
		"row":      origin.Row,
		"col":      origin.Col,
		"visited":  len(res.Order),
		"revealed": revealed,
	}).Debug("flood reveal")

	return revealed, nil
}

// revealSafe turns an Unrevealed non-hazard cell into Revealed(count) and
// reports whether it did. Every other kind is left untouched.
func (b *Board) revealSafe(p Pos) bool {
	i := b.grid.Index(p)
	switch b.cells[i].Kind() {
	case Unrevealed:
		b.cells[i] = RevealedCell(b.hazardsAround(p))
		return true
	case Revealed, Flagged, Exploded:
		return false
	default:
		return false
	}
}
