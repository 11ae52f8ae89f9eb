package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minegrid/board"
)

// mustLayout builds a board from rows of '.' (safe) and 'x' (hazard).
func mustLayout(t *testing.T, rows ...string) *board.Board {
	t.Helper()
	hazards := make([][]bool, len(rows))
	for r, row := range rows {
		hazards[r] = make([]bool, len(row))
		for c, ch := range row {
			hazards[r][c] = ch == 'x'
		}
	}
	b, err := board.FromLayout(hazards)
	require.NoError(t, err)
	return b
}

// cellAt fetches a cell, failing the test on a bounds error.
func cellAt(t *testing.T, b *board.Board, row, col int) board.Cell {
	t.Helper()
	c, err := b.Cell(board.Pos{Row: row, Col: col})
	require.NoError(t, err)
	return c
}

// revealedCount returns how many cells are in the Revealed state.
func revealedCount(t *testing.T, b *board.Board) int {
	t.Helper()
	n := 0
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if cellAt(t, b, r, c).Kind() == board.Revealed {
				n++
			}
		}
	}
	return n
}

// moveTo drives the cursor to p with Move commands only.
func moveTo(t *testing.T, b *board.Board, p board.Pos) {
	t.Helper()
	for b.Cursor().Row < p.Row {
		require.Equal(t, board.Continue, b.Apply(board.MoveDown))
	}
	for b.Cursor().Row > p.Row {
		require.Equal(t, board.Continue, b.Apply(board.MoveUp))
	}
	for b.Cursor().Col < p.Col {
		require.Equal(t, board.Continue, b.Apply(board.MoveRight))
	}
	for b.Cursor().Col > p.Col {
		require.Equal(t, board.Continue, b.Apply(board.MoveLeft))
	}
}
