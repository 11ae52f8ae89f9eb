package board_test

import (
	"fmt"

	"github.com/katalvlaran/minegrid/board"
)

// ExampleBoard_Apply plays a 3×3 board with one hazard in the corner:
// a reveal on the far side floods the rest of the board.
func ExampleBoard_Apply() {
	b, _ := board.FromLayout([][]bool{
		{false, false, true},
		{false, false, false},
		{false, false, false},
	})

	for _, cmd := range []board.Command{board.MoveDown, board.MoveDown, board.Reveal} {
		fmt.Println(cmd, "->", b.Apply(cmd))
	}
	fmt.Print(b)
	fmt.Println("won:", b.IsWon())
	// Output:
	// MoveDown -> Continue
	// MoveDown -> Continue
	// Reveal -> Continue
	// + - + - + - +
	// |   | 1 | # |
	// + - + - + - +
	// |   | 1 | 1 |
	// + - + - + - +
	// |   |   |   |
	// + - + - + - +
	// won: true
}
