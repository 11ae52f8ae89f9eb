// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/minegrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors shows king-move neighbors clipped at a corner.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.Square(4, gridgraph.GridOptions{Conn: gridgraph.Conn8})

	for _, p := range g.Neighbors(gridgraph.Pos{Row: 0, Col: 3}) {
		fmt.Printf("(%d,%d) ", p.Row, p.Col)
	}
	fmt.Println()
	// Output:
	// (0,2) (1,2) (1,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents groups marked cells into regions.
// Scenario:
//
//   - Marked cells: 1, unmarked: 0
//   - Conn8: 8-directional adjacency
//   - Expect two regions, one per top corner.
func ExampleGrid_ConnectedComponents() {
	cells := [][]int{
		{1, 1, 0, 0, 1},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 0},
	}
	rows, cols, _ := gridgraph.Shape(cells)
	g, _ := gridgraph.New(rows, cols, gridgraph.GridOptions{Conn: gridgraph.Conn8})

	comps := g.ConnectedComponents(func(p gridgraph.Pos) bool { return cells[p.Row][p.Col] == 1 })
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, p := range comp {
			fmt.Printf(" (%d,%d)", p.Row, p.Col)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (0,1) (1,0)
	// component 1: (0,4) (1,3) (1,4)
}
