// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/minegrid.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional (king-move) connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Pos addresses a single cell by row and column.
// Both fields are signed so offset arithmetic can step outside the grid
// and be rejected by InBounds before any slice is indexed.
type Pos struct {
	Row, Col int
}

// Add returns p shifted by the (dRow, dCol) offset.
func (p Pos) Add(d [2]int) Pos {
	return Pos{Row: p.Row + d[0], Col: p.Col + d[1]}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// Grid is an immutable rectangular index space of Rows×Cols cells.
// It carries no cell values; callers keep their own per-cell arrays and use
// Index to address them. neighborOffsets is precomputed for adjacency lookups.
type Grid struct {
	Rows, Cols      int
	Conn            Connectivity
	neighborOffsets [][2]int
}
