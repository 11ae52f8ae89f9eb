// Package gridgraph provides utilities to treat a rectangular grid of cells
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-clipped neighbor enumeration
//   - Row-major indexing for caller-owned per-cell arrays
//   - Identification of connected components of cells matching a predicate
package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// New constructs a Grid of rows×cols cells.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func New(rows, cols int, opts GridOptions) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}
	// Precompute neighbor offsets based on connectivity
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &Grid{
		Rows:            rows,
		Cols:            cols,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Square constructs a size×size Grid.
func Square(size int, opts GridOptions) (*Grid, error) {
	return New(size, size, opts)
}

// Shape validates a non-empty, rectangular 2D slice and returns its dimensions.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H).
func Shape[T any](values [][]T) (rows, cols int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets slice.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of p in offset order.
// Corner cells have 3 (Conn8) or 2 (Conn4) neighbors, edge cells 5 or 3.
// Complexity: O(d).
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Area returns the number of cells, Rows×Cols.
func (g *Grid) Area() int {
	return g.Rows * g.Cols
}

// Index maps p to a row-major index: Row*Cols + Col.
// p must be in bounds; use Lookup when it comes from outside.
// Complexity: O(1).
func (g *Grid) Index(p Pos) int {
	return p.Row*g.Cols + p.Col
}

// Lookup is the checked form of Index.
// Returns ErrOutOfBounds (wrapped with p) if p lies outside the grid.
func (g *Grid) Lookup(p Pos) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %d×%d", ErrOutOfBounds, p.Row, p.Col, g.Rows, g.Cols)
	}

	return g.Index(p), nil
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Clamp returns p with each axis pulled into [0, Rows) and [0, Cols).
func (g *Grid) Clamp(p Pos) Pos {
	return Pos{Row: min(max(p.Row, 0), g.Rows-1), Col: min(max(p.Col, 0), g.Cols-1)}
}
