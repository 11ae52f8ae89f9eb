// Package gridgraph treats a rectangular grid of cells as a graph, enabling
// neighbor enumeration and component analysis without materialising edges.
//
// What:
//
//   - Grid describes Rows×Cols cells plus a connectivity (Conn4 or Conn8).
//   - Pos addresses a cell with signed Row/Col so offset arithmetic never underflows.
//   - Neighbors clips the offset table at the grid boundary.
//   - ConnectedComponents groups cells that satisfy a caller predicate.
//
// Why:
//
//   - Game boards: king-move neighborhoods, flood regions, openings.
//   - Callers own their per-cell arrays and address them through Index.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, Lookup: O(1).
//   - Neighbors:            O(d), d = 4 or 8.
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is not positive, or an input slice is empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Lookup was given a coordinate outside the grid.
package gridgraph
