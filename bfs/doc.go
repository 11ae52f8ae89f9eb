// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning move distances and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (move count) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance from start
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping individual neighbors via WithFilterNeighbor.
//   - Allows turning visited cells into dead ends via WithExpand.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Flood regions on game boards: zero-count openings stop at numbered cells.
//   - Reachability and layering on grids without building an edge list.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed offset order, so the visit
//	sequence is fully reproducible.
//
// Visited set
//
//	Membership is tracked in a mapset.Set keyed by gridgraph.Pos: O(1) per
//	check, and no cell is enqueued twice.
//
// Complexity (N = cells reached, d = 4 or 8)
//
//   - Time:   O(N·d)
//   - Memory: O(N)   (for queue, Depth map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, gridgraph.Pos{Row: 0, Col: 0})
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr gridgraph.Pos) bool { return !wall[nbr] }),
//	    bfs.WithExpand(func(p gridgraph.Pos, depth int) bool { return count[p] == 0 }),
//	    bfs.WithOnVisit(func(p gridgraph.Pos, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if the start cell is not on the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()             on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
