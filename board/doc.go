// Package board implements the state engine of a single-player grid-reveal
// puzzle: a square grid of hidden hazards, a cursor, and the rules that turn
// player commands into cell-state changes.
//
// What:
//
//   - Grid model: hazard layout, per-cell visible state (Cell), cursor.
//   - Placement: one-shot Bernoulli hazard sampling at density num/den.
//   - Neighbor counter: hazards among the bounds-clipped king-move neighbors.
//   - Flood reveal: breadth-first opening of zero-count regions plus their
//     numbered border, built on package bfs.
//   - Dispatcher: Apply maps one Command to one mutation and one Signal.
//   - Termination: IsWon holds once every non-hazard cell is Revealed.
//
// Cell states and transitions:
//
//	Unrevealed ──toggle──▶ Flagged ──toggle──▶ Unrevealed
//	Unrevealed ──reveal──▶ Revealed(n)      (one way)
//	Unrevealed ──reveal──▶ Exploded          (hazard, one way, game over)
//
// Nothing else is legal; Revealed and Exploded cells ignore further commands.
//
// Concurrency:
//
//	A Board is single-threaded and turn-sequential. The caller polls input,
//	calls Apply, then checks the Signal and IsWon. Nothing inside blocks.
//
// Errors:
//
//   - ErrInvalidSize, ErrInvalidDensity: unusable Config.
//   - ErrEmptyLayout, ErrNonSquare: unusable explicit layout.
//   - ErrOutOfBounds: a query outside the grid; state is never touched.
//   - ErrAlreadyPlaced: Randomize called twice.
//   - ErrFloodOrigin: FloodReveal started on a hazard or numbered cell.
//
// Win, loss, quit and invalid input are Signals, not errors.
//
// The first reveal is not protected: the cell under the starting cursor
// may be a hazard.
package board
