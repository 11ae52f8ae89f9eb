// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/minegrid/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start position lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start position out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the position and its depth from the start.
	OnEnqueue func(p gridgraph.Pos, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p gridgraph.Pos, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Pos, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a neighbor by returning false.
	// A filtered cell is neither visited nor marked seen.
	FilterNeighbor func(curr, neighbor gridgraph.Pos) bool

	// Expand reports whether the neighbors of a visited cell are explored.
	// Returning false makes the cell a boundary: visited, but a dead end.
	Expand func(p gridgraph.Pos, depth int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed), every cell expanded
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Pos, int) {},
		OnDequeue:      func(gridgraph.Pos, int) {},
		OnVisit:        func(gridgraph.Pos, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ gridgraph.Pos) bool { return true },
		Expand:         func(gridgraph.Pos, int) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Pos, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p gridgraph.Pos, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Pos, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Pos) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithExpand stops the search from growing past cells for which fn returns false.
func WithExpand(fn func(p gridgraph.Pos, depth int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.Expand = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from the start.
type BFSResult struct {
	Order []gridgraph.Pos
	Depth map[gridgraph.Pos]int
}

// Reached reports whether p was visited.
func (r *BFSResult) Reached(p gridgraph.Pos) bool {
	_, ok := r.Depth[p]
	return ok
}
