// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning move distances and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, neighbor filtering and
// per-cell expansion control.
package bfs

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/minegrid/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Pos
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited mapset.Set[gridgraph.Pos]
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start gridgraph.Pos, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.Row, start.Col)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, len(g.NeighborOffsets())+1),
		visited: mapset.New[gridgraph.Pos](),
		res: &BFSResult{
			Order: make([]gridgraph.Pos, 0, len(g.NeighborOffsets())+1),
			Depth: make(map[gridgraph.Pos]int),
		},
	}

	// Seed queue with start cell
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Pos, d int) {
	w.visited.Put(p)
	w.res.Depth[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if !w.opts.Expand(item.pos, item.depth) {
			continue
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at (%d,%d): %w", item.pos.Row, item.pos.Col, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to the in-bounds
// neighbors of item and enqueues each unseen one.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		if w.visited.Has(nbr) {
			continue
		}
		if !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth)
	}
}
