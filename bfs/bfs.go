// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning step distances, parent links, and visit order.
//
// BFS explores cells in increasing step count from a start cell,
// with optional hooks, depth limiting, and neighbour filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *gridgraph.Grid, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %d (cells=%d)", ErrStartOutOfRange, start, g.Len())
	}
	if o.FilterNeighbor == nil {
		o.FilterNeighbor = passable(g)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[int]bool),
		res: &Result{
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks cell visited at depth d, records its parent,
// calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(cell, d, parent int) {
	w.visited[cell] = true
	w.res.Depth[cell] = d
	if parent >= 0 {
		w.res.Parent[cell] = parent
	}
	w.opts.OnEnqueue(cell, d)
	w.queue = append(w.queue, queueItem{cell: cell, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)

	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.cell, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbour, in North, South, West, East order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.cell) {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.cell, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.cell)
	}
}
