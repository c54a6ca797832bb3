// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfRange is returned when the start index is not a cell.
	ErrStartOutOfRange = errors.New("bfs: start cell out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for cells the search never saw.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, with its depth from the start.
	OnEnqueue func(cell, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip a step curr→next by returning false.
	// Nil means the default: next must not be gridgraph.Label.Blocked.
	FilterNeighbor func(curr, next int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - walls (air) filtered out
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor replaces the passability test for a step curr→next.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: cell → number of steps from the start.
//   - Parent: cell → its predecessor in the BFS tree (start has none).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether cell was discovered.
func (r *Result) Reached(cell int) bool {
	_, ok := r.Depth[cell]

	return ok
}

// PathTo reconstructs the path from the start cell to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// passable is the default neighbour filter.
func passable(g *gridgraph.Grid) func(curr, next int) bool {
	return func(_, next int) bool { return !g.Label(next).Blocked() }
}
