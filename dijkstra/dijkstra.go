// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// implicit 4-connected graph of a gridgraph.Grid.
//
// Notes on implementation choices:
//
//   - The frontier is an indexed min-heap: each queued cell has one entry and
//     a better distance re-keys it in place with heap.Fix (decrease-key).
//   - The heap is keyed on (distance, cell index), so among cells at equal
//     distance the lowest index is finalized first. Routes therefore lean
//     east and south before north and west.
//   - Neighbours are relaxed North, South, West, East. A relaxation must be
//     strictly better to replace a predecessor, so the first discoverer of a
//     cell keeps it on ties.
//   - Distance and predecessor maps are populated lazily as cells are discovered.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// ShortestPath computes a minimum-cost path from start to end over g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid) and well formed (gridgraph.ErrBadStride,
//     gridgraph.ErrEmptyGrid).
//  3. start and end must be cell indices (ErrEndpointOutOfRange).
//  4. start and end must be passable under the cost model (ErrBlockedEndpoint).
//
// If end is never finalized, ErrUnreachable is returned.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of cells
//   - Space: O(N)
func ShortestPath(g *gridgraph.Grid, start, end int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start=%d end=%d cells=%d", ErrEndpointOutOfRange, start, end, g.Len())
	}
	for _, i := range [2]int{start, end} {
		if cfg.Costs.Cost(g.Label(i)) == Impassable {
			return nil, fmt.Errorf("%w: cell %d is %q", ErrBlockedEndpoint, i, g.Label(i))
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		dist:    make(map[int]int64),
		prev:    make(map[int]int),
		done:    make(map[int]bool),
		queued:  make(map[int]*cellItem),
	}
	r.init(start)
	r.process()

	if !r.done[end] {
		return nil, fmt.Errorf("%w: start=%d end=%d", ErrUnreachable, start, end)
	}

	return &Result{
		Path:      r.path(end),
		Cost:      r.dist[end],
		Finalized: r.finalized,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Grid
	options Options
	end     int

	dist map[int]int64 // cell → best known distance from start
	prev map[int]int   // cell → cell it was reached from
	done map[int]bool  // cell → distance is final

	pq        cellPQ
	queued    map[int]*cellItem // cell → its live heap entry
	finalized int
}

// init seeds the frontier with the start cell at distance zero.
func (r *runner) init(start int) {
	r.dist[start] = 0
	r.prev[start] = NoPredecessor
	heap.Init(&r.pq)
	r.enqueue(start, 0)
}

// process finalizes cells in distance order until the frontier is empty,
// or until end is finalized when EarlyExit is set.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*cellItem)
		u := it.cell
		delete(r.queued, u)
		r.done[u] = true
		r.finalized++

		if r.options.EarlyExit && u == r.end {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve the distance of every passable, unfinalized neighbour of u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Neighbors(u) {
		if r.done[v] {
			continue
		}
		w := r.options.Costs.Cost(r.g.Label(v))
		if w == Impassable {
			continue
		}
		nd := r.dist[u] + w
		if d, seen := r.dist[v]; seen && nd >= d {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u

		if it, ok := r.queued[v]; ok {
			it.dist = nd
			heap.Fix(&r.pq, it.index)
			continue
		}
		r.enqueue(v, nd)
	}
}

func (r *runner) enqueue(cell int, dist int64) {
	it := &cellItem{cell: cell, dist: dist}
	r.queued[cell] = it
	heap.Push(&r.pq, it)
}

// path walks predecessor links back from end and returns them in forward order.
func (r *runner) path(end int) []int {
	var rev []int
	for at := end; at != NoPredecessor; at = r.prev[at] {
		rev = append(rev, at)
	}
	out := make([]int, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}

	return out
}

// cellItem is one frontier entry.
type cellItem struct {
	cell  int   // grid index, breaks distance ties
	dist  int64 // tentative distance from start
	index int   // position in the heap, maintained by Swap/Push
}

// cellPQ is a min-heap of *cellItem ordered by (dist, cell).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by distance, then by cell index.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].cell < pq[j].cell
}

// Swap swaps two elements and keeps their positions current.
func (pq cellPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *cellItem.
func (pq *cellPQ) Push(x interface{}) {
	it := x.(*cellItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}
