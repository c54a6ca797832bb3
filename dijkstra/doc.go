// Package dijkstra finds minimum-cost routes across a block grid with
// Dijkstra's shortest-path algorithm.
//
// Overview:
//
//   - The grid (gridgraph.Grid) is searched as an implicit graph: the
//     neighbours of cell c are c−stride, c+stride, c−1, c+1, restricted to the
//     same row and layer, and a neighbour is usable only if its label is not
//     Impassable under the active CostModel.
//   - With the default UniformCost every step costs 1 and the search is
//     equivalent to a breadth-first search. The priority frontier is kept so
//     that weighted terrain (TerrainCost, or any custom CostModel) is a
//     configuration change, not a rewrite.
//
// Determinism:
//
//   - Frontier ties are broken by the lower cell index and neighbours are
//     relaxed North, South, West, East, so repeated calls on the same grid
//     return the same path, preferring east and south steps on ties.
//
// Key features:
//
//   - Functional options: WithCostModel, WithEarlyExit.
//   - Indexed min-heap frontier with in-place decrease-key.
//   - Typed failure outcomes instead of sentinel indices.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N cells (each cell enters the heap at most once,
//     each of its ≤4 relaxations costs O(log N)).
//   - Space: O(N) for distance, predecessor and frontier state.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:            nil grid.
//   - ErrEndpointOutOfRange: start or end outside the grid.
//   - ErrBlockedEndpoint:    start or end on an impassable cell (wraps ErrUnreachable).
//   - ErrUnreachable:        end cannot be reached from start.
//   - ErrOptionViolation:    a cost model with a zero or negative (non-Impassable) cost.
//
// API reference:
//
//	func ShortestPath(
//	    g *gridgraph.Grid,
//	    start, end int,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - Result.Path:      cell indices from start to end inclusive.
//	  - Result.Cost:      summed step cost (len(Path)−1 under UniformCost).
//	  - Result.Finalized: number of cells settled before the search stopped.
//
// Thread safety:
//
//   - ShortestPath keeps all state on its own stack frame and never mutates
//     the grid; concurrent calls are safe.
package dijkstra
