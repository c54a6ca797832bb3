// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Walls (air) are skipped unless WithFilterNeighbor says otherwise.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Flood-fill the region reachable from a spawn cell.
//   - Uniform-cost step counts, which a uniform-cost Dijkstra search
//     must agree with.
//
// Determinism
//
//	Neighbours are enqueued North, South, West, East (gridgraph.Grid.Neighbors),
//	so the visit sequence and parent links are fully reproducible.
//
// Complexity (N = cells)
//
//   - Time:   O(N)
//   - Memory: O(N)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	)
//	path, err := res.PathTo(end)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfRange   if the start index is not a cell.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached        from Result.PathTo for undiscovered cells.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
