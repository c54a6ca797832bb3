// Package gridgraph treats a flattened block-grid observation as a graph,
// the input side of maze path planning.
//
// What:
//
//   - Grid wraps a row-major []Label with a fixed Stride (the lattice side).
//   - Cells labelled Air are blocked; every other label is walkable floor.
//   - LocateEndpoints finds the unique Start and End markers.
//   - DecodeObservation reads the simulator's JSON grid observation.
//
// Index arithmetic:
//
//   - ±1 moves west/east, ±Stride moves north/south.
//   - Neighbors never wrap across a row or a layer boundary.
//
// Complexity:
//
//   - NewGrid, LocateEndpoints, DecodeObservation: O(N) time and memory.
//   - Index, Coordinate, InBounds, Neighbors:      O(1).
//
// Options:
//
//   - WithLastMatchWins: resolve a duplicated marker to its last occurrence
//     rather than failing with ErrDuplicateEndpoint.
//
// Errors:
//
//   - ErrEmptyGrid: input has no cells.
//   - ErrBadStride: stride ≤ 0 or length not a multiple of stride×stride.
//   - ErrMissingEndpoint: the start or end marker is absent.
//   - ErrDuplicateEndpoint: a marker is repeated (wraps ErrMissingEndpoint).
//   - ErrObservationField: the observation document lacks the named grid.
package gridgraph
