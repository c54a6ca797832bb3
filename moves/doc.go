// Package moves turns a grid path into the discrete movement commands an
// agent sends to the simulator.
//
// What:
//
//   - Direction enumerates the four axis-aligned moves: North, South, West, East.
//   - ToActionList maps each consecutive pair of path indices through the
//     offset table {−stride→North, +stride→South, −1→West, +1→East}.
//   - Replay walks the table forward again, rebuilding the index path.
//   - Commands renders directions as DiscreteMovementCommands strings
//     ("movenorth 1", ...).
//
// Errors:
//
//   - ErrBadStride:   stride ≤ 0.
//   - ErrInvalidStep: a path step matches no table entry. A shortest-path
//     search never produces one, so this signals a defect upstream rather
//     than bad input.
//
// Complexity: O(len(path)) for every operation.
package moves
