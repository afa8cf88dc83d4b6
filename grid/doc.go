// Package grid defines the typed cell model shared by every stage of the
// map generator: positions, cardinal directions, block types, the dense
// row-major Grid that stages mutate in place, and the Sparse grid of
// optional cells produced by the final wall pruning.
//
// What:
//
//   - Grid is a Height×Width matrix of Block, indexed Blocks[y][x].
//   - At returns (Block, false) for out-of-range coordinates instead of
//     relying on implicit out-of-range behavior.
//   - Orthogonal and diagonal neighbor offsets are precomputed (Conn4/Conn8).
//   - Parse and String convert to and from a compact text form used by
//     fixtures and debug logs:
//
//     #  Wall
//     .  Empty
//     G  GhostHouse
//     T  Teleporter
//
// Ownership:
//
//   - A Grid is owned by exactly one pipeline stage at a time; nothing in
//     this package synchronizes access.
//
// Errors:
//
//   - ErrEmptyGrid: text input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownSymbol: text input contains an unrecognized cell symbol.
package grid
