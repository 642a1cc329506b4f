// Package gridgraph treats a rectangular grid of open and hazard cells as a
// directed acyclic graph of monotone moves, and counts the paths through it.
//
// What:
//
//   - Grid is an immutable rows×columns arena of Open/Hazard cells.
//   - Path walks from the top-left cell using only Right and Down moves,
//     never leaving the grid and never stepping onto a Hazard.
//   - CountPathsExhaustive and CountPathsDynamic count the paths from the
//     top-left to the bottom-right cell.
//
// Why:
//
//   - Route planning around obstacles (icebergs, closed roads, walls).
//   - Lattice-path combinatorics: on a hazard-free grid the count equals
//     C(rows+columns-2, rows-1).
//
// Complexity:
//
//   - CountPathsExhaustive: O(2^s·s) time, O(s) memory, s = rows+columns-2 < 64.
//   - CountPathsDynamic:    O(rows×columns) time and memory.
//
// Exhaustive enumeration:
//
//	Every s-bit string is a candidate; bit k selects the k-th move (1 =
//	Right, 0 = Down). Invalid moves are skipped rather than aborting the
//	candidate. A candidate always holds exactly the number of moves needed
//	to reach the corner, so any skipped move leaves the walker short of it:
//	skipping and aborting yield the same count, and both agree with the
//	dynamic-programming result.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, no columns, or a nil grid.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadCell: unknown cell symbol while parsing.
//   - ErrOutOfRange: At called outside the grid.
//   - ErrInvalidStep: AddStep would leave the grid or land on a hazard.
//   - ErrTooManySteps: the exhaustive search needs 64 or more moves.
//   - ErrCountOverflow: the path count does not fit in a uint64.
package gridgraph
