// Package disks solves the alternating disks problem.
//
// What:
//
//   - A Row holds 2N disks, N light and N dark, starting in alternating
//     order: L D L D ... L D.
//   - Two adjacent-swap strategies move every light disk to the left and
//     every dark disk to the right, counting the swaps they perform.
//
// Strategies:
//
//   - SortLeftToRight: Total() left→right passes; each pass swaps every
//     dark disk that sits immediately before a light one.
//   - SortLawnmower: Total()/2 rounds, each a left→right pass followed by a
//     right→left pass. Converges in half the rounds of SortLeftToRight.
//
// Both strategies swap only inverted neighbours, so each performs exactly
// one swap per (dark, light) inversion: N(N-1)/2 swaps for N light disks.
//
// Complexity:
//
//   - SortLeftToRight: O(n²) time, O(n) memory (n = Total()).
//   - SortLawnmower:   O(n²) time, O(n) memory.
//
// Errors:
//
//   - ErrNoDarkDisks: NewRow called with fewer than one light disk.
//   - ErrBadLength: FromColors given an empty or odd-length row.
//   - ErrBadColor: FromColors given a value other than Light or Dark.
//   - ErrUnbalanced: FromColors given unequal light and dark counts.
//   - ErrOutOfRange: At/Swap index outside the row.
//   - ErrNotAlternating: a sort was handed a row not in alternating format.
package disks
