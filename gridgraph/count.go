package gridgraph

import (
	"fmt"
	"math/bits"
)

// CountPathsExhaustive counts the monotone hazard-free paths from the
// top-left to the bottom-right cell by trying every move sequence.
//
// Each s-bit string (s = rows+columns-2) is a candidate: bit k set means the
// k-th move is Right, clear means Down. Moves that are not valid from the
// walker's current position are skipped; a candidate counts when the walker
// ends on the bottom-right cell.
//
// Returns ErrEmptyGrid for a nil grid and ErrTooManySteps if s ≥ 64.
// Complexity: O(2^s·s) time, O(s) memory.
func CountPathsExhaustive(g *Grid) (uint64, error) {
	if g == nil || g.rows < 1 || g.cols < 1 {
		return 0, ErrEmptyGrid
	}
	steps := g.Steps()
	if steps >= 64 {
		return 0, fmt.Errorf("CountPathsExhaustive(%dx%d): %w", g.rows, g.cols, ErrTooManySteps)
	}

	var count uint64
	walker := NewPath(g)
	last := uint64(1)<<uint(steps) - 1
	for mask := uint64(0); ; mask++ {
		walker.reset()
		for k := 0; k < steps; k++ {
			d := Down
			if mask>>uint(k)&1 == 1 {
				d = Right
			}
			if walker.IsStepValid(d) {
				_ = walker.AddStep(d)
			}
		}
		if walker.row == g.rows-1 && walker.col == g.cols-1 {
			count++
		}
		if mask == last {
			break
		}
	}

	return count, nil
}

// CountPathsDynamic counts the same paths as CountPathsExhaustive using
// dynamic programming.
//
// Algorithm:
//  1. A[0][0] = 1.
//  2. For every other cell in row-major order: A = 0 on a hazard,
//     otherwise A = A[above] + A[left], out-of-bounds terms being 0.
//  3. The answer is A at the bottom-right cell.
//
// Returns ErrEmptyGrid for a nil grid and ErrCountOverflow if an
// intermediate count exceeds a uint64.
// Complexity: O(rows×columns) time and memory.
func CountPathsDynamic(g *Grid) (uint64, error) {
	if g == nil || g.rows < 1 || g.cols < 1 {
		return 0, ErrEmptyGrid
	}

	a := make([]uint64, len(g.cells))
	a[0] = 1
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r == 0 && c == 0 {
				continue
			}
			i := g.index(r, c)
			if g.cells[i] == Hazard {
				continue
			}
			var above, left uint64
			if r > 0 {
				above = a[g.index(r-1, c)]
			}
			if c > 0 {
				left = a[g.index(r, c-1)]
			}
			sum, carry := bits.Add64(above, left, 0)
			if carry != 0 {
				return 0, fmt.Errorf("CountPathsDynamic at (%d,%d): %w", r, c, ErrCountOverflow)
			}
			a[i] = sum
		}
	}

	return a[len(a)-1], nil
}
