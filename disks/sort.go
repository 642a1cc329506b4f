package disks

// SortLeftToRight sorts an alternating row using Total() left→right passes.
// Each pass swaps every dark disk found immediately before a light disk.
// The input row is not modified.
//
// Returns ErrNotAlternating if before is nil or not in alternating format.
// Complexity: O(n²) time, O(n) memory.
func SortLeftToRight(before *Row) (Sorted, error) {
	if before == nil || !before.IsAlternating() {
		return Sorted{}, ErrNotAlternating
	}
	after := before.Clone()
	total := 0
	for pass := 0; pass < after.Total(); pass++ {
		total += after.forwardPass()
	}

	return Sorted{after: after, swapCount: total}, nil
}

// SortLawnmower sorts an alternating row using Total()/2 rounds, each made
// of one left→right pass followed by one right→left pass.
// The input row is not modified.
//
// Returns ErrNotAlternating if before is nil or not in alternating format.
// Complexity: O(n²) time, O(n) memory.
func SortLawnmower(before *Row) (Sorted, error) {
	if before == nil || !before.IsAlternating() {
		return Sorted{}, ErrNotAlternating
	}
	after := before.Clone()
	total := 0
	for round := 0; round < after.Total()/2; round++ {
		total += after.forwardPass()
		total += after.backwardPass()
	}

	return Sorted{after: after, swapCount: total}, nil
}

// forwardPass scans left→right swapping each (Dark, Light) neighbour pair.
func (r *Row) forwardPass() int {
	swaps := 0
	for i := 0; i+1 < len(r.colors); i++ {
		if r.colors[i] == Dark && r.colors[i+1] == Light {
			r.colors[i], r.colors[i+1] = r.colors[i+1], r.colors[i]
			swaps++
		}
	}

	return swaps
}

// backwardPass scans right→left swapping each (Dark, Light) neighbour pair.
func (r *Row) backwardPass() int {
	swaps := 0
	for j := len(r.colors) - 1; j >= 1; j-- {
		if r.colors[j] == Light && r.colors[j-1] == Dark {
			r.colors[j-1], r.colors[j] = r.colors[j], r.colors[j-1]
			swaps++
		}
	}

	return swaps
}
