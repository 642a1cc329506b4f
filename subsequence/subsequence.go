package subsequence

import "slices"

// IsNonIncreasing reports whether every element of seq is ≥ its successor.
// Empty and single-element sequences are non-increasing.
func IsNonIncreasing(seq Sequence) bool {
	for i := 0; i+1 < len(seq); i++ {
		if seq[i] < seq[i+1] {
			return false
		}
	}

	return true
}

// LongestNonIncreasingEndToBeginning returns a longest non-increasing
// subsequence of a using dynamic programming.
//
// Algorithm:
//  1. score[i] = number of elements that can follow a[i] in the best chain
//     starting at i. Computed right to left: for every j > i with
//     a[j] ≤ a[i] and score[j] ≥ score[i], set score[i] = score[j]+1.
//  2. The answer length is max(score)+1.
//  3. Walk left to right picking the first position whose score equals
//     the current target, starting at max(score) and counting down to 0.
//
// The leftmost pick at each score is always ≤ the previous pick, so the
// reconstruction never needs to backtrack.
//
// Complexity: O(n²) time, O(n) memory.
func LongestNonIncreasingEndToBeginning(a Sequence) Sequence {
	n := len(a)
	if n == 0 {
		return Sequence{}
	}
	score := make([]int, n)
	for i := n - 2; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if a[j] <= a[i] && score[j] >= score[i] {
				score[i] = score[j] + 1
			}
		}
	}

	best := slices.Max(score)
	out := make(Sequence, 0, best+1)
	want := best
	for i := 0; i < n && want >= 0; i++ {
		if score[i] == want {
			out = append(out, a[i])
			want--
		}
	}

	return out
}

// LongestNonIncreasingPowerset returns a longest non-increasing subsequence
// of a by checking every non-empty subset of positions.
//
// Subsets are enumerated in lexicographic order of their position lists
// using an explicit stack: stack[1..k] holds the 1-based positions of the
// current candidate. The first candidate of each new maximal length wins.
//
// Complexity: O(2ⁿ·n) time, O(n) memory.
func LongestNonIncreasingPowerset(a Sequence) Sequence {
	n := len(a)
	best := Sequence{}
	if n == 0 {
		return best
	}
	stack := make([]int, n+1)
	candidate := make(Sequence, 0, n)
	k := 0
	for {
		if stack[k] < n {
			stack[k+1] = stack[k] + 1
			k++
		} else {
			stack[k-1]++
			k--
		}
		if k == 0 {
			break
		}

		candidate = candidate[:0]
		for i := 1; i <= k; i++ {
			candidate = append(candidate, a[stack[i]-1])
		}
		if len(candidate) > len(best) && IsNonIncreasing(candidate) {
			best = slices.Clone(candidate)
		}
	}

	return best
}
