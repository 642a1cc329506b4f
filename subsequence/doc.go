// Package subsequence finds a longest non-increasing subsequence of an
// integer sequence.
//
// A subsequence keeps the original relative order of the elements it picks;
// it is non-increasing when every element is ≥ the one after it. Several
// longest subsequences may exist; any one of them is a correct answer, and
// callers should rely only on its length.
//
// Algorithms:
//
//   - LongestNonIncreasingEndToBeginning: dynamic programming over suffix
//     scores, O(n²) time, O(n) memory.
//   - LongestNonIncreasingPowerset: exhaustive search over every subset of
//     positions, O(2ⁿ·n) time. Use it only on small inputs or to cross-check
//     the dynamic-programming result.
//
// Random builds reproducible test sequences from a seed.
package subsequence
