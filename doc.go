// Package algolab is a small workbench of classic algorithms over in-memory
// data, each in its own package and sharing nothing with the others.
//
// 🚀 What is inside?
//
//	• disks        alternating disks: left-to-right and lawnmower adjacent-swap sorts
//	• subsequence  longest non-increasing subsequence: O(n²) DP and exhaustive powerset
//	• cuckoo       two-table cuckoo hashing of short strings with bounded eviction chains
//	• gridgraph    monotone path counting through a grid of hazards: bitmask and DP
//
// ✨ Conventions
//
//   - Every package returns sentinel errors; match them with errors.Is.
//   - Exhaustive variants exist to cross-check the fast ones on small inputs.
//   - Randomised builders take a seed, so every run is reproducible.
//
// The algolab command (cmd/algolab) drives all four packages from the shell:
//
//	algolab disks --light 4
//	algolab subsequence --size 12 --seed 7 --exhaustive
//	algolab cuckoo words.txt
//	algolab grid --rows 6 --cols 8 --hazards 0.2
package algolab
