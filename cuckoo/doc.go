// Package cuckoo stores short strings in a two-table cuckoo hash.
//
// What:
//
//   - Table owns two arrays of Capacity() optional string slots.
//   - Every key has one candidate slot per table: Hash(key, 0) and Hash(key, 1).
//   - Insert places a key in table 0; if the slot is taken, the occupant is
//     evicted and re-placed in its slot of the other table, and so on,
//     alternating tables.
//
// Hashing:
//
//	Both functions are positional polynomials over the key's bytes, reduced
//	modulo the capacity C with a fixed multiplier M (41 by default):
//
//	  table 0 reads the bytes left→right, table 1 reads them right→left
//	  val = b₀ mod C;  po = 1
//	  for each next byte b: po = po·M mod C;  val = (val + b·po) mod C
//
// Cycles:
//
//	Displacement is bounded by an attempt counter. After 2·Capacity()
//	evictions without finding an empty slot, Insert gives up and returns
//	ErrPlacementFailed together with a Placement whose Homeless field holds
//	the string that was left without a slot. Failure is an ordinary result:
//	callers may rebuild with a larger capacity or a different multiplier.
//
// Lookup:
//
//	The core contract is insert-only. Locate and Contains are an extension
//	that probes the two candidate slots of a key. There is no delete.
//
// Concurrency:
//
//	A Table is not safe for concurrent mutation; callers must synchronize.
package cuckoo
