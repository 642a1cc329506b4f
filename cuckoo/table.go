package cuckoo

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Table is a two-table cuckoo hash of strings. The zero value is not
// usable; build one with New.
type Table struct {
	capacity   int
	multiplier int
	slots      [Tables][]string // "" marks an empty slot
	size       int
	log        logrus.FieldLogger
}

// New returns an empty table. Without options it has DefaultCapacity slots
// per table and hashes with DefaultMultiplier.
// Complexity: O(capacity).
func New(opts ...Option) *Table {
	t := &Table{
		capacity:   DefaultCapacity,
		multiplier: DefaultMultiplier,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = discardLogger()
	}
	// Only the residue matters; reducing it keeps po*multiplier below capacity².
	t.multiplier %= t.capacity
	for i := range t.slots {
		t.slots[i] = make([]string, t.capacity)
	}

	return t
}

// Capacity returns the number of slots in each table.
func (t *Table) Capacity() int {
	return t.capacity
}

// Len returns the number of strings currently stored.
func (t *Table) Len() int {
	return t.size
}

// Hash returns the candidate slot of key in the given table.
// Returns ErrEmptyKey for "" and ErrOutOfRange for a table other than 0 or 1.
func (t *Table) Hash(key string, table int) (int, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	if table < 0 || table >= Tables {
		return 0, fmt.Errorf("Hash(table=%d): %w", table, ErrOutOfRange)
	}

	return t.hash(key, table), nil
}

// hash evaluates the positional polynomial for a non-empty key. Table 0
// walks the bytes from the front, table 1 from the back.
func (t *Table) hash(key string, table int) int {
	c, n := t.capacity, len(key)
	at := func(i int) int {
		if table == 0 {
			return int(key[i])
		}
		return int(key[n-1-i])
	}

	val := at(0) % c
	po := 1
	for i := 1; i < n; i++ {
		po = po * t.multiplier % c
		val = (val + at(i)*po) % c
	}

	return val
}

// Insert stores key, displacing occupants between the two tables until a
// free slot turns up or 2·Capacity() evictions have been made.
//
// On success the returned Placement has Placed=true and err is nil. When
// the attempt bound is reached, Placed is false, Homeless names the string
// that lost its slot, and err wraps ErrPlacementFailed. Every other string
// remains at one of its two candidate slots in either case.
//
// Duplicates are not detected: inserting the same key twice stores it twice.
// Returns ErrEmptyKey or ErrKeyTooLong without touching the table.
// Complexity: O(Capacity()·L) worst case, L = key length.
func (t *Table) Insert(key string) (Placement, error) {
	p := Placement{Key: key}
	if err := validateKey(key); err != nil {
		return p, fmt.Errorf("Insert(%q): %w", key, err)
	}

	cur, table := key, 0
	pos := t.hash(cur, table)
	for p.Attempts < 2*t.capacity {
		occupant := t.slots[table][pos]
		t.slots[table][pos] = cur
		p.Steps = append(p.Steps, Step{Key: cur, Table: table, Slot: pos, Evicted: occupant})
		t.log.WithFields(logrus.Fields{
			"key":     cur,
			"table":   table,
			"slot":    pos,
			"evicted": occupant,
			"attempt": p.Attempts,
		}).Debug("cuckoo: store")

		if occupant == "" {
			t.size++
			p.Placed = true

			return p, nil
		}
		cur = occupant
		table = 1 - table
		pos = t.hash(cur, table)
		p.Attempts++
	}

	p.Homeless = cur
	t.log.WithFields(logrus.Fields{
		"key":      key,
		"homeless": cur,
		"attempts": p.Attempts,
	}).Debug("cuckoo: attempt bound reached")

	return p, fmt.Errorf("Insert(%q): %w after %d evictions, <%s> has no slot",
		key, ErrPlacementFailed, p.Attempts, cur)
}

// Locate reports where key is stored, probing only its two candidate slots.
// Extension: lookup is outside the insert-only core contract.
func (t *Table) Locate(key string) (table, slot int, ok bool) {
	if key == "" {
		return 0, 0, false
	}
	for table = 0; table < Tables; table++ {
		slot = t.hash(key, table)
		if t.slots[table][slot] == key {
			return table, slot, true
		}
	}

	return 0, 0, false
}

// Contains reports whether key is stored. Extension, see Locate.
func (t *Table) Contains(key string) bool {
	_, _, ok := t.Locate(key)

	return ok
}

// Slot returns the string stored at t[slot][table] and whether the slot is
// occupied. Returns ErrOutOfRange for invalid coordinates.
func (t *Table) Slot(table, slot int) (string, bool, error) {
	if table < 0 || table >= Tables || slot < 0 || slot >= t.capacity {
		return "", false, fmt.Errorf("Slot(%d,%d): %w", table, slot, ErrOutOfRange)
	}
	key := t.slots[table][slot]

	return key, key != "", nil
}

// String renders both tables side by side, one slot index per line.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.capacity; i++ {
		fmt.Fprintf(&sb, "%3d | %-20s | %s\n", i, t.slots[0][i], t.slots[1][i])
	}

	return sb.String()
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > MaxKeyLen {
		return ErrKeyTooLong
	}

	return nil
}
