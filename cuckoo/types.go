package cuckoo

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for cuckoo operations.
var (
	// ErrPlacementFailed indicates the eviction chain hit the attempt bound.
	ErrPlacementFailed = errors.New("cuckoo: placement failed")
	// ErrEmptyKey indicates an empty string, which cannot be hashed.
	ErrEmptyKey = errors.New("cuckoo: key must be non-empty")
	// ErrKeyTooLong indicates a key longer than MaxKeyLen bytes.
	ErrKeyTooLong = errors.New("cuckoo: key exceeds maximum length")
	// ErrOutOfRange indicates a table or slot index outside the table.
	ErrOutOfRange = errors.New("cuckoo: index out of range")
)

// Defaults and limits.
const (
	// DefaultCapacity is the number of slots in each of the two tables.
	DefaultCapacity = 17
	// DefaultMultiplier is the prime multiplier used by both hash functions.
	DefaultMultiplier = 41
	// MaxKeyLen is the longest key, in bytes, the table accepts.
	MaxKeyLen = 255
	// Tables is the number of backing tables.
	Tables = 2
)

// Option configures a Table.
type Option func(*Table)

// WithCapacity sets the slot count of each table. Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("cuckoo: WithCapacity(n<1)")
	}
	return func(t *Table) {
		t.capacity = n
	}
}

// WithMultiplier sets the hash multiplier. Panics if m < 1.
// The table hashes with m modulo its capacity, so any positive m is safe;
// a multiple of the capacity degenerates to hashing the first byte only.
func WithMultiplier(m int) Option {
	if m < 1 {
		panic("cuckoo: WithMultiplier(m<1)")
	}
	return func(t *Table) {
		t.multiplier = m
	}
}

// WithLogger routes per-step debug diagnostics to log. Panics on nil.
func WithLogger(log logrus.FieldLogger) Option {
	if log == nil {
		panic("cuckoo: WithLogger(nil)")
	}
	return func(t *Table) {
		t.log = log
	}
}

// discardLogger is the default: diagnostics are dropped.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Step is one write performed during an insertion: Key was stored at
// t[Slot][Table], displacing Evicted (empty when the slot was free).
type Step struct {
	Key     string
	Table   int
	Slot    int
	Evicted string
}

// String renders the step as a human-readable progress line.
func (s Step) String() string {
	if s.Evicted == "" {
		return fmt.Sprintf("String <%s> will be placed at t[%d][%d]", s.Key, s.Slot, s.Table)
	}

	return fmt.Sprintf("String <%s> will be placed at t[%d][%d] replacing <%s>", s.Key, s.Slot, s.Table, s.Evicted)
}

// Placement describes the outcome of one Insert call.
type Placement struct {
	// Key is the string passed to Insert.
	Key string
	// Steps lists every write in order; the last one ends the chain.
	Steps []Step
	// Placed is false when the attempt bound was reached.
	Placed bool
	// Homeless is the string left without a slot when Placed is false.
	// It is Key itself only if Key was evicted again along the chain.
	Homeless string
	// Attempts counts evictions performed.
	Attempts int
}
