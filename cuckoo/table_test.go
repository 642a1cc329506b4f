package cuckoo_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/algolab/cuckoo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruits = []string{"apple", "banana", "cherry", "date", "elder", "fig", "grape"}

//----------------------------------------------------------------------------//
// Hash
//----------------------------------------------------------------------------//

// TestHash_Reference pins both hash functions for the default table.
func TestHash_Reference(t *testing.T) {
	tbl := cuckoo.New()
	cases := []struct {
		key    string
		h0, h1 int
	}{
		{"apple", 8, 14},
		{"banana", 9, 4},
		{"cherry", 0, 0},
		{"date", 0, 16},
		{"fig", 2, 5},
		{"aa", 11, 11},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			h0, err := tbl.Hash(tc.key, 0)
			require.NoError(t, err)
			h1, err := tbl.Hash(tc.key, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.h0, h0)
			assert.Equal(t, tc.h1, h1)
		})
	}
}

// TestHash_Errors checks argument validation.
func TestHash_Errors(t *testing.T) {
	tbl := cuckoo.New()
	_, err := tbl.Hash("", 0)
	assert.ErrorIs(t, err, cuckoo.ErrEmptyKey)
	_, err = tbl.Hash("x", 2)
	assert.ErrorIs(t, err, cuckoo.ErrOutOfRange)
}

// TestHash_SingleByte reduces a one-byte key to its code modulo capacity
// in both tables.
func TestHash_SingleByte(t *testing.T) {
	tbl := cuckoo.New()
	for _, table := range []int{0, 1} {
		h, err := tbl.Hash("a", table)
		require.NoError(t, err)
		assert.Equal(t, int('a')%cuckoo.DefaultCapacity, h)
	}
}

// TestHash_UnitMultiplier sums the bytes, so both tables agree and order
// does not matter.
func TestHash_UnitMultiplier(t *testing.T) {
	tbl := cuckoo.New(cuckoo.WithMultiplier(1))
	for _, key := range []string{"ab", "ba"} {
		for _, table := range []int{0, 1} {
			h, err := tbl.Hash(key, table)
			require.NoError(t, err)
			assert.Equal(t, int('a'+'b')%cuckoo.DefaultCapacity, h, "%s in table %d", key, table)
		}
	}
}

// TestHash_LargeMultiplier checks that multipliers near the int limit hash
// like their residue modulo the capacity and never yield a negative slot.
func TestHash_LargeMultiplier(t *testing.T) {
	congruent := cuckoo.DefaultMultiplier + cuckoo.DefaultCapacity*(math.MaxInt64/cuckoo.DefaultCapacity-3)
	base := cuckoo.New()
	big := cuckoo.New(cuckoo.WithMultiplier(congruent))
	for _, key := range fruits {
		for _, table := range []int{0, 1} {
			want, err := base.Hash(key, table)
			require.NoError(t, err)
			got, err := big.Hash(key, table)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s in table %d", key, table)
		}
	}

	huge := math.MaxInt64 / 3
	tbl := cuckoo.New(cuckoo.WithMultiplier(huge))
	reduced := cuckoo.New(cuckoo.WithMultiplier(huge % cuckoo.DefaultCapacity))
	for _, key := range []string{"hello", "world", strings.Repeat("z", cuckoo.MaxKeyLen)} {
		for _, table := range []int{0, 1} {
			got, err := tbl.Hash(key, table)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, cuckoo.DefaultCapacity)
			want, err := reduced.Hash(key, table)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		p, err := tbl.Insert(key)
		require.NoError(t, err)
		assert.True(t, p.Placed)
	}
	assert.Equal(t, 3, tbl.Len())
}

//----------------------------------------------------------------------------//
// Insert
//----------------------------------------------------------------------------//

// TestInsert_EvictionChain follows the two short chains in the fruit set.
func TestInsert_EvictionChain(t *testing.T) {
	tbl := cuckoo.New()
	var placements []cuckoo.Placement
	for _, k := range fruits {
		p, err := tbl.Insert(k)
		require.NoError(t, err, k)
		require.True(t, p.Placed, k)
		placements = append(placements, p)
	}
	assert.Equal(t, len(fruits), tbl.Len())

	// "date" lands on cherry's slot and pushes cherry into table 1.
	date := placements[3]
	assert.Equal(t, 1, date.Attempts)
	assert.Equal(t, []cuckoo.Step{
		{Key: "date", Table: 0, Slot: 0, Evicted: "cherry"},
		{Key: "cherry", Table: 1, Slot: 0},
	}, date.Steps)
	assert.Equal(t, "String <date> will be placed at t[0][0] replacing <cherry>", date.Steps[0].String())
	assert.Equal(t, "String <cherry> will be placed at t[0][1]", date.Steps[1].String())
}

// TestInsert_EveryKeyAtComputedSlot verifies each stored key sits at its
// hash in one of the two tables.
func TestInsert_EveryKeyAtComputedSlot(t *testing.T) {
	tbl := cuckoo.New()
	for _, k := range fruits {
		_, err := tbl.Insert(k)
		require.NoError(t, err)
	}
	for _, k := range fruits {
		table, slot, ok := tbl.Locate(k)
		require.True(t, ok, k)
		h, err := tbl.Hash(k, table)
		require.NoError(t, err)
		assert.Equal(t, h, slot, k)

		got, used, err := tbl.Slot(table, slot)
		require.NoError(t, err)
		assert.True(t, used)
		assert.Equal(t, k, got)
	}
	assert.False(t, tbl.Contains("kiwi"))
	assert.False(t, tbl.Contains(""))
}

// TestInsert_CycleFails drives three keys with identical slots in both
// tables into the attempt bound.
func TestInsert_CycleFails(t *testing.T) {
	tbl := cuckoo.New()
	for _, k := range []string{"aa", "ar"} {
		_, err := tbl.Insert(k)
		require.NoError(t, err)
	}

	p, err := tbl.Insert("ra")
	require.ErrorIs(t, err, cuckoo.ErrPlacementFailed)
	assert.False(t, p.Placed)
	assert.Equal(t, "ra", p.Key)
	assert.Equal(t, "ar", p.Homeless)
	assert.Equal(t, 2*cuckoo.DefaultCapacity, p.Attempts)
	assert.Len(t, p.Steps, 2*cuckoo.DefaultCapacity)

	// Size is unchanged: one key came in, one lost its slot.
	assert.Equal(t, 2, tbl.Len())
	assert.True(t, tbl.Contains("aa"))
	assert.True(t, tbl.Contains("ra"))
	assert.False(t, tbl.Contains("ar"))
}

// TestInsert_TinyTable forces failure on a one-slot table.
func TestInsert_TinyTable(t *testing.T) {
	tbl := cuckoo.New(cuckoo.WithCapacity(1))
	_, err := tbl.Insert("a")
	require.NoError(t, err)
	_, err = tbl.Insert("b")
	require.NoError(t, err)

	p, err := tbl.Insert("c")
	require.ErrorIs(t, err, cuckoo.ErrPlacementFailed)
	assert.Equal(t, 2, p.Attempts)
	assert.Equal(t, "a", p.Homeless)
}

// TestInsert_InvalidKeys rejects empty and oversized keys untouched.
func TestInsert_InvalidKeys(t *testing.T) {
	tbl := cuckoo.New()
	_, err := tbl.Insert("")
	assert.ErrorIs(t, err, cuckoo.ErrEmptyKey)

	_, err = tbl.Insert(strings.Repeat("x", cuckoo.MaxKeyLen+1))
	assert.ErrorIs(t, err, cuckoo.ErrKeyTooLong)

	_, err = tbl.Insert(strings.Repeat("x", cuckoo.MaxKeyLen))
	assert.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

// TestInsert_Duplicate stores a repeated key twice, once per table.
func TestInsert_Duplicate(t *testing.T) {
	tbl := cuckoo.New()
	_, err := tbl.Insert("apple")
	require.NoError(t, err)
	p, err := tbl.Insert("apple")
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 1, p.Attempts)
}

// TestSlot_Bounds checks the inspection accessor.
func TestSlot_Bounds(t *testing.T) {
	tbl := cuckoo.New(cuckoo.WithCapacity(5))
	assert.Equal(t, 5, tbl.Capacity())

	_, used, err := tbl.Slot(1, 4)
	require.NoError(t, err)
	assert.False(t, used)

	for _, c := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 5}} {
		_, _, err := tbl.Slot(c[0], c[1])
		assert.ErrorIs(t, err, cuckoo.ErrOutOfRange, "%v", c)
	}
}

// TestOptions_Panic verifies option constructors reject nonsense.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { cuckoo.WithCapacity(0) })
	assert.Panics(t, func() { cuckoo.WithMultiplier(0) })
	assert.Panics(t, func() { cuckoo.WithLogger(nil) })
}

// TestWithLogger records one debug entry per stored string.
func TestWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	tbl := cuckoo.New(cuckoo.WithLogger(logger))

	for _, k := range []string{"cherry", "date"} {
		_, err := tbl.Insert(k)
		require.NoError(t, err)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	last := entries[2]
	assert.Equal(t, "cherry", last.Data["key"])
	assert.Equal(t, 1, last.Data["table"])
	assert.Equal(t, "", last.Data["evicted"])
}

// TestString renders one line per slot index.
func TestString(t *testing.T) {
	tbl := cuckoo.New(cuckoo.WithCapacity(3))
	_, err := tbl.Insert("a")
	require.NoError(t, err)

	out := tbl.String()
	assert.Equal(t, 3, strings.Count(out, "\n"))
	assert.Contains(t, out, "a")
}

//----------------------------------------------------------------------------//
// Load
//----------------------------------------------------------------------------//

// TestLoad_Lines inserts a CRLF file with a blank line.
func TestLoad_Lines(t *testing.T) {
	in := "apple\r\nbanana\r\n\r\ncherry\n"
	tbl := cuckoo.New()
	var lines []int
	n, err := tbl.Load(strings.NewReader(in), func(line int, p cuckoo.Placement) {
		lines = append(lines, line)
		assert.True(t, p.Placed)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 4}, lines)
	assert.True(t, tbl.Contains("banana"))
}

// TestLoad_StopsOnFailure reports the failing line and stops reading.
func TestLoad_StopsOnFailure(t *testing.T) {
	in := "aa\nar\nra\nzebra\n"
	tbl := cuckoo.New()
	var last cuckoo.Placement
	n, err := tbl.Load(strings.NewReader(in), func(_ int, p cuckoo.Placement) {
		last = p
	})
	require.ErrorIs(t, err, cuckoo.ErrPlacementFailed)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, 2, n)
	assert.Equal(t, "ra", last.Key)
	assert.False(t, tbl.Contains("zebra"))
}

// TestLoad_LongLine rejects a key over MaxKeyLen.
func TestLoad_LongLine(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("ok\n")
	buf.WriteString(strings.Repeat("y", cuckoo.MaxKeyLen+1))
	buf.WriteString("\n")

	called := 0
	n, err := cuckoo.New().Load(&buf, func(int, cuckoo.Placement) { called++ })
	require.ErrorIs(t, err, cuckoo.ErrKeyTooLong)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, called)
}
