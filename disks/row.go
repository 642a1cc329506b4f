package disks

import (
	"fmt"
	"strings"
)

// Row is an ordered sequence of disks. Identity is positional.
type Row struct {
	colors []Color
}

// NewRow builds an alternating row with lightCount light and lightCount
// dark disks: L D L D ... L D.
// Returns ErrNoDarkDisks if lightCount < 1.
// Complexity: O(n) time and memory.
func NewRow(lightCount int) (*Row, error) {
	if lightCount < 1 {
		return nil, ErrNoDarkDisks
	}
	colors := make([]Color, lightCount*2)
	for i := 1; i < len(colors); i += 2 {
		colors[i] = Dark
	}

	return &Row{colors: colors}, nil
}

// FromColors builds a row from an arbitrary color slice. The slice is copied.
// Returns ErrBadLength if the slice is empty or has odd length, ErrBadColor
// for a value other than Light or Dark, and ErrUnbalanced unless exactly half
// the disks are dark.
func FromColors(colors []Color) (*Row, error) {
	if len(colors) == 0 || len(colors)%2 != 0 {
		return nil, ErrBadLength
	}
	dark := 0
	for i, c := range colors {
		switch c {
		case Light:
		case Dark:
			dark++
		default:
			return nil, fmt.Errorf("FromColors: index %d holds %d: %w", i, int(c), ErrBadColor)
		}
	}
	if dark*2 != len(colors) {
		return nil, fmt.Errorf("FromColors: %d dark of %d: %w", dark, len(colors), ErrUnbalanced)
	}
	cp := make([]Color, len(colors))
	copy(cp, colors)

	return &Row{colors: cp}, nil
}

// Total returns the number of disks in the row.
func (r *Row) Total() int {
	return len(r.colors)
}

// DarkCount returns the number of dark disks, which is half the row.
func (r *Row) DarkCount() int {
	return r.Total() / 2
}

// LightCount returns the number of light disks, equal to DarkCount.
func (r *Row) LightCount() int {
	return r.DarkCount()
}

// IsIndex reports whether i addresses a disk in the row.
func (r *Row) IsIndex(i int) bool {
	return i >= 0 && i < r.Total()
}

// At returns the color at index i, or ErrOutOfRange.
func (r *Row) At(i int) (Color, error) {
	if !r.IsIndex(i) {
		return Light, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return r.colors[i], nil
}

// Swap exchanges the disks at left and left+1.
// Returns ErrOutOfRange if either index is outside the row.
func (r *Row) Swap(left int) error {
	if !r.IsIndex(left) || !r.IsIndex(left+1) {
		return fmt.Errorf("Swap(%d): %w", left, ErrOutOfRange)
	}
	r.colors[left], r.colors[left+1] = r.colors[left+1], r.colors[left]

	return nil
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	cp := make([]Color, len(r.colors))
	copy(cp, r.colors)

	return &Row{colors: cp}
}

// Equal reports whether both rows hold the same colors in the same order.
func (r *Row) Equal(other *Row) bool {
	if other == nil || len(r.colors) != len(other.colors) {
		return false
	}
	for i := range r.colors {
		if r.colors[i] != other.colors[i] {
			return false
		}
	}

	return true
}

// Colors returns a copy of the underlying colors.
func (r *Row) Colors() []Color {
	cp := make([]Color, len(r.colors))
	copy(cp, r.colors)

	return cp
}

// String renders the row as space-separated letters, e.g. "L D L D".
func (r *Row) String() string {
	var sb strings.Builder
	for i, c := range r.colors {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

// IsAlternating reports whether the row reads L D L D ... L D.
func (r *Row) IsAlternating() bool {
	if r.Total() == 0 || r.Total()%2 != 0 {
		return false
	}
	for i := 0; i < r.Total(); i += 2 {
		if r.colors[i] != Light || r.colors[i+1] != Dark {
			return false
		}
	}

	return true
}

// IsSorted reports whether every light disk precedes every dark disk,
// i.e. the left half is all light and the right half all dark.
func (r *Row) IsSorted() bool {
	if r.Total() == 0 || r.Total()%2 != 0 {
		return false
	}
	half := r.Total() / 2
	for i := 0; i < half; i++ {
		if r.colors[i] != Light || r.colors[i+half] != Dark {
			return false
		}
	}

	return true
}
