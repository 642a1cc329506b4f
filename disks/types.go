package disks

import "errors"

// Sentinel errors for disks operations.
var (
	// ErrNoDarkDisks indicates a row was requested with no dark disks.
	ErrNoDarkDisks = errors.New("disks: row must contain at least one dark disk")
	// ErrBadLength indicates a color slice that is empty or of odd length.
	ErrBadLength = errors.New("disks: row length must be even and non-zero")
	// ErrBadColor indicates a color value other than Light or Dark.
	ErrBadColor = errors.New("disks: unknown color")
	// ErrUnbalanced indicates a row whose light and dark counts differ.
	ErrUnbalanced = errors.New("disks: light and dark counts must be equal")
	// ErrOutOfRange indicates an index outside the row.
	ErrOutOfRange = errors.New("disks: index out of range")
	// ErrNotAlternating indicates a sort input that is not in alternating format.
	ErrNotAlternating = errors.New("disks: row is not in alternating format")
)

// Color is the state of one disk.
type Color int

const (
	// Light disks belong on the left once sorted.
	Light Color = iota
	// Dark disks belong on the right once sorted.
	Dark
)

// String returns "L" for Light and "D" for Dark.
func (c Color) String() string {
	if c == Light {
		return "L"
	}

	return "D"
}

// Sorted is the outcome of a sort: the final row and the number of swaps
// used to reach it. It is never mutated after construction.
type Sorted struct {
	after     *Row
	swapCount int
}

// After returns a copy of the sorted row, or nil for the zero Sorted.
func (s Sorted) After() *Row {
	if s.after == nil {
		return nil
	}

	return s.after.Clone()
}

// SwapCount returns the number of adjacent swaps performed.
func (s Sorted) SwapCount() int {
	return s.swapCount
}
