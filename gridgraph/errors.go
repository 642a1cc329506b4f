package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns, or is nil.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown cell value or symbol.
	ErrBadCell = errors.New("gridgraph: unknown cell")
	// ErrOutOfRange indicates a (row, column) outside the grid.
	ErrOutOfRange = errors.New("gridgraph: cell out of range")
	// ErrInvalidStep indicates a move that leaves the grid or lands on a hazard.
	ErrInvalidStep = errors.New("gridgraph: invalid step")
	// ErrTooManySteps indicates rows+columns-2 does not fit in a 64-bit mask.
	ErrTooManySteps = errors.New("gridgraph: too many steps for exhaustive search")
	// ErrCountOverflow indicates the number of paths exceeds a uint64.
	ErrCountOverflow = errors.New("gridgraph: path count overflows uint64")
)
