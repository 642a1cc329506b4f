package gridgraph

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// NewGrid constructs an all-open grid.
// Returns ErrEmptyGrid if rows or cols is < 1.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// FromCells constructs a grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell.
// Complexity: O(rows×cols) time and memory.
func FromCells(values [][]Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := &Grid{rows: h, cols: w, cells: make([]Cell, 0, h*w)}
	for r, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for c, v := range row {
			if v != Open && v != Hazard {
				return nil, fmt.Errorf("FromCells(%d,%d)=%d: %w", r, c, v, ErrBadCell)
			}
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Parse reads a grid drawn with OpenSymbol ('.') and HazardSymbol ('X'),
// one row per line. Trailing "\r" and trailing blank lines are ignored.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrBadCell.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]Cell, len(lines))
	for r, line := range lines {
		values[r] = make([]Cell, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case OpenSymbol:
				values[r][c] = Open
			case HazardSymbol, 'x':
				values[r][c] = Hazard
			default:
				return nil, fmt.Errorf("Parse line %d col %d %q: %w", r+1, c+1, line[c], ErrBadCell)
			}
		}
	}

	return FromCells(values)
}

// Random builds a rows×cols grid where each cell is a hazard with the
// configured probability. The top-left and bottom-right cells are always
// open. Returns ErrEmptyGrid if rows or cols is < 1.
func Random(rows, cols int, opts ...RandomOption) (*Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	cfg := randomConfig{seed: DefaultSeed, hazardRatio: DefaultHazardRatio}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	for i := range g.cells {
		if rng.Float64() < cfg.hazardRatio {
			g.cells[i] = Hazard
		}
	}
	g.cells[0] = Open
	g.cells[len(g.cells)-1] = Open

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.cols
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Open, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.cells[g.index(row, col)], nil
}

// index maps (row, col) to a row-major index: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// Steps returns the number of moves in every top-left to bottom-right path.
func (g *Grid) Steps() int {
	return g.rows + g.cols - 2
}

// Print writes the grid to w, one line per row, in the format Parse reads.
func (g *Grid) Print(w io.Writer) error {
	line := make([]byte, g.cols+1)
	line[g.cols] = '\n'
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			line[c] = OpenSymbol
			if g.cells[g.index(r, c)] == Hazard {
				line[c] = HazardSymbol
			}
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}

	return nil
}

// String returns the Print rendering.
func (g *Grid) String() string {
	var buf bytes.Buffer
	_ = g.Print(&buf)

	return buf.String()
}
