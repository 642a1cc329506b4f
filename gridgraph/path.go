package gridgraph

import "fmt"

// Path is a walker that starts at the top-left cell and accepts only
// valid monotone moves.
type Path struct {
	g        *Grid
	steps    []Direction
	row, col int
}

// NewPath returns an empty path on g, positioned at (0, 0).
func NewPath(g *Grid) *Path {
	return &Path{g: g}
}

// IsStepValid reports whether d keeps the walker in bounds and off hazards.
func (p *Path) IsStepValid(d Direction) bool {
	r, c := p.next(d)

	return p.g.InBounds(r, c) && p.g.cells[p.g.index(r, c)] == Open
}

// AddStep moves the walker, or returns ErrInvalidStep leaving it in place.
func (p *Path) AddStep(d Direction) error {
	if !p.IsStepValid(d) {
		return fmt.Errorf("AddStep(%s) from (%d,%d): %w", d, p.row, p.col, ErrInvalidStep)
	}
	p.row, p.col = p.next(d)
	p.steps = append(p.steps, d)

	return nil
}

// FinalRow returns the walker's current row.
func (p *Path) FinalRow() int {
	return p.row
}

// FinalColumn returns the walker's current column.
func (p *Path) FinalColumn() int {
	return p.col
}

// Steps returns a copy of the moves taken so far.
func (p *Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)

	return out
}

// reset returns the walker to (0, 0), keeping the step buffer.
func (p *Path) reset() {
	p.row, p.col = 0, 0
	p.steps = p.steps[:0]
}

func (p *Path) next(d Direction) (int, int) {
	if d == Right {
		return p.row, p.col + 1
	}

	return p.row + 1, p.col
}
