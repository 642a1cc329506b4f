// Package gridgraph defines core types and options for hazard grids.
package gridgraph

// Cell is the state of one grid square.
type Cell int

const (
	// Open cells may be walked through.
	Open Cell = iota
	// Hazard cells block every path that would land on them.
	Hazard
)

// Symbols used by Parse and Print.
const (
	OpenSymbol   = '.'
	HazardSymbol = 'X'
)

// Direction is a single monotone move.
type Direction int

const (
	// Right increments the column.
	Right Direction = iota
	// Down increments the row.
	Down
)

// String returns "right" or "down".
func (d Direction) String() string {
	if d == Right {
		return "right"
	}

	return "down"
}

// Grid is an immutable rows×columns arrangement of cells, stored row-major.
// Build one with NewGrid, FromCells, Parse or Random.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// Defaults for Random.
const (
	// DefaultSeed is used when no WithSeed option is supplied.
	DefaultSeed int64 = 1
	// DefaultHazardRatio is the probability that a random cell is a hazard.
	DefaultHazardRatio = 0.25
)

// RandomOption customizes Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	seed        int64
	hazardRatio float64
}

// WithSeed fixes the generator seed; equal seeds yield equal grids.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.seed = seed
	}
}

// WithHazardRatio sets the probability of a hazard per cell.
// Panics if p is outside [0, 1].
func WithHazardRatio(p float64) RandomOption {
	if p < 0 || p > 1 {
		panic("gridgraph: WithHazardRatio(p outside [0,1])")
	}
	return func(c *randomConfig) {
		c.hazardRatio = p
	}
}
