package cli

import (
	"github.com/spf13/pflag"
)

// Input contains the input for the root command and its subcommands
type Input struct {
	verbose    bool
	jsonLogger bool

	// disks
	lightCount int

	// subsequence
	size       int
	seed       int64
	maxElement int
	exhaustive bool

	// cuckoo
	capacity   int
	multiplier int

	// grid
	gridFile           string
	rows               int
	columns            int
	hazardRatio        float64
	maxExhaustiveSteps int
}

// addSeedFlag registers the shared --seed flag on fs.
func addSeedFlag(fs *pflag.FlagSet, p *int64) {
	fs.Int64VarP(p, "seed", "s", 1, "seed for the pseudo-random generator")
}
