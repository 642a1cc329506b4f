package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/algolab/gridgraph"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newGridCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grid",
		Aliases: []string{"ices"},
		Short:   "Count monotone paths through a grid while avoiding hazards",
		Args:    cobra.NoArgs,
		RunE:    runGrid(input),
	}
	cmd.Flags().StringVarP(&input.gridFile, "file", "f", "", "read the grid from a file ('.' open, 'X' hazard) instead of generating one")
	cmd.Flags().IntVarP(&input.rows, "rows", "r", 5, "rows of the generated grid")
	cmd.Flags().IntVarP(&input.columns, "cols", "c", 5, "columns of the generated grid")
	cmd.Flags().Float64Var(&input.hazardRatio, "hazards", gridgraph.DefaultHazardRatio, "probability that a generated cell is a hazard")
	cmd.Flags().IntVar(&input.maxExhaustiveSteps, "max-exhaustive-steps", 24, "skip the exhaustive count when rows+cols-2 exceeds this")
	addSeedFlag(cmd.Flags(), &input.seed)

	return cmd
}

func runGrid(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		g, err := loadGrid(input)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := g.Print(out); err != nil {
			return err
		}

		dp, err := gridgraph.CountPathsDynamic(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "dyn prog:   %d\n", dp)

		if g.Steps() > input.maxExhaustiveSteps {
			log.Infof("skipping exhaustive count: %d steps exceeds %d", g.Steps(), input.maxExhaustiveSteps)

			return nil
		}
		ex, err := gridgraph.CountPathsExhaustive(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "exhaustive: %d\n", ex)
		if ex != dp {
			return errors.Errorf("count mismatch: dyn prog %d, exhaustive %d", dp, ex)
		}

		return nil
	}
}

func loadGrid(input *Input) (*gridgraph.Grid, error) {
	if input.gridFile == "" {
		if input.hazardRatio < 0 || input.hazardRatio > 1 {
			return nil, errors.Errorf("--hazards must be within [0,1], got %g", input.hazardRatio)
		}
		log.Debugf("generating %dx%d grid, seed %d", input.rows, input.columns, input.seed)

		return gridgraph.Random(input.rows, input.columns,
			gridgraph.WithSeed(input.seed),
			gridgraph.WithHazardRatio(input.hazardRatio))
	}

	path := input.gridFile
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	log.Debugf("reading grid from %s", path)

	g, err := gridgraph.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return g, nil
}
