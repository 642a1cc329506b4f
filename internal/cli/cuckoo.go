package cli

import (
	"fmt"
	"os"

	"github.com/katalvlaran/algolab/cuckoo"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCuckooCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cuckoo [file]",
		Short: "Insert the lines of a file into a cuckoo hash table",
		Long: "Insert every line of a file into a two-table cuckoo hash, printing where each string lands.\n" +
			"Without a file argument the file name is read from standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCuckoo(input),
	}
	cmd.Flags().IntVarP(&input.capacity, "capacity", "c", cuckoo.DefaultCapacity, "slots per table")
	cmd.Flags().IntVarP(&input.multiplier, "multiplier", "m", cuckoo.DefaultMultiplier, "hash multiplier (prime)")

	return cmd
}

func runCuckoo(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if input.capacity < 1 || input.multiplier < 1 {
			return errors.Errorf("--capacity and --multiplier must be positive, got %d and %d", input.capacity, input.multiplier)
		}
		out := cmd.OutOrStdout()

		var filename string
		if len(args) > 0 {
			filename = args[0]
		} else {
			fmt.Fprintln(out, "Input the file name (no spaces)!")
			if _, err := fmt.Fscan(cmd.InOrStdin(), &filename); err != nil {
				return errors.Wrap(err, "failed to read file name")
			}
		}
		path := filename
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()

		tbl := cuckoo.New(
			cuckoo.WithCapacity(input.capacity),
			cuckoo.WithMultiplier(input.multiplier),
			cuckoo.WithLogger(log.StandardLogger()),
		)
		n, err := tbl.Load(f, func(_ int, p cuckoo.Placement) {
			for _, step := range p.Steps {
				fmt.Fprintln(out, step)
			}
		})
		if errors.Is(err, cuckoo.ErrPlacementFailed) {
			fmt.Fprintln(out, "Placement has failed")
		}
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		log.WithField("file", path).Debugf("placed %d strings", n)
		if input.verbose {
			fmt.Fprint(out, tbl)
		}

		return nil
	}
}
