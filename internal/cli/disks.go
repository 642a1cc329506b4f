package cli

import (
	"fmt"

	"github.com/katalvlaran/algolab/disks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDisksCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disks",
		Short: "Sort an alternating row of light and dark disks",
		Args:  cobra.NoArgs,
		RunE:  runDisks(input),
	}
	cmd.Flags().IntVarP(&input.lightCount, "light", "n", 4, "number of light disks (equal to the number of dark disks)")

	return cmd
}

func runDisks(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		row, err := disks.NewRow(input.lightCount)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "before:        %s\n", row)

		strategies := []struct {
			name string
			fn   func(*disks.Row) (disks.Sorted, error)
		}{
			{"left-to-right", disks.SortLeftToRight},
			{"lawnmower", disks.SortLawnmower},
		}
		for _, s := range strategies {
			res, err := s.fn(row)
			if err != nil {
				return err
			}
			log.WithField("strategy", s.name).Debugf("sorted %d disks", row.Total())
			fmt.Fprintf(out, "%-14s %s (swaps: %d)\n", s.name+":", res.After(), res.SwapCount())
		}

		return nil
	}
}
