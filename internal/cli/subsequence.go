package cli

import (
	"fmt"

	"github.com/katalvlaran/algolab/subsequence"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxPowersetSize caps --exhaustive; 2^24 subsets is already slow.
const maxPowersetSize = 24

func newSubsequenceCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subsequence",
		Aliases: []string{"lnis"},
		Short:   "Find a longest non-increasing subsequence of a random sequence",
		Args:    cobra.NoArgs,
		RunE:    runSubsequence(input),
	}
	cmd.Flags().IntVarP(&input.size, "size", "n", 12, "length of the generated sequence")
	cmd.Flags().IntVarP(&input.maxElement, "max", "m", 100, "largest generated value")
	cmd.Flags().BoolVarP(&input.exhaustive, "exhaustive", "x", false, "also run the exhaustive powerset search")
	addSeedFlag(cmd.Flags(), &input.seed)

	return cmd
}

func runSubsequence(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.maxElement < 0 {
			return errors.Errorf("--max must be non-negative, got %d", input.maxElement)
		}
		seq, err := subsequence.Random(input.size,
			subsequence.WithSeed(input.seed),
			subsequence.WithMaxElement(input.maxElement))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sequence:   %s\n", seq)

		dp := subsequence.LongestNonIncreasingEndToBeginning(seq)
		fmt.Fprintf(out, "dyn prog:   %s (length %d)\n", dp, len(dp))

		if !input.exhaustive {
			return nil
		}
		if len(seq) > maxPowersetSize {
			log.Warnf("skipping exhaustive search: %d elements exceeds %d", len(seq), maxPowersetSize)

			return nil
		}
		ps := subsequence.LongestNonIncreasingPowerset(seq)
		fmt.Fprintf(out, "powerset:   %s (length %d)\n", ps, len(ps))
		if len(ps) != len(dp) {
			return errors.Errorf("length mismatch: dyn prog %d, powerset %d", len(dp), len(ps))
		}

		return nil
	}
}
