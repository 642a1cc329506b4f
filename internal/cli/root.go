package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "algolab",
		Short:             "Run the alternating disks, subsequence, cuckoo hashing and hazard grid algorithms.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging(input),
	}
	rootCmd.SetContext(ctx)
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json-logger", false, "output logs in json format")

	rootCmd.AddCommand(
		newDisksCommand(input),
		newSubsequenceCommand(input),
		newCuckooCommand(input),
		newGridCommand(input),
	)

	return rootCmd
}

func setupLogging(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		if input.jsonLogger {
			log.SetFormatter(&log.JSONFormatter{})
		} else {
			log.SetFormatter(&log.TextFormatter{
				DisableTimestamp: true,
				PadLevelText:     true,
			})
		}
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}

		return nil
	}
}
