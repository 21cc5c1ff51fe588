package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cartprod/cartprod/internal/logging"
	"github.com/cartprod/cartprod/pkg/sequence"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "cartprod",
		Short:             "Lazy cartesian products over the command line",
		Long:              "Enumerates or estimates the cartesian product of comma-separated factors without materializing it",
		PersistentPreRunE: loggingPreRunE,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", `verbosity of logging ("trace", "debug", "info", "warn", "error")`)

	return rootCmd
}

func loggingPreRunE(cmd *cobra.Command, _ []string) error {
	levelFlag, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
	logging.SetGlobalLogger(logger)
	logging.Debug().Str("level", level.String()).Msg("configured logging")
	return nil
}

// factorsFromArgs turns each positional argument into one factor sequence.
// Every argument is a comma-separated list of items; an empty argument is an
// empty factor.
func factorsFromArgs(args []string) []sequence.Sequence[string] {
	factors := make([]sequence.Sequence[string], 0, len(args))
	for _, arg := range args {
		var items []string
		if arg != "" {
			items = strings.Split(arg, ",")
		}
		factors = append(factors, sequence.FromSlice(items))
	}
	return factors
}
