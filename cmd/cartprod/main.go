package main

import (
	"os"

	"github.com/cartprod/cartprod/internal/logging"
)

func main() {
	rootCmd := newRootCmd()

	registerEnumerateCmd(rootCmd)
	registerEstimateCmd(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Msg("terminated with errors")
		os.Exit(1)
	}
}
