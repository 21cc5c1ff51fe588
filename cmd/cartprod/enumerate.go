package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cartprod/cartprod/internal/logging"
	"github.com/cartprod/cartprod/pkg/product"
)

func registerEnumerateCmd(rootCmd *cobra.Command) {
	enumerateCmd := &cobra.Command{
		Use:   "enumerate factor factor [factor...]",
		Short: "streams the tuples of the product of the given factors",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := cmd.Flags().GetUint64("limit")
			if err != nil {
				return err
			}

			prod, err := product.New(factorsFromArgs(args)...)
			if err != nil {
				return err
			}

			logging.Debug().
				Int("factors", len(args)).
				Stringer("estimate", prod.Estimate()).
				Msg("enumerating product")

			var produced uint64
			for tuple := range prod.All() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tuple, " "))
				produced++
				if limit > 0 && produced >= limit {
					logging.Info().Uint64("limit", limit).Msg("stopping at tuple limit")
					break
				}
			}
			return nil
		},
	}
	enumerateCmd.Flags().Uint64("limit", 0, "maximum number of tuples to emit (0 means no limit)")
	rootCmd.AddCommand(enumerateCmd)
}
