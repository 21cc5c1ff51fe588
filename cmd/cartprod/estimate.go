package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartprod/cartprod/pkg/product"
)

func registerEstimateCmd(rootCmd *cobra.Command) {
	estimateCmd := &cobra.Command{
		Use:   "estimate factor factor [factor...]",
		Short: "prints the cardinality estimate of the product without enumerating it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prod, err := product.New(factorsFromArgs(args)...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prod.Estimate())
			return nil
		},
	}
	rootCmd.AddCommand(estimateCmd)
}
