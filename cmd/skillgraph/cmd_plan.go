// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skillgraph/factors"
)

// newPlanCmd returns the plan command, which prints every rearrangement of
// V0 = Σ wᵢ·Vᵢ for the given weights.
//
// # Examples
//
//	skillgraph plan --weights 1,2,-1
func newPlanCmd() *cobra.Command {
	var weights []float64
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the weight plans of a weighted-sum constraint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plans, err := factors.DerivePlans(weights)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PLAN\tSOLVES\tWEIGHTS\tORDER")
			for k, p := range plans {
				fmt.Fprintf(tw, "%d\tV%d\t%v\t%v\n", k, p.Order[0], p.Weights, p.Order[1:])
			}

			return tw.Flush()
		},
	}
	cmd.Flags().Float64SliceVarP(&weights, "weights", "w", nil, "comma-separated weights a1,...,an")
	_ = cmd.MarkFlagRequired("weights")

	return cmd
}
