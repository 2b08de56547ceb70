// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

// newRootCmd assembles the command tree. Each call returns fresh commands so
// tests can execute them independently.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skillgraph",
		Short: "Gaussian belief propagation over skill factor graphs",
		Long: `skillgraph builds a factor graph of Gaussian skill, performance and
team variables, propagates beliefs through prior, likelihood and
weighted-sum factors, and prints the resulting marginals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newPlanCmd())

	return root
}
