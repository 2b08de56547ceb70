// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/skillgraph/config"
	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/logging"
	"github.com/katalvlaran/skillgraph/model"
)

// newSolveCmd returns the solve command.
//
// # Examples
//
//	skillgraph solve -c graph.yaml
//	SKILLGRAPH_MAX_DELTA=1e-8 skillgraph solve -c graph.yaml --evidence
func newSolveCmd() *cobra.Command {
	var (
		configPath string
		evidence   bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Propagate beliefs through a graph and print every marginal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runSolve(cmd, cfg, logger, evidence)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the graph YAML file")
	cmd.Flags().BoolVar(&evidence, "evidence", false, "also print the log evidence of the solved model")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, evidence bool) error {
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	reg := prometheus.NewRegistry()
	metrics, err := factorgraph.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	m, err := model.Build(cfg.Graph,
		factorgraph.WithMaxDelta(cfg.Solver.MaxDelta),
		factorgraph.WithMaxIterations(cfg.Solver.MaxIterations),
		factorgraph.WithLogger(logger),
		factorgraph.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	logger.Info("model built",
		zap.Int("variables", len(m.Variables())),
		zap.Int("factors", len(m.Factors())))

	delta, err := m.Solve(cmd.Context())
	switch {
	case errors.Is(err, factorgraph.ErrNotConverged):
		logger.Warn("printing unconverged marginals", zap.Error(err))
	case err != nil:
		return err
	default:
		logger.Info("model solved", zap.Float64("delta", delta))
	}
	logMetrics(logger, reg)

	out := cmd.OutOrStdout()
	if err := printMarginals(out, m.Variables()); err != nil {
		return err
	}
	if evidence {
		logZ, err := m.LogEvidence()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "log evidence\t%.6f\n", logZ)
	}

	return nil
}

func printMarginals(w io.Writer, variables []*factorgraph.Variable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIABLE\tMEAN\tSTDDEV")
	for _, v := range variables {
		d := v.Value()
		if d.IsUniform() {
			fmt.Fprintf(tw, "%s\t-\t-\n", v.Name())
			continue
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", v.Name(), d.Mean(), d.StdDev())
	}

	return tw.Flush()
}

// logMetrics summarizes the run's counters at debug level.
func logMetrics(logger *zap.Logger, g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		total := 0.0
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		logger.Debug("metric", zap.String("name", mf.GetName()), zap.Float64("total", total))
	}
}
