// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skillgraph/config"
)

const teamYAML = `
solver:
  max_delta: 0.001
  max_iterations: 25
logging:
  level: debug
  format: console
graph:
  variables:
    - {name: alice, mean: 25, stddev: 8.3}
    - {name: bob, mean: 25, stddev: 8.3}
    - {name: alice_perf}
    - {name: bob_perf}
    - {name: team}
  likelihoods:
    - {skill: alice, performance: alice_perf, beta: 4.1667}
    - {skill: bob, performance: bob_perf, beta: 4.1667}
  sums:
    - sum: team
      summands: [alice_perf, bob_perf]
  observations:
    - {variable: team, mean: 60, stddev: 1}
`

// isolate points the loader at a missing .env and clears every override.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("SKILLGRAPH_ENV", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"SKILLGRAPH_MAX_DELTA", "SKILLGRAPH_MAX_ITERATIONS",
		"SKILLGRAPH_LOG_LEVEL", "SKILLGRAPH_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 1e-4, cfg.Solver.MaxDelta)
	assert.Equal(t, 100, cfg.Solver.MaxIterations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_YAML(t *testing.T) {
	isolate(t)
	cfg, err := config.Load(writeFile(t, "graph.yaml", teamYAML))
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Solver.MaxDelta)
	assert.Equal(t, 25, cfg.Solver.MaxIterations)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "console"}, cfg.Logging)

	require.Len(t, cfg.Graph.Variables, 5)
	assert.True(t, cfg.Graph.Variables[0].HasPrior())
	assert.False(t, cfg.Graph.Variables[4].HasPrior())
	require.Len(t, cfg.Graph.Sums, 1)
	assert.Equal(t, []float64{1, 1}, cfg.Graph.Sums[0].Weights, "weights default to 1")
	assert.Equal(t, 4.1667, cfg.Graph.Likelihoods[1].Beta)
	assert.Equal(t, config.ObservationConfig{Variable: "team", Mean: 60, StdDev: 1}, cfg.Graph.Observations[0])
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLGRAPH_MAX_DELTA", "1e-6")
	t.Setenv("SKILLGRAPH_MAX_ITERATIONS", "not-a-number")
	t.Setenv("SKILLGRAPH_LOG_LEVEL", "warn")

	cfg, err := config.Load(writeFile(t, "graph.yaml", teamYAML))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Solver.MaxDelta)
	assert.Equal(t, 25, cfg.Solver.MaxIterations, "unparsable override is ignored")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLGRAPH_ENV", writeFile(t, "test.env", "SKILLGRAPH_LOG_FORMAT=console\nSKILLGRAPH_MAX_ITERATIONS=7\n"))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 7, cfg.Solver.MaxIterations)
}

func TestLoad_FileErrors(t *testing.T) {
	isolate(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.yaml", "solver: [unclosed"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.Default()
		cfg.Graph = config.GraphConfig{
			Variables: []config.VariableConfig{
				{Name: "a", Mean: 1, StdDev: 1}, {Name: "b"}, {Name: "s"},
			},
			Sums:         []config.SumConfig{{Sum: "s", Summands: []string{"a", "b"}, Weights: []float64{1, -1}}},
			Likelihoods:  []config.LikelihoodConfig{{Skill: "a", Performance: "b", Beta: 2}},
			Observations: []config.ObservationConfig{{Variable: "s", Mean: 0, StdDev: 1}},
		}
		return cfg
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*config.Config){
		"negative max_delta":  func(c *config.Config) { c.Solver.MaxDelta = -1 },
		"zero iterations":     func(c *config.Config) { c.Solver.MaxIterations = 0 },
		"format":              func(c *config.Config) { c.Logging.Format = "xml" },
		"empty name":          func(c *config.Config) { c.Graph.Variables[1].Name = "" },
		"duplicate":           func(c *config.Config) { c.Graph.Variables[1].Name = "a" },
		"negative stddev":     func(c *config.Config) { c.Graph.Variables[0].StdDev = -1 },
		"unknown sum":         func(c *config.Config) { c.Graph.Sums[0].Sum = "x" },
		"unknown summand":     func(c *config.Config) { c.Graph.Sums[0].Summands[1] = "x" },
		"no summands":         func(c *config.Config) { c.Graph.Sums[0].Summands = nil },
		"weight count":        func(c *config.Config) { c.Graph.Sums[0].Weights = []float64{1} },
		"unknown skill":       func(c *config.Config) { c.Graph.Likelihoods[0].Skill = "x" },
		"zero beta":           func(c *config.Config) { c.Graph.Likelihoods[0].Beta = 0 },
		"unknown observation": func(c *config.Config) { c.Graph.Observations[0].Variable = "x" },
		"observation stddev":  func(c *config.Config) { c.Graph.Observations[0].StdDev = 0 },
		"NaN max_delta":       func(c *config.Config) { c.Solver.MaxDelta = math.NaN() },
		"infinite max_delta":  func(c *config.Config) { c.Solver.MaxDelta = math.Inf(1) },
		"infinite mean":       func(c *config.Config) { c.Graph.Variables[0].Mean = math.Inf(-1) },
		"infinite beta":       func(c *config.Config) { c.Graph.Likelihoods[0].Beta = math.Inf(1) },
		"NaN weight":          func(c *config.Config) { c.Graph.Sums[0].Weights[0] = math.NaN() },
		"empty summand":       func(c *config.Config) { c.Graph.Sums[0].Summands[0] = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

// TestValidate_FieldNames reports tag failures under their yaml keys.
func TestValidate_FieldNames(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.MaxIterations = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	var fieldErrs validator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Namespace()+":"+fe.Tag())
	}
	assert.ElementsMatch(t, []string{
		"Config.solver.max_iterations:gt",
		"Config.logging.format:oneof",
	}, fields)
}
