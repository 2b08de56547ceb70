// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that cannot be solved.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	envFileVar        = "SKILLGRAPH_ENV"
	defaultEnvFile    = ".env"
	envMaxDelta       = "SKILLGRAPH_MAX_DELTA"
	envMaxIterations  = "SKILLGRAPH_MAX_ITERATIONS"
	envLogLevel       = "SKILLGRAPH_LOG_LEVEL"
	envLogFormat      = "SKILLGRAPH_LOG_FORMAT"
	defaultMaxDelta   = 1e-4
	defaultIterations = 100
)

type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Graph   GraphConfig   `yaml:"graph"`
}

type SolverConfig struct {
	MaxDelta      float64 `yaml:"max_delta" validate:"gte=0,finite"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// GraphConfig describes the model. Every name used by Sums, Likelihoods and
// Observations must be declared in Variables.
type GraphConfig struct {
	Variables    []VariableConfig    `yaml:"variables" validate:"dive"`
	Sums         []SumConfig         `yaml:"sums" validate:"dive"`
	Likelihoods  []LikelihoodConfig  `yaml:"likelihoods" validate:"dive"`
	Observations []ObservationConfig `yaml:"observations" validate:"dive"`
}

// VariableConfig declares a variable. A zero StdDev leaves it without prior.
type VariableConfig struct {
	Name   string  `yaml:"name" validate:"required"`
	Mean   float64 `yaml:"mean" validate:"finite"`
	StdDev float64 `yaml:"stddev" validate:"gte=0,finite"`
}

// HasPrior reports whether the variable starts with an informed prior.
func (v VariableConfig) HasPrior() bool { return v.StdDev > 0 }

// SumConfig declares Sum = Σ Weights[i]·Summands[i]. Missing weights
// default to 1 for every summand.
type SumConfig struct {
	Sum      string    `yaml:"sum" validate:"required"`
	Summands []string  `yaml:"summands" validate:"min=1,dive,required"`
	Weights  []float64 `yaml:"weights" validate:"dive,finite"`
}

// LikelihoodConfig declares Performance ~ N(Skill, Beta²).
type LikelihoodConfig struct {
	Skill       string  `yaml:"skill" validate:"required"`
	Performance string  `yaml:"performance" validate:"required"`
	Beta        float64 `yaml:"beta" validate:"gt=0,finite"`
}

// ObservationConfig pins Variable to N(Mean, StdDev²).
type ObservationConfig struct {
	Variable string  `yaml:"variable" validate:"required"`
	Mean     float64 `yaml:"mean" validate:"finite"`
	StdDev   float64 `yaml:"stddev" validate:"gt=0,finite"`
}

// Default returns the configuration used before any file or env override.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxDelta:      defaultMaxDelta,
			MaxIterations: defaultIterations,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the .env file, then path (if not empty), then environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	envFile := os.Getenv(envFileVar)
	if envFile == "" {
		envFile = defaultEnvFile
	}
	// Missing .env is normal.
	_ = godotenv.Load(envFile)

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	cfg.Graph.fillWeights()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envMaxDelta); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Solver.MaxDelta = f
		}
	}
	if v := os.Getenv(envMaxIterations); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Solver.MaxIterations = n
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.Logging.Format = v
	}
}

func (g *GraphConfig) fillWeights() {
	for i := range g.Sums {
		if len(g.Sums[i].Weights) == 0 {
			g.Sums[i].Weights = make([]float64, len(g.Sums[i].Summands))
			for j := range g.Sums[i].Weights {
				g.Sums[i].Weights[j] = 1
			}
		}
	}
}

// Validate runs the struct-tag rules, then checks that every name a sum,
// likelihood or observation uses is declared once in Variables.
//
// Errors:
//   - ErrInvalidConfig (wrapped). Tag failures also wrap
//     validator.ValidationErrors, with fields named by their yaml keys.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w: %w", err, ErrInvalidConfig)
	}

	return c.Graph.checkReferences()
}

func (g *GraphConfig) checkReferences() error {
	declared := make(map[string]struct{}, len(g.Variables))
	for i, v := range g.Variables {
		if _, dup := declared[v.Name]; dup {
			return fmt.Errorf("graph.variables[%d]: duplicate name %q: %w", i, v.Name, ErrInvalidConfig)
		}
		declared[v.Name] = struct{}{}
	}
	known := func(field, name string) error {
		if _, ok := declared[name]; !ok {
			return fmt.Errorf("%s: unknown variable %q: %w", field, name, ErrInvalidConfig)
		}
		return nil
	}

	for i, s := range g.Sums {
		field := fmt.Sprintf("graph.sums[%d]", i)
		if err := known(field+".sum", s.Sum); err != nil {
			return err
		}
		if len(s.Weights) != len(s.Summands) {
			return fmt.Errorf("%s: %d weights for %d summands: %w", field, len(s.Weights), len(s.Summands), ErrInvalidConfig)
		}
		for j, name := range s.Summands {
			if err := known(fmt.Sprintf("%s.summands[%d]", field, j), name); err != nil {
				return err
			}
		}
	}
	for i, l := range g.Likelihoods {
		field := fmt.Sprintf("graph.likelihoods[%d]", i)
		if err := known(field+".skill", l.Skill); err != nil {
			return err
		}
		if err := known(field+".performance", l.Performance); err != nil {
			return err
		}
	}
	for i, o := range g.Observations {
		if err := known(fmt.Sprintf("graph.observations[%d].variable", i), o.Variable); err != nil {
			return err
		}
	}

	return nil
}
