// SPDX-License-Identifier: MIT

package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/skillgraph/config"
	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/factors"
	"github.com/katalvlaran/skillgraph/gaussian"
)

var (
	// ErrUnknownVariable indicates a factor refers to an undeclared variable.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrDuplicateVariable indicates a name declared twice.
	ErrDuplicateVariable = errors.New("model: duplicate variable")
)

// Model is a built factor graph and the schedule that solves it.
type Model struct {
	variables []*factorgraph.Variable
	byName    map[string]*factorgraph.Variable
	factors   factorgraph.List
	priors    factorgraph.Schedule
	loop      factorgraph.Schedule
}

// Build wires g into variables, factors and a schedule. opts are passed to
// every Step and to the propagation Loop.
//
// Errors:
//   - ErrUnknownVariable, ErrDuplicateVariable (wrapped).
//   - factors.ErrInvalidArgument (wrapped) from factor construction.
func Build(g config.GraphConfig, opts ...factorgraph.Option) (*Model, error) {
	m := &Model{byName: make(map[string]*factorgraph.Variable, len(g.Variables))}

	var priors []factorgraph.Schedule
	for _, vc := range g.Variables {
		if _, dup := m.byName[vc.Name]; dup {
			return nil, fmt.Errorf("Build: %q: %w", vc.Name, ErrDuplicateVariable)
		}
		v := factorgraph.NewVariable(vc.Name, gaussian.Uniform())
		m.variables = append(m.variables, v)
		m.byName[vc.Name] = v
		if !vc.HasPrior() {
			continue
		}
		f, err := factors.NewPrior(vc.Mean, vc.StdDev*vc.StdDev, v)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		m.factors = append(m.factors, f)
		priors = append(priors, m.step(f, 0, opts))
	}
	for _, oc := range g.Observations {
		v, err := m.lookup(oc.Variable)
		if err != nil {
			return nil, err
		}
		f, err := factors.NewPrior(oc.Mean, oc.StdDev*oc.StdDev, v)
		if err != nil {
			return nil, fmt.Errorf("Build: observation: %w", err)
		}
		m.factors = append(m.factors, f)
		priors = append(priors, m.step(f, 0, opts))
	}

	var forward, sums, backward []factorgraph.Schedule
	for _, lc := range g.Likelihoods {
		skill, err := m.lookup(lc.Skill)
		if err != nil {
			return nil, err
		}
		perf, err := m.lookup(lc.Performance)
		if err != nil {
			return nil, err
		}
		f, err := factors.NewLikelihood(lc.Beta*lc.Beta, skill, perf)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		m.factors = append(m.factors, f)
		forward = append(forward, m.step(f, 1, opts))
		backward = append(backward, m.step(f, 0, opts))
	}
	for _, sc := range g.Sums {
		sum, err := m.lookup(sc.Sum)
		if err != nil {
			return nil, err
		}
		summands := make([]*factorgraph.Variable, len(sc.Summands))
		for i, name := range sc.Summands {
			if summands[i], err = m.lookup(name); err != nil {
				return nil, err
			}
		}
		f, err := factors.NewWeightedSum(sum, summands, sc.Weights)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		m.factors = append(m.factors, f)
		for i := 0; i < f.NumberOfMessages(); i++ {
			sums = append(sums, m.step(f, i, opts))
		}
	}

	body := make([]factorgraph.Schedule, 0, len(forward)+len(sums)+len(backward))
	body = append(append(append(body, forward...), sums...), backward...)
	m.priors = factorgraph.NewSequence("priors", priors...)
	m.loop = factorgraph.NewLoop("propagate", factorgraph.NewSequence("sweep", body...), opts...)

	return m, nil
}

func (m *Model) lookup(name string) (*factorgraph.Variable, error) {
	v, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("Build: %q: %w", name, ErrUnknownVariable)
	}

	return v, nil
}

func (m *Model) step(f factorgraph.Factor, index int, opts []factorgraph.Option) factorgraph.Schedule {
	name := fmt.Sprintf("%s -> %d", f.Name(), index)

	return factorgraph.NewStep(name, f, index, opts...)
}

// Solve sends every prior once, then runs the propagation loop. It returns
// the delta of the loop's last iteration; the one-shot prior deltas are not
// part of it.
//
// Errors:
//   - factorgraph.ErrNotConverged (wrapped) when the loop hits its cap. The
//     marginals still hold the last iteration's values.
//   - ctx.Err() when cancelled.
func (m *Model) Solve(ctx context.Context) (float64, error) {
	if _, err := m.priors.Visit(ctx); err != nil {
		return 0, err
	}

	return m.loop.Visit(ctx)
}

// LogEvidence returns the log-normalization of the model given the current
// messages. Call it after Solve.
func (m *Model) LogEvidence() (float64, error) {
	return m.factors.LogNormalization()
}

// Variables returns the variables in declaration order.
func (m *Model) Variables() []*factorgraph.Variable {
	out := make([]*factorgraph.Variable, len(m.variables))
	copy(out, m.variables)

	return out
}

// Variable returns the variable named name.
func (m *Model) Variable(name string) (*factorgraph.Variable, bool) {
	v, ok := m.byName[name]

	return v, ok
}

// Factors returns every factor of the model.
func (m *Model) Factors() factorgraph.List {
	out := make(factorgraph.List, len(m.factors))
	copy(out, m.factors)

	return out
}
