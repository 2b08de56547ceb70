// SPDX-License-Identifier: MIT

package factorgraph

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Schedule decides which factor updates run, and in what order.
type Schedule interface {
	// Name labels the schedule in logs, metrics and errors.
	Name() string

	// Visit runs the schedule once and returns the largest delta magnitude
	// it observed.
	Visit(ctx context.Context) (float64, error)
}

// Compile-time assertions.
var (
	_ Schedule = (*Step)(nil)
	_ Schedule = (*Sequence)(nil)
	_ Schedule = (*Loop)(nil)
)

// Step updates the message at one index of one factor.
type Step struct {
	name   string
	factor Factor
	index  int
	opts   Options
}

// NewStep returns a Step running factor.UpdateMessage(index).
// Only WithLogger and WithMetrics affect a Step.
func NewStep(name string, factor Factor, index int, opts ...Option) *Step {
	return &Step{name: name, factor: factor, index: index, opts: gatherOptions(opts...)}
}

// Name returns the step label.
func (s *Step) Name() string { return s.name }

// Visit performs the update and returns its delta magnitude.
//
// Errors:
//   - ErrNilFactor (wrapped) when built around nil.
//   - the factor's ErrIndexOutOfRange (wrapped) for a bad index.
func (s *Step) Visit(ctx context.Context) (float64, error) {
	if s.factor == nil {
		return 0, fmt.Errorf("Step %q: %w", s.name, ErrNilFactor)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	diff, err := s.factor.UpdateMessage(s.index)
	if err != nil {
		return 0, fmt.Errorf("Step %q: %w", s.name, err)
	}
	delta := diff.Magnitude()
	s.opts.metrics.observeUpdate(s.name, delta)

	return delta, nil
}

// Sequence visits its children in order.
type Sequence struct {
	name      string
	schedules []Schedule
}

// NewSequence returns a Sequence over schedules. The slice is copied.
func NewSequence(name string, schedules ...Schedule) *Sequence {
	own := make([]Schedule, len(schedules))
	copy(own, schedules)

	return &Sequence{name: name, schedules: own}
}

// Name returns the sequence label.
func (s *Sequence) Name() string { return s.name }

// Visit runs every child and returns the largest delta among them.
// The first child error stops the sequence.
func (s *Sequence) Visit(ctx context.Context) (float64, error) {
	maxDelta := 0.0
	for i, child := range s.schedules {
		if child == nil {
			return maxDelta, fmt.Errorf("Sequence %q child %d: %w", s.name, i, ErrNilSchedule)
		}
		delta, err := child.Visit(ctx)
		if err != nil {
			return maxDelta, fmt.Errorf("Sequence %q: %w", s.name, err)
		}
		maxDelta = math.Max(maxDelta, delta)
	}

	return maxDelta, nil
}

// Loop repeats a schedule until its delta falls to MaxDelta.
type Loop struct {
	name     string
	schedule Schedule
	opts     Options
}

// NewLoop returns a Loop over schedule configured by opts
// (WithMaxDelta, WithMaxIterations, WithLogger, WithMetrics).
func NewLoop(name string, schedule Schedule, opts ...Option) *Loop {
	return &Loop{name: name, schedule: schedule, opts: gatherOptions(opts...)}
}

// Name returns the loop label.
func (l *Loop) Name() string { return l.name }

// Visit runs the inner schedule at least once.
//
// Implementation:
//   - Stage 1: check ctx before every iteration.
//   - Stage 2: visit the inner schedule; stop when delta ≤ MaxDelta.
//   - Stage 3: stop with ErrNotConverged after MaxIterations.
//
// Returns:
//   - the delta of the last iteration.
//
// Errors:
//   - ErrNilSchedule, ErrNotConverged (wrapped), ctx.Err(), or the first
//     error of the inner schedule.
func (l *Loop) Visit(ctx context.Context) (float64, error) {
	if l.schedule == nil {
		return 0, fmt.Errorf("Loop %q: %w", l.name, ErrNilSchedule)
	}
	log := l.opts.logger.With(zap.String("loop", l.name))

	delta := math.Inf(1)
	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return delta, err
		}

		var err error
		delta, err = l.schedule.Visit(ctx)
		if err != nil {
			return delta, fmt.Errorf("Loop %q iteration %d: %w", l.name, iteration, err)
		}
		l.opts.metrics.observeIteration(l.name)
		log.Debug("loop iteration", zap.Int("iteration", iteration), zap.Float64("delta", delta))

		if delta <= l.opts.maxDelta {
			log.Debug("loop converged", zap.Int("iterations", iteration), zap.Float64("delta", delta))

			return delta, nil
		}
		if iteration >= l.opts.maxIterations {
			l.opts.metrics.observeUnconverged(l.name)
			log.Warn("loop stopped at iteration cap",
				zap.Int("iterations", iteration),
				zap.Float64("delta", delta),
				zap.Float64("max_delta", l.opts.maxDelta))

			return delta, fmt.Errorf("Loop %q: delta %g > %g after %d iterations: %w",
				l.name, delta, l.opts.maxDelta, iteration, ErrNotConverged)
		}
	}
}
