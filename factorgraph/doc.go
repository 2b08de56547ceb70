// SPDX-License-Identifier: MIT

// Package factorgraph is the runtime the Gaussian factors plug into: variables
// holding marginals, messages holding one factor's contribution to one
// variable, the Base binding capability every factor embeds, and schedules
// that decide when factors update.
//
// 🚀 What lives here?
//
//	Variable  - owns one current marginal (gaussian.Distribution) and a prior.
//	Message   - owns one factor→variable contribution; starts uniform.
//	Base      - ordered (variable, message) bindings; index 0 is the first bound.
//	Factor    - the interface schedules and List consume.
//	Step      - update one message of one factor.
//	Sequence  - visit children in order, report the largest delta.
//	Loop      - repeat a schedule until its delta ≤ MaxDelta.
//	List      - model evidence (log-normalization) over a set of factors.
//
// ⚙️ Usage:
//
//	sum, _ := factors.NewWeightedSum(perf, []*factorgraph.Variable{a, b}, []float64{1, 1})
//	loop := factorgraph.NewLoop("team", factorgraph.NewSequence("sweep",
//		factorgraph.NewStep("to sum", sum, 0),
//		factorgraph.NewStep("to a", sum, 1),
//		factorgraph.NewStep("to b", sum, 2),
//	), factorgraph.WithMaxDelta(1e-4), factorgraph.WithLogger(logger))
//	delta, err := loop.Visit(ctx)
//
// Concurrency:
//
//	Nothing in this package locks. A schedule runs on the caller's goroutine and
//	every Variable/Message must have a single writer at a time; callers that
//	share variables across goroutines serialize access themselves.
//
// Errors:
//   - ErrIndexOutOfRange - message index outside [0, NumberOfMessages).
//   - ErrNotConverged    - Loop hit MaxIterations before MaxDelta.
//   - ErrNilFactor / ErrNilSchedule - a Step or Loop built around nil.
package factorgraph
