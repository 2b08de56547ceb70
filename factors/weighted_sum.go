// SPDX-License-Identifier: MIT

package factors

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/gaussian"
)

// WeightedSumFactor encodes V0 = Σ aᵢ·Vᵢ between a sum variable (binding
// index 0) and n summands (binding indices 1..n, in construction order).
type WeightedSumFactor struct {
	factorgraph.Base

	// plans[k] solves the constraint for the variable bound at index k.
	plans []WeightPlan
}

var _ factorgraph.Factor = (*WeightedSumFactor)(nil)

// NewWeightedSum builds the factor for sum = Σ weights[i]·summands[i] and
// binds sum, then every summand.
//
// Errors:
//   - ErrInvalidArgument (wrapped): no summands, len(weights) != len(summands),
//     a nil variable, or a weight DerivePlans rejects.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the weight plans.
func NewWeightedSum(sum *factorgraph.Variable, summands []*factorgraph.Variable, weights []float64) (*WeightedSumFactor, error) {
	if len(summands) == 0 {
		return nil, fmt.Errorf("NewWeightedSum: no summands: %w", ErrInvalidArgument)
	}
	if len(weights) != len(summands) {
		return nil, fmt.Errorf("NewWeightedSum: %d weights for %d summands: %w",
			len(weights), len(summands), ErrInvalidArgument)
	}
	if sum == nil {
		return nil, fmt.Errorf("NewWeightedSum: nil sum variable: %w", ErrInvalidArgument)
	}
	for i, v := range summands {
		if v == nil {
			return nil, fmt.Errorf("NewWeightedSum: nil summand %d: %w", i, ErrInvalidArgument)
		}
	}

	plans, err := DerivePlans(weights)
	if err != nil {
		return nil, fmt.Errorf("NewWeightedSum: %w", err)
	}

	f := &WeightedSumFactor{
		Base:  factorgraph.NewBase(sumName(sum, summands, weights)),
		plans: plans,
	}
	f.Bind(sum)
	for _, v := range summands {
		f.Bind(v)
	}

	return f, nil
}

// sumName renders the constraint, e.g. "team = 1.00*[alice] - 0.50*[bob]".
func sumName(sum *factorgraph.Variable, summands []*factorgraph.Variable, weights []float64) string {
	var sb strings.Builder
	sb.WriteString(sum.Name())
	sb.WriteString(" = ")
	for i, v := range summands {
		if i == 0 && weights[i] < 0 {
			sb.WriteString("-")
		}
		fmt.Fprintf(&sb, "%.2f*[%s]", math.Abs(weights[i]), v.Name())
		if i < len(summands)-1 {
			if weights[i+1] >= 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
		}
	}

	return sb.String()
}

// Plans returns a deep copy of the n+1 weight plans.
func (f *WeightedSumFactor) Plans() []WeightPlan {
	out := make([]WeightPlan, len(f.plans))
	for i, p := range f.plans {
		out[i] = p.clone()
	}

	return out
}

// LogNormalization sums LogRatioNormalization(marginal, message) over the
// summands (indices 1..n). The sum variable does not contribute. Pure.
func (f *WeightedSumFactor) LogNormalization() float64 {
	result := 0.0
	for i := 1; i < f.NumberOfMessages(); i++ {
		result += gaussian.LogRatioNormalization(f.Variable(i).Value(), f.Message(i).Value())
	}

	return result
}

// UpdateMessage recomputes the message to the variable at index using plan
// index, folds it into that variable's marginal and returns
// newMarginal − oldMarginal.
//
// Implementation:
//   - Stage 1: validate index ∈ [0, n].
//   - Stage 2: build the outgoing message from the other n variables' cavities.
//   - Stage 3: marginal = (oldMarginal ÷ oldMessage) × newMessage; write both
//     back unless the marginal overflows, in which case nothing changes.
//
// Errors:
//   - factorgraph.ErrIndexOutOfRange (wrapped).
//
// Complexity:
//   - Time O(n), Space O(1).
func (f *WeightedSumFactor) UpdateMessage(index int) (gaussian.Difference, error) {
	if err := f.CheckIndex("UpdateMessage", index); err != nil {
		return gaussian.Difference{}, err
	}
	plan := f.plans[index]
	target := plan.Order[0]

	message := f.Message(target)
	variable := f.Variable(target)
	oldMessage := message.Value()
	oldMarginal := variable.Value()

	newMessage := f.outgoing(plan)
	newMarginal := gaussian.Multiply(gaussian.Divide(oldMarginal, oldMessage), newMessage)
	if !newMarginal.IsFinite() {
		// Overflow: keep the previous message and marginal.
		return gaussian.Difference{}, nil
	}

	message.SetValue(newMessage)
	variable.SetValue(newMarginal)

	return gaussian.Subtract(newMarginal, oldMarginal), nil
}

// outgoing computes the message to plan.Order[0].
//
// 1/newPrecision = Σ wᵢ² / cavityᵢ.precision and
// newPrecisionMean = newPrecision · Σ wᵢ · cavityᵢ.precisionMean / cavityᵢ.precision,
// where cavityᵢ = marginalᵢ ÷ messageᵢ.
func (f *WeightedSumFactor) outgoing(plan WeightPlan) gaussian.Distribution {
	inverseOfNewPrecisionSum := 0.0
	weightedMeanSum := 0.0

	for i, w := range plan.Weights {
		if w == 0 {
			continue
		}
		slot := plan.Order[i+1]
		cavity := gaussian.Divide(f.Variable(slot).Value(), f.Message(slot).Value())
		if cavity.Precision() == 0 {
			// A contributor with no information leaves the sum unconstrained.
			return gaussian.Uniform()
		}
		inverseOfNewPrecisionSum += plan.WeightsSquared[i] / cavity.Precision()
		weightedMeanSum += w * cavity.PrecisionMean() / cavity.Precision()
	}

	if inverseOfNewPrecisionSum == 0 || math.IsInf(inverseOfNewPrecisionSum, 0) ||
		math.IsNaN(inverseOfNewPrecisionSum) ||
		math.IsNaN(weightedMeanSum) || math.IsInf(weightedMeanSum, 0) {
		return gaussian.Uniform()
	}
	newPrecision := 1.0 / inverseOfNewPrecisionSum
	message := gaussian.FromPrecisionMean(newPrecision*weightedMeanSum, newPrecision)
	if !message.IsFinite() {
		return gaussian.Uniform()
	}

	return message
}
