// SPDX-License-Identifier: MIT

package factors

import (
	"fmt"
	"math"
)

// WeightPlan is one rearrangement of V0 = Σ aᵢ·Vᵢ, solved for the variable
// at Order[0].
//
// Invariants:
//   - len(Weights) == len(WeightsSquared) == n, len(Order) == n+1.
//   - Weights[i] multiplies the variable at Order[i+1].
//   - WeightsSquared[i] == Weights[i]*Weights[i].
type WeightPlan struct {
	Weights        []float64
	WeightsSquared []float64
	Order          []int
}

// clone returns a deep copy so callers cannot mutate a factor's plans.
func (p WeightPlan) clone() WeightPlan {
	return WeightPlan{
		Weights:        append([]float64(nil), p.Weights...),
		WeightsSquared: append([]float64(nil), p.WeightsSquared...),
		Order:          append([]int(nil), p.Order...),
	}
}

// DerivePlans computes the n+1 weight plans of V0 = Σ weights[i]·V(i+1).
//
// Implementation:
//   - Stage 1: validate weights (non-empty, finite).
//   - Stage 2: plan 0 copies weights; order [0, 1, …, n].
//   - Stage 3: plan k ∈ [1, n] divides through by pivot a = weights[k-1]:
//     −weights[j]/a for every j ≠ k-1 in original order, then 1/a for V0;
//     order [k, other summands…, 0].
//
// Behavior highlights:
//   - pivot == 0: every weight of that plan is 0 (see package doc).
//
// Errors:
//   - ErrInvalidArgument (wrapped) for empty or non-finite weights, or when a
//     weight's square overflows.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func DerivePlans(weights []float64) ([]WeightPlan, error) {
	n := len(weights)
	if n == 0 {
		return nil, fmt.Errorf("DerivePlans: no weights: %w", ErrInvalidArgument)
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("DerivePlans: weight[%d]=%g is not finite: %w", i, w, ErrInvalidArgument)
		}
	}

	plans := make([]WeightPlan, n+1)

	// v_0 = a_1*v_1 + a_2*v_2 + ... + a_n*v_n
	direct := WeightPlan{
		Weights:        make([]float64, n),
		WeightsSquared: make([]float64, n),
		Order:          make([]int, n+1),
	}
	for i, w := range weights {
		direct.Weights[i] = w
		direct.WeightsSquared[i] = w * w
	}
	for i := range direct.Order {
		direct.Order[i] = i
	}
	plans[0] = direct

	// v_k = (-a_1/a_k)*v_1 + ... + (-a_n/a_k)*v_n + (1/a_k)*v_0, skipping j == k
	for k := 1; k <= n; k++ {
		pivot := weights[k-1]
		p := WeightPlan{
			Weights:        make([]float64, 0, n),
			WeightsSquared: make([]float64, 0, n),
			Order:          make([]int, 0, n+1),
		}
		p.Order = append(p.Order, k)

		for j, a := range weights {
			if j == k-1 {
				continue
			}
			w := 0.0
			if pivot != 0 {
				w = -a / pivot
			}
			p.Weights = append(p.Weights, w)
			p.WeightsSquared = append(p.WeightsSquared, w*w)
			p.Order = append(p.Order, j+1)
		}

		final := 0.0
		if pivot != 0 {
			final = 1.0 / pivot
		}
		p.Weights = append(p.Weights, final)
		p.WeightsSquared = append(p.WeightsSquared, final*final)
		p.Order = append(p.Order, 0)

		plans[k] = p
	}

	for k, p := range plans {
		for i, sq := range p.WeightsSquared {
			if math.IsInf(sq, 0) {
				return nil, fmt.Errorf("DerivePlans: plan %d weight %d (%g) overflows: %w",
					k, i, p.Weights[i], ErrInvalidArgument)
			}
		}
	}

	return plans, nil
}
