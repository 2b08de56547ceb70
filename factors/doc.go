// SPDX-License-Identifier: MIT

// Package factors implements the Gaussian factor nodes of a TrueSkill-style
// factor graph.
//
// 🚀 What is here?
//
//	WeightedSumFactor - the linear constraint V0 = Σ aᵢ·Vᵢ between one sum
//	                    variable and n summands, propagated in every direction.
//	PriorFactor       - pins a variable to N(mean, variance).
//	LikelihoodFactor  - y ~ N(x, β²) between two variables.
//
// ✨ Weighted sum in a nutshell:
//
//	At construction the factor solves V0 = a₁V₁ + … + aₙVₙ once for every
//	variable, giving n+1 weight plans. Plan 0 is the equation itself; plan k
//	(k ≥ 1) is
//
//	    Vₖ = Σ_{j≠k} (−aⱼ/aₖ)·Vⱼ + (1/aₖ)·V0
//
//	with V0 placed last. UpdateMessage(k) removes each other variable's
//	message from its marginal (the cavity), sums wᵢ²/precision and
//	wᵢ·precisionMean/precision over them, and turns those sums into the new
//	message to Vₖ.
//
// Numeric policy:
//
//   - A zero coefficient aₖ forces every weight of plan k to 0 instead of
//     dividing by zero. The summand then learns nothing through this factor.
//     This is an approximation, not the exact limit, and is kept on purpose.
//   - Terms with weight 0 are skipped.
//   - A cavity with zero precision means some other variable has no
//     information yet; the outgoing message is then uniform.
//   - A message whose sums overflow is uniform, and an update whose marginal
//     would overflow leaves message and marginal unchanged. No NaN or Inf is
//     ever written into a message or marginal.
//   - A weight is rejected at construction when any plan would need a
//     coefficient whose square overflows, e.g. a = 1e-160 needs (1/a)² = 1e320.
//
// Errors:
//   - ErrInvalidArgument - bad construction input (wrapped with context):
//     no summands, mismatched lengths, nil variables, non-finite weights,
//     or an overflowing plan coefficient.
//   - factorgraph.ErrIndexOutOfRange - bad message index (wrapped).
//
// Concurrency:
//
//	Factors hold no locks. The caller serializes updates touching the same
//	variables.
package factors
