// SPDX-License-Identifier: MIT

package gaussian

import "math"

// logSqrt2Pi is log(√(2π)), shared by both normalizers.
var logSqrt2Pi = math.Log(math.Sqrt(2 * math.Pi))

// Multiply combines two independent beliefs: precisions and precision-means add.
// Complexity: O(1).
func Multiply(left, right Distribution) Distribution {
	return FromPrecisionMean(
		left.precisionMean+right.precisionMean,
		left.precision+right.precision,
	)
}

// Divide removes right's contribution from left: precisions and
// precision-means subtract. Dividing a distribution by itself yields Uniform().
// Complexity: O(1).
func Divide(left, right Distribution) Distribution {
	return FromPrecisionMean(
		left.precisionMean-right.precisionMean,
		left.precision-right.precision,
	)
}

// Difference is the signed change between two distributions in precision space.
// It is what a factor update returns so a schedule can decide on convergence.
type Difference struct {
	PrecisionMean float64 // left.PrecisionMean - right.PrecisionMean
	Precision     float64 // left.Precision - right.Precision
}

// Magnitude is max(|ΔprecisionMean|, √|Δprecision|), the scalar used to
// compare a delta against a convergence threshold.
func (d Difference) Magnitude() float64 {
	return math.Max(math.Abs(d.PrecisionMean), math.Sqrt(math.Abs(d.Precision)))
}

// Subtract returns the signed difference left − right.
func Subtract(left, right Distribution) Difference {
	return Difference{
		PrecisionMean: left.precisionMean - right.precisionMean,
		Precision:     left.precision - right.precision,
	}
}

// AbsoluteDifference is Subtract(left, right).Magnitude().
func AbsoluteDifference(left, right Distribution) float64 {
	return Subtract(left, right).Magnitude()
}

// LogProductNormalization returns log ∫ left(x)·right(x) dx.
//
// Returns 0 when either side carries no information (precision ≤ 0).
func LogProductNormalization(left, right Distribution) float64 {
	if left.precision <= 0 || right.precision <= 0 {
		return 0
	}

	varianceSum := left.variance + right.variance
	meanDifference := left.mean - right.mean

	return -logSqrt2Pi - math.Log(varianceSum)/2 - meanDifference*meanDifference/(2*varianceSum)
}

// LogRatioNormalization returns log ∫ numerator(x)/denominator(x) dx.
//
// Returns 0 when either side carries no information (precision ≤ 0), and
// when the denominator is not wider than the numerator, where the integral
// diverges.
func LogRatioNormalization(numerator, denominator Distribution) float64 {
	if numerator.precision <= 0 || denominator.precision <= 0 {
		return 0
	}

	varianceDifference := denominator.variance - numerator.variance
	if varianceDifference <= 0 {
		return 0
	}
	meanDifference := numerator.mean - denominator.mean

	return math.Log(denominator.variance) + logSqrt2Pi -
		math.Log(varianceDifference)/2 +
		meanDifference*meanDifference/(2*varianceDifference)
}
