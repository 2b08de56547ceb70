// SPDX-License-Identifier: MIT

package gaussian

import (
	"fmt"
	"math"
)

// Distribution is an immutable one-dimensional Gaussian.
//
// The zero value is the uniform distribution (precision 0). Both
// parameterizations are kept so that reading back Mean/Variance after a
// FromMeanAndVariance round trip returns the original inputs exactly.
type Distribution struct {
	mean          float64 // 0 when precision == 0
	variance      float64 // 1/precision; +Inf when precision == 0
	precision     float64 // 1/variance
	precisionMean float64 // mean*precision
}

// FromMeanAndStdDev returns N(mean, stdDev²).
// stdDev must be positive; +Inf yields Uniform().
func FromMeanAndStdDev(mean, stdDev float64) Distribution {
	return FromMeanAndVariance(mean, stdDev*stdDev)
}

// FromMeanAndVariance returns N(mean, variance).
// variance must be positive; +Inf yields Uniform().
func FromMeanAndVariance(mean, variance float64) Distribution {
	if math.IsInf(variance, 1) {
		return Uniform()
	}
	precision := 1.0 / variance

	return Distribution{
		mean:          mean,
		variance:      variance,
		precision:     precision,
		precisionMean: precision * mean,
	}
}

// FromPrecisionMean builds a distribution from its natural parameters.
//
// Behavior highlights:
//   - precision == 0 is the "no information" case: Mean() is 0 and Variance()
//     is +Inf regardless of precisionMean.
//   - precision < 0 is kept as is (improper cavity); Variance() is negative.
func FromPrecisionMean(precisionMean, precision float64) Distribution {
	if precision == 0 {
		return Distribution{
			variance:      math.Inf(1),
			precisionMean: precisionMean,
		}
	}

	return Distribution{
		mean:          precisionMean / precision,
		variance:      1.0 / precision,
		precision:     precision,
		precisionMean: precisionMean,
	}
}

// Uniform returns the distribution carrying no information (precision 0).
func Uniform() Distribution {
	return Distribution{variance: math.Inf(1)}
}

// Mean returns the mean (0 for a uniform distribution).
func (d Distribution) Mean() float64 { return d.mean }

// Variance returns the variance (+Inf for a uniform distribution).
func (d Distribution) Variance() float64 {
	// The zero value has not been through a constructor.
	if d.precision == 0 {
		return math.Inf(1)
	}

	return d.variance
}

// StdDev returns the standard deviation. It is NaN for an improper
// (negative-precision) distribution.
func (d Distribution) StdDev() float64 {
	v := d.Variance()
	if v < 0 {
		return math.NaN()
	}

	return math.Sqrt(v)
}

// Precision returns 1/variance.
func (d Distribution) Precision() float64 { return d.precision }

// PrecisionMean returns mean/variance.
func (d Distribution) PrecisionMean() float64 { return d.precisionMean }

// IsUniform reports whether d carries no information.
func (d Distribution) IsUniform() bool { return d.precision == 0 }

// IsFinite reports whether every stored parameter is a finite number, with
// the single exception of the +Inf variance of a uniform distribution.
func (d Distribution) IsFinite() bool {
	if math.IsNaN(d.mean) || math.IsInf(d.mean, 0) {
		return false
	}
	if math.IsNaN(d.precision) || math.IsInf(d.precision, 0) {
		return false
	}
	if math.IsNaN(d.precisionMean) || math.IsInf(d.precisionMean, 0) {
		return false
	}

	return d.precision == 0 || !(math.IsNaN(d.variance) || math.IsInf(d.variance, 0))
}

// String implements fmt.Stringer as "μ=<mean>, σ=<stddev>".
func (d Distribution) String() string {
	return fmt.Sprintf("μ=%.4f, σ=%.4f", d.Mean(), d.StdDev())
}
