// SPDX-License-Identifier: MIT

// Package gaussian implements the one-dimensional Gaussian value type used by
// the belief-propagation factors in this module.
//
// 🚀 Why two parameterizations?
//
//	A Distribution keeps both the moment form (mean, variance) and the natural
//	form (precision = 1/variance, precisionMean = mean/variance). In the natural
//	form multiplying two Gaussians (combining independent beliefs) and dividing
//	one by another (removing a belief's contribution) reduce to adding and
//	subtracting the two parameters, which is what every factor update does.
//
// ✨ Key features:
//   - FromMeanAndStdDev / FromMeanAndVariance / FromPrecisionMean constructors
//   - Uniform() - the "no information" distribution (precision 0)
//   - Multiply / Divide in precision space
//   - Subtract → Difference, a signed delta with a convergence Magnitude
//   - LogProductNormalization / LogRatioNormalization for model evidence
//
// Numeric policy:
//
//   - Zero precision always reads back as mean 0 and variance +Inf; it never
//     yields NaN.
//   - Negative precision (an improper cavity) is representable; StdDev reports
//     NaN for it and the normalizers treat it as carrying no information.
//
// Usage:
//
//	skill := gaussian.FromMeanAndStdDev(25, 25.0/3)
//	noise := gaussian.FromMeanAndVariance(0, 4)
//	post := gaussian.Multiply(skill, noise)
//	delta := gaussian.Subtract(post, skill).Magnitude()
package gaussian
