// Package pade builds Padé approximants: rational functions P(z)/Q(z)
// matching a power series to the highest possible order.
//
// 🚀 What is a Padé approximant?
//
// Given the Maclaurin coefficients c₀, c₁, … of a function f, the [l/m]
// approximant is the unique rational function
//
//	            P(z)     a₀ + a₁·z + … + a_l·zˡ
//	[l/m](z) = ------ = ------------------------
//	            Q(z)     1  + b₁·z + … + b_m·zᵐ
//
// whose Taylor expansion agrees with f through order l+m. It often
// converges where the truncated series diverges, which makes it the
// standard resummation tool for series with a finite radius of
// convergence.
//
// ✨ Core operations
//
//   - New(l, m, coeffs): solve the m×m Toeplitz system for Q, then read
//     P off by convolution. Exactly l+m+1 coefficients are consumed.
//   - NewFromSequence(l, m, next): same, pulling coefficients lazily
//     from a producer one at a time.
//   - Eval(z): evaluate P(z)/Q(z) at a point.
//
// The denominator is normalized to b₀ = 1, the convention used by the
// classical Padé table. P and Q expose the coefficient vectors, ascending
// by power.
//
// Errors: ErrBadOrder for negative orders, ErrInsufficientCoeffs when the
// input cannot cover l+m+1 terms, ErrSingular when the Toeplitz system has
// no unique solution, and ErrZeroDenominator when Eval hits a pole of Q.
package pade
