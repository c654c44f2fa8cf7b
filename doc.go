// Package gosper is an exact-arithmetic playground built on continued
// fractions — lazy streams of partial quotients that never round through
// floating point.
//
// 🚀 What is gosper?
//
//	A small, thread-safe, exact-arithmetic library that brings together:
//		• Continued fractions: build them from integers, rationals, floats,
//		  coefficient lists, or arbitrary lazy generators
//		• Gosper's algorithm: homographic (Möbius) and bihomographic
//		  (bilinear) transform engines with lazy digit emission
//		• Exact operators: + − × ÷, negation, absolute value, comparisons,
//		  all without a single rounding step
//		• Convergents: best rational approximations via the continuant
//		  recurrence, with exact materialization
//		• Padé approximants: [l/m] rational approximation from Maclaurin
//		  coefficients
//		• Stern–Brocot numerals: the L/R binary encoding of the positive
//		  rationals
//
// ✨ Why choose gosper?
//
//   - Exact by construction – every intermediate value is an arbitrary
//     precision integer or rational; errors are mathematical, not numerical
//   - Lazy all the way down – coefficients are computed only when a consumer
//     pulls them, so unneeded precision is never paid for
//   - Pure Go – no cgo; gonum only where a dense linear solve is genuinely
//     the right tool
//   - Composable – every operation returns a new immutable handle over a
//     restartable stream factory
//
// Under the hood, everything is organized under three subpackages:
//
//	contfrac/    — streams, sources, transform engines, the ContinuedFraction handle
//	pade/        — Padé rational-function approximation
//	sternbrocot/ — Stern–Brocot numeral encode/decode
//
// Quick taste:
//
//	x := contfrac.FromRat(big.NewRat(7, 3))
//	x.CoefficientsList(0)          // [2 3]   since 7/3 = 2 + 1/3
//	y, _ := x.Mul(x).Rat()         // 49/9, exactly
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/gosper
package gosper
