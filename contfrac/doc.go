// Package contfrac implements exact arithmetic on real and rational numbers
// represented as continued fractions — lazy, possibly infinite sequences of
// integer partial quotients.
//
// 🚀 What is a continued fraction here?
//
//	A value
//
//	            1
//	a0 + ---------------
//	              1
//	     a1 + ----------
//	                  1
//	          a2 + -----
//	               ...
//
//	is stored as the coefficient stream [a0, a1, a2, ...]. The first term may
//	be any integer; every later term is ≥ 1. A finite stream is an exact
//	rational, an infinite stream is an irrational, and the empty stream
//	denotes ∞.
//
// ✨ Key features:
//   - Sources: integers, *big.Rat rationals, float64 values (converted
//     exactly via their dyadic expansion), explicit coefficient lists, and
//     arbitrary restartable generators
//   - Gosper's algorithm: lazy homographic x ↦ (ax+b)/(cx+d) and
//     bihomographic (x,y) ↦ (axy+bx+cy+d)/(exy+fx+gy+h) transform engines
//   - Exact operators: + − × ÷ against rationals or other continued
//     fractions, negation, absolute value, Split
//   - Convergents via the continuant recurrence, exact materialization with
//     Rat, and the usual conversions (Float64, Int, Floor, Ceil, Round)
//   - Order and equality on the coefficient streams themselves, without
//     materializing a rational
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gosper/contfrac"
//
//	x := contfrac.FromRat(big.NewRat(7, 3))   // [2 3]
//	y := contfrac.FromRat(big.NewRat(1, 2))
//
//	sum := x.Add(y)                           // exact 17/6
//	r, err := sum.Rat()                       // *big.Rat(17/6), err == nil
//
//	sqrt2 := contfrac.FromGenerator(...)      // [1 2 2 2 ...]
//	sqrt2.CoefficientsList(8)                 // first 8 partial quotients
//
// Laziness and sharing:
//
//	A ContinuedFraction owns a Generator — a zero-argument factory producing
//	a fresh coefficient Stream per call — never a shared cursor. Every read
//	re-derives the value independently, so handles are immutable, reusable
//	and safe for concurrent readers. Transform state lives only inside one
//	traversal.
//
// Limits inherent to exact streams:
//
//	Equality of two infinite streams is semi-decidable: comparing two equal
//	irrationals never terminates, and a transform whose exact result sits on
//	an integer boundary of two irrational inputs cannot emit that digit in
//	finite time. Rational inputs always terminate.
//
// See example_test.go for runnable scenarios.
package contfrac
