// Package sternbrocot encodes positive rationals as paths in the
// Stern–Brocot tree.
//
// 🚀 What is a Stern–Brocot numeral?
//
// The Stern–Brocot tree enumerates every positive rational exactly once.
// Starting between the fences 0/1 and 1/0, each step refines the current
// interval to its mediant: an L step moves to the left subtree (smaller
// values), an R step to the right (larger values). The finite L/R path to
// a rational is its numeral:
//
//	1/1 = ""    1/2 = "L"    2/1 = "R"    2/3 = "LR"    7/3 = "RRLL"
//
// Numerals order lexicographically the same way the values order
// numerically, and prefix length tracks approximation quality, which makes
// the encoding a handy exact alternative to positional fractions.
//
// ✨ Core operations
//
//   - Decode: fold a numeral's L/R matrices and take the mediant.
//   - Encode: walk the tree toward a target rational, emitting steps.
//   - Transform: apply (a·x+b)/(c·x+d) directly on a numeral by seeding
//     the fold with the transform's matrix, no intermediate fraction.
//
// Only strictly positive finite values live in the tree; Encode and
// Transform fail with ErrNotPositive otherwise, and Decode rejects
// characters outside L/R with ErrInvalidNumeral.
package sternbrocot
