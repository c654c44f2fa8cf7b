// Package contfrac: stream abstractions and shared constants.

package contfrac

import (
	"math/big"
)

// DefaultPrefixLen is the bound used by CoefficientsList and ConvergentsList
// when the caller passes n <= 0. Forty terms pin a double-precision value
// with room to spare (convergent denominators grow at least like Fibonacci).
const DefaultPrefixLen = 40

// convergenceEps is the fixed gap threshold used by Rat: once two consecutive
// convergents differ by less than this, the value is considered materialized.
// 1e-30 is far below double precision, so finite streams derived from
// rationals or floats effectively always run to exact exhaustion, while
// infinite streams still terminate within a few dozen terms.
var convergenceEps = new(big.Rat).SetFrac(
	big.NewInt(1),
	new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil),
)

// Stream produces the partial quotients of one continued-fraction traversal.
//
// Next returns the next coefficient, or ok=false when the stream is
// exhausted. The returned *big.Int is owned by the caller; implementations
// must not reuse it. The first coefficient may be any integer; in canonical
// form every subsequent coefficient is ≥ 1. A Stream is a single-use cursor:
// to re-read a value, obtain a fresh Stream from its Generator.
type Stream interface {
	Next() (*big.Int, bool)
}

// Generator is a restartable, zero-argument factory of coefficient streams.
// Each invocation must independently re-derive the same logical value; this
// is what makes ContinuedFraction handles immutable and safe to share.
type Generator func() Stream

// ConvergentStream produces successive best rational approximations
// p_k/q_k of a coefficient stream. It mirrors the input stream's length.
type ConvergentStream interface {
	Next() (*big.Rat, bool)
}

// ContinuedFraction is the public value handle: an immutable wrapper around
// a coefficient-stream Generator. All arithmetic, transforms and conversions
// produce new handles by composing generators; the receiver is never
// mutated, and repeated reads recompute rather than cache.
type ContinuedFraction struct {
	gen Generator
}
