// Package contfrac: handle constructors.
//
// All sources share one capability: "produce a fresh coefficient Stream on
// demand". Typed constructors cover the common cases; New is the polymorphic
// entry point mirroring the duck-typed original surface, rejecting anything
// outside the recognized input set with ErrInvalidInput.

package contfrac

import (
	"fmt"
	"math"
	"math/big"
)

// FromGenerator wraps an arbitrary restartable stream factory. The factory
// must re-derive the same logical value on every invocation; the handle
// never invokes it other than to start a fresh traversal.
func FromGenerator(gen Generator) *ContinuedFraction {
	return &ContinuedFraction{gen: gen}
}

// FromRat builds the exact, finite continued fraction of r via Euclid's
// algorithm. The rational is copied; later mutation of r does not affect
// the handle.
func FromRat(r *big.Rat) *ContinuedFraction {
	v := new(big.Rat).Set(r)

	return FromGenerator(func() Stream { return newEuclidStream(v) })
}

// FromInt64 builds the single-coefficient continued fraction [n].
func FromInt64(n int64) *ContinuedFraction {
	return FromRat(new(big.Rat).SetInt64(n))
}

// FromBigInt builds the single-coefficient continued fraction [n].
func FromBigInt(n *big.Int) *ContinuedFraction {
	return FromRat(new(big.Rat).SetInt(n))
}

// FromFloat64 builds the exact continued fraction of the dyadic rational a
// float64 stores. The conversion is lossless (big.Rat.SetFloat64), so
// round-tripping through Float64 recovers f bit-for-bit; the expansion is
// finite, if occasionally long. NaN and ±Inf are rejected.
func FromFloat64(f float64) (*ContinuedFraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-finite float: %w", ErrInvalidInput)
	}

	return FromRat(new(big.Rat).SetFloat64(f)), nil
}

// FromCoefficients builds a continued fraction from an explicit finite list
// of partial quotients, assumed canonical (terms after the first ≥ 1).
// An empty list denotes ∞.
func FromCoefficients(terms []int64) *ContinuedFraction {
	bigs := make([]*big.Int, len(terms))
	for i, t := range terms {
		bigs[i] = big.NewInt(t)
	}

	return fromBigCoefficients(bigs)
}

// FromBigCoefficients is FromCoefficients for *big.Int terms.
func FromBigCoefficients(terms []*big.Int) *ContinuedFraction {
	return fromBigCoefficients(copyTerms(terms))
}

func fromBigCoefficients(owned []*big.Int) *ContinuedFraction {
	return FromGenerator(func() Stream { return &sliceStream{terms: owned} })
}

// New is the polymorphic constructor. It accepts an int, int64, *big.Int,
// *big.Rat, float64, []int64, []*big.Int, Generator or an existing
// *ContinuedFraction, and fails with ErrInvalidInput for anything else.
func New(v any) (*ContinuedFraction, error) {
	switch x := v.(type) {
	case int:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case *big.Int:
		return FromBigInt(x), nil
	case *big.Rat:
		return FromRat(x), nil
	case float64:
		return FromFloat64(x)
	case []int64:
		return FromCoefficients(x), nil
	case []*big.Int:
		return FromBigCoefficients(x), nil
	case Generator:
		return FromGenerator(x), nil
	case func() Stream:
		return FromGenerator(x), nil
	case *ContinuedFraction:
		return x, nil
	default:
		return nil, fmt.Errorf("unsupported input %T: %w", v, ErrInvalidInput)
	}
}
