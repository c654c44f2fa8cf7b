// Package contfrac: the Euclidean coefficient source.
//
// The continued fraction of a rational n/d falls out of Euclid's algorithm:
// emit q = ⌊n/d⌋, then continue with (d, n mod d) until the remainder is
// zero. Floor division (not truncation) is what makes negative values come
// out canonical, with every coefficient after the first ≥ 1 and never a
// trailing 1.

package contfrac

import "math/big"

// euclidStream expands a rational into its finite canonical coefficient
// stream. Invariant: d > 0 while producing; d == 0 marks exhaustion.
type euclidStream struct {
	n, d *big.Int
}

// newEuclidStream starts an expansion of r. big.Rat keeps denominators
// positive, which is exactly the invariant the floor-division step needs.
func newEuclidStream(r *big.Rat) *euclidStream {
	return &euclidStream{
		n: new(big.Int).Set(r.Num()),
		d: new(big.Int).Set(r.Denom()),
	}
}

// residualStream expands the exact rational n/d left inside a transform
// matrix once its input is exhausted. d may be negative or zero here:
// zero denotes ∞ (an empty tail), anything else is normalized through
// big.Rat before expansion.
func residualStream(n, d *big.Int) Stream {
	if d.Sign() == 0 {
		return emptyStream{}
	}

	return newEuclidStream(new(big.Rat).SetFrac(n, d))
}

func (s *euclidStream) Next() (*big.Int, bool) {
	if s.d.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int), new(big.Int)
	q.DivMod(s.n, s.d, r) // Euclidean division; floor division since d > 0
	s.n.Set(s.d)
	s.d.Set(r)

	return q, true
}

// floorDiv returns ⌊x/y⌋ for y != 0. big.Int.Quo truncates toward zero, so
// the quotient is nudged down by one whenever a non-zero remainder disagrees
// in sign with the divisor.
func floorDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, oneInt)
	}

	return q
}

var oneInt = big.NewInt(1)
