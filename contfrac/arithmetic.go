// Package contfrac: arithmetic operators.
//
// Every operator is a homographic or bihomographic transform with specific
// coefficients — no rounding, no intermediate materialization. Rational
// operands go through the single-operand engine; continued-fraction operands
// through the two-operand engine, with division routed by the divisor's sign
// so the bilinear denominator coefficients stay non-negative.

package contfrac

import "math/big"

// bilinear denominator/numerator coefficient sets for the CF∘CF operators.
var (
	bihomAdd = [8]*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(0),
		big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(1),
	}
	bihomSub = [8]*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(-1), big.NewInt(0),
		big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(1),
	}
	bihomMul = [8]*big.Int{
		big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(0),
		big.NewInt(0), big.NewInt(0), big.NewInt(0), big.NewInt(1),
	}
	bihomDiv = [8]*big.Int{
		big.NewInt(0), big.NewInt(1), big.NewInt(0), big.NewInt(0),
		big.NewInt(0), big.NewInt(0), big.NewInt(1), big.NewInt(0),
	}
	bihomDivNeg = [8]*big.Int{
		big.NewInt(0), big.NewInt(-1), big.NewInt(0), big.NewInt(0),
		big.NewInt(0), big.NewInt(0), big.NewInt(1), big.NewInt(0),
	}
)

// leadingSign inspects the first coefficients of a fresh traversal and
// classifies the value exactly: +1 for positive, −1 for negative, 0 for the
// exact zero [0]. empty marks the ∞ handle. A canonical stream's sign is
// fully determined by its head: a0 ≥ 1 is positive, a0 ≤ −1 negative, and
// a0 = 0 positive exactly when a tail follows (the value is then in (0,1)).
func (cf *ContinuedFraction) leadingSign() (sign int, empty bool) {
	s := cf.gen()
	a0, ok := s.Next()
	if !ok {
		return 0, true
	}
	if sg := a0.Sign(); sg != 0 {
		return sg, false
	}
	if _, ok = s.Next(); ok {
		return 1, false
	}

	return 0, false
}

// Neg returns −x, the homographic map (−1·x+0)/(0·x+1).
func (cf *ContinuedFraction) Neg() *ContinuedFraction {
	return cf.Homographic(-1, 0, 0, 1)
}

// Abs returns |x|. The sign is read exactly off the leading coefficients;
// the ∞ handle is returned unchanged.
func (cf *ContinuedFraction) Abs() *ContinuedFraction {
	if sign, _ := cf.leadingSign(); sign < 0 {
		return cf.Neg()
	}

	return cf
}

// Add returns x + y via the bilinear form (0,1,1,0 | 0,0,0,1).
func (cf *ContinuedFraction) Add(other *ContinuedFraction) *ContinuedFraction {
	return cf.bihomographic(other, bihomAdd)
}

// Sub returns x − y via the bilinear form (0,1,−1,0 | 0,0,0,1).
func (cf *ContinuedFraction) Sub(other *ContinuedFraction) *ContinuedFraction {
	return cf.bihomographic(other, bihomSub)
}

// Mul returns x · y via the bilinear form (1,0,0,0 | 0,0,0,1).
func (cf *ContinuedFraction) Mul(other *ContinuedFraction) *ContinuedFraction {
	return cf.bihomographic(other, bihomMul)
}

// Div returns x ÷ y. The divisor's sign routes the transform: a positive
// divisor uses (0,1,0,0 | 0,0,1,0) directly; a negative one computes
// x ÷ (−y) with a negated numerator, keeping the bilinear denominator
// coefficients non-negative. A divisor equal to zero fails with
// ErrUnbounded; the ∞ divisor takes the positive route and yields 0.
func (cf *ContinuedFraction) Div(other *ContinuedFraction) (*ContinuedFraction, error) {
	sign, empty := other.leadingSign()
	switch {
	case empty || sign > 0:
		return cf.bihomographic(other, bihomDiv), nil
	case sign < 0:
		return cf.bihomographic(other.Neg(), bihomDivNeg), nil
	default:
		return nil, ErrUnbounded
	}
}

// AddRat returns x + p/q as the homographic map (q·x+p)/(0·x+q).
func (cf *ContinuedFraction) AddRat(r *big.Rat) *ContinuedFraction {
	return cf.homographic(r.Denom(), r.Num(), zeroInt, r.Denom())
}

// SubRat returns x − p/q as the homographic map (q·x−p)/(0·x+q).
func (cf *ContinuedFraction) SubRat(r *big.Rat) *ContinuedFraction {
	return cf.homographic(r.Denom(), new(big.Int).Neg(r.Num()), zeroInt, r.Denom())
}

// RatSub returns p/q − x as the homographic map (−q·x+p)/(0·x+q).
func (cf *ContinuedFraction) RatSub(r *big.Rat) *ContinuedFraction {
	return cf.homographic(new(big.Int).Neg(r.Denom()), r.Num(), zeroInt, r.Denom())
}

// MulRat returns x · p/q as the homographic map (p·x+0)/(0·x+q).
func (cf *ContinuedFraction) MulRat(r *big.Rat) *ContinuedFraction {
	return cf.homographic(r.Num(), zeroInt, zeroInt, r.Denom())
}

// DivRat returns x ÷ p/q as the homographic map (q·x+0)/(0·x+p).
// The zero rational fails with ErrUnbounded.
func (cf *ContinuedFraction) DivRat(r *big.Rat) (*ContinuedFraction, error) {
	if r.Sign() == 0 {
		return nil, ErrUnbounded
	}

	return cf.homographic(r.Denom(), zeroInt, zeroInt, r.Num()), nil
}

// RatDiv returns p/q ÷ x as the homographic map (0·x+p)/(q·x+0).
// A receiver equal to zero fails with ErrUnbounded; the ∞ receiver divides
// anything to 0.
func (cf *ContinuedFraction) RatDiv(r *big.Rat) (*ContinuedFraction, error) {
	if sign, empty := cf.leadingSign(); !empty && sign == 0 {
		return nil, ErrUnbounded
	}

	return cf.homographic(zeroInt, r.Num(), r.Denom(), zeroInt), nil
}

var zeroInt = big.NewInt(0)
