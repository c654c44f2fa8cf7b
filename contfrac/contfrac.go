// Package contfrac: the ContinuedFraction handle surface — coefficient and
// convergent access, lazy transforms, Split, and conversions.

package contfrac

import (
	"math"
	"math/big"
)

// Coefficients starts a fresh traversal of the partial-quotient stream.
// Each call re-derives the value independently; traversals never interfere.
func (cf *ContinuedFraction) Coefficients() Stream {
	return cf.gen()
}

// CoefficientsList materializes the first n partial quotients (all of them
// for finite streams shorter than n). n <= 0 means DefaultPrefixLen.
func (cf *ContinuedFraction) CoefficientsList(n int) []*big.Int {
	if n <= 0 {
		n = DefaultPrefixLen
	}

	return Take(cf.gen, n)
}

// Convergents starts a fresh traversal of the best rational approximations
// p_k/q_k. The stream mirrors the coefficient stream's length.
func (cf *ContinuedFraction) Convergents() ConvergentStream {
	return newConvergentStream(cf.gen())
}

// ConvergentsList materializes the first n convergents.
// n <= 0 means DefaultPrefixLen.
func (cf *ContinuedFraction) ConvergentsList(n int) []*big.Rat {
	if n <= 0 {
		n = DefaultPrefixLen
	}
	out := make([]*big.Rat, 0, n)
	s := cf.Convergents()
	for len(out) < n {
		c, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}

	return out
}

// Homographic lazily applies the Möbius map x ↦ (a·x+b)/(c·x+d), returning
// a new handle. c = d = 0 yields the ∞ handle (empty coefficient stream).
func (cf *ContinuedFraction) Homographic(a, b, c, d int64) *ContinuedFraction {
	return cf.homographic(big.NewInt(a), big.NewInt(b), big.NewInt(c), big.NewInt(d))
}

func (cf *ContinuedFraction) homographic(a, b, c, d *big.Int) *ContinuedFraction {
	gen := cf.gen
	// Copy once: callers may hand over ints owned by a live big.Rat.
	ca, cb := new(big.Int).Set(a), new(big.Int).Set(b)
	cc, cd := new(big.Int).Set(c), new(big.Int).Set(d)

	return FromGenerator(func() Stream {
		return newHomographicStream(gen(), ca, cb, cc, cd)
	})
}

// Bihomographic lazily applies the bilinear map
// (x,y) ↦ (a·xy+b·x+c·y+d)/(e·xy+f·x+g·y+h) to the receiver (x) and other
// (y). The denominator coefficients e,f,g,h must be non-negative; a negative
// one fails immediately with ErrInvalidBilinear. e = f = g = h = 0 yields
// the ∞ handle.
func (cf *ContinuedFraction) Bihomographic(other *ContinuedFraction, a, b, c, d, e, f, g, h int64) (*ContinuedFraction, error) {
	if e < 0 || f < 0 || g < 0 || h < 0 {
		return nil, ErrInvalidBilinear
	}
	coef := [8]*big.Int{
		big.NewInt(a), big.NewInt(b), big.NewInt(c), big.NewInt(d),
		big.NewInt(e), big.NewInt(f), big.NewInt(g), big.NewInt(h),
	}

	return cf.bihomographic(other, coef), nil
}

func (cf *ContinuedFraction) bihomographic(other *ContinuedFraction, coef [8]*big.Int) *ContinuedFraction {
	xgen, ygen := cf.gen, other.gen

	return FromGenerator(func() Stream {
		return newBihomographicStream(xgen(), ygen(), coef)
	})
}

// Split peels the first partial quotient off, returning it together with a
// handle over the remaining suffix (the reciprocal remainder's stream).
// Splitting the ∞ handle fails with ErrUnbounded. The suffix of a
// single-term stream is the ∞ handle, consistently with Split's own error.
func (cf *ContinuedFraction) Split() (*big.Int, *ContinuedFraction, error) {
	first, ok := cf.gen().Next()
	if !ok {
		return nil, nil, ErrUnbounded
	}
	gen := cf.gen
	rest := FromGenerator(func() Stream { return &dropStream{in: gen(), n: 1} })

	return first, rest, nil
}

// Rat materializes the exact rational value (or, for infinite streams, the
// best rational approximation below the convergence threshold). The ∞
// handle fails with ErrUnbounded.
func (cf *ContinuedFraction) Rat() (*big.Rat, error) {
	return materializeRat(cf.Convergents())
}

// IntRatio returns the materialized value as a reduced numerator/denominator
// pair, the as-integer-ratio view of Rat.
func (cf *ContinuedFraction) IntRatio() (num, den *big.Int, err error) {
	r, err := cf.Rat()
	if err != nil {
		return nil, nil, err
	}

	return new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()), nil
}

// Float64 converts the materialized value to the nearest float64.
func (cf *ContinuedFraction) Float64() (float64, error) {
	r, err := cf.Rat()
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()

	return f, nil
}

// Int converts the materialized value to an integer, truncating toward zero
// (math.Trunc semantics).
func (cf *ContinuedFraction) Int() (*big.Int, error) {
	r, err := cf.Rat()
	if err != nil {
		return nil, err
	}

	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}

// Floor returns ⌊x⌋.
func (cf *ContinuedFraction) Floor() (*big.Int, error) {
	r, err := cf.Rat()
	if err != nil {
		return nil, err
	}

	return floorDiv(r.Num(), r.Denom()), nil
}

// Ceil returns ⌈x⌉ = −⌊−x⌋.
func (cf *ContinuedFraction) Ceil() (*big.Int, error) {
	r, err := cf.Rat()
	if err != nil {
		return nil, err
	}
	neg := new(big.Int).Neg(r.Num())
	c := floorDiv(neg, r.Denom())

	return c.Neg(c), nil
}

// Round returns the nearest integer, rounding halves away from zero
// (math.Round semantics).
func (cf *ContinuedFraction) Round() (*big.Int, error) {
	r, err := cf.Rat()
	if err != nil {
		return nil, err
	}
	// ⌊x + 1/2⌋ for x ≥ 0, ⌈x − 1/2⌉ for x < 0.
	half := new(big.Rat).SetFrac64(1, 2)
	shifted := new(big.Rat)
	if r.Sign() >= 0 {
		shifted.Add(r, half)

		return floorDiv(shifted.Num(), shifted.Denom()), nil
	}
	shifted.Sub(r, half)
	neg := new(big.Int).Neg(shifted.Num())
	c := floorDiv(neg, shifted.Denom())

	return c.Neg(c), nil
}

// RoundDigits rounds the materialized value to n decimal digits, as a
// float64 (halves away from zero). n <= 0 rounds to an integer-valued float.
func (cf *ContinuedFraction) RoundDigits(n int) (float64, error) {
	f, err := cf.Float64()
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return math.Round(f), nil
	}
	scale := math.Pow(10, float64(n))

	return math.Round(f*scale) / scale, nil
}

// String renders the materialized value as a reduced fraction, or "∞" for
// the unbounded handle. Like every read it recomputes; it is meant for
// display and debugging, not hot paths.
func (cf *ContinuedFraction) String() string {
	r, err := cf.Rat()
	if err != nil {
		return "∞"
	}

	return r.RatString()
}
