// Package pade: approximant construction and evaluation.

package pade

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Approximant is an immutable [l/m] Padé approximant. The zero value is not
// usable; construct one with New or NewFromSequence.
type Approximant struct {
	l, m int
	a    []float64 // numerator coefficients, a[0..l], ascending powers
	b    []float64 // denominator coefficients, b[0..m], b[0] = 1
}

// New builds the [l/m] approximant from the leading Maclaurin coefficients
// of the target function. Exactly l+m+1 coefficients are consumed; extra
// entries are ignored.
//
// The denominator coefficients solve the Toeplitz system
//
//	Σ_{j=1..m} b_j·c_{l+k−j} = −c_{l+k},  k = 1..m  (c_i = 0 for i < 0)
//
// with b₀ fixed to 1, and the numerator follows by convolution:
//
//	a_i = Σ_{j=0..min(i,m)} b_j·c_{i−j},  i = 0..l.
func New(l, m int, coeffs []float64) (*Approximant, error) {
	if l < 0 || m < 0 {
		return nil, fmt.Errorf("%w: [%d/%d]", ErrBadOrder, l, m)
	}
	if len(coeffs) < l+m+1 {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCoeffs, l+m+1, len(coeffs))
	}
	c := coeffs[:l+m+1]

	b := make([]float64, m+1)
	b[0] = 1
	if m > 0 {
		A := mat.NewDense(m, m, nil)
		rhs := mat.NewVecDense(m, nil)
		for k := 1; k <= m; k++ {
			rhs.SetVec(k-1, -c[l+k])
			for j := 1; j <= m; j++ {
				if i := l + k - j; i >= 0 {
					A.Set(k-1, j-1, c[i])
				}
			}
		}

		var x mat.VecDense
		if err := x.SolveVec(A, rhs); err != nil {
			return nil, fmt.Errorf("%w: [%d/%d]: %v", ErrSingular, l, m, err)
		}
		for j := 1; j <= m; j++ {
			b[j] = x.AtVec(j - 1)
		}
	}

	a := make([]float64, l+1)
	for i := 0; i <= l; i++ {
		for j := 0; j <= i && j <= m; j++ {
			a[i] += b[j] * c[i-j]
		}
	}

	return &Approximant{l: l, m: m, a: a, b: b}, nil
}

// NewFromSequence builds the [l/m] approximant pulling coefficients one at
// a time from next. Exactly l+m+1 values are requested; next returning
// false before that fails with ErrInsufficientCoeffs.
func NewFromSequence(l, m int, next func() (float64, bool)) (*Approximant, error) {
	if l < 0 || m < 0 {
		return nil, fmt.Errorf("%w: [%d/%d]", ErrBadOrder, l, m)
	}
	coeffs := make([]float64, 0, l+m+1)
	for len(coeffs) < l+m+1 {
		v, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCoeffs, l+m+1, len(coeffs))
		}
		coeffs = append(coeffs, v)
	}

	return New(l, m, coeffs)
}

// Order returns the numerator and denominator orders (l, m).
func (p *Approximant) Order() (l, m int) { return p.l, p.m }

// P returns a copy of the numerator coefficients, ascending by power.
func (p *Approximant) P() []float64 {
	out := make([]float64, len(p.a))
	copy(out, p.a)

	return out
}

// Q returns a copy of the denominator coefficients, ascending by power,
// with Q()[0] == 1.
func (p *Approximant) Q() []float64 {
	out := make([]float64, len(p.b))
	copy(out, p.b)

	return out
}

// Eval evaluates P(z)/Q(z) by Horner's rule. A vanishing denominator fails
// with ErrZeroDenominator.
func (p *Approximant) Eval(z float64) (float64, error) {
	num := horner(p.a, z)
	den := horner(p.b, z)
	if den == 0 {
		return 0, fmt.Errorf("%w: z=%g", ErrZeroDenominator, z)
	}

	return num / den, nil
}

// String renders the approximant's order signature.
func (p *Approximant) String() string {
	return fmt.Sprintf("[%d/%d](z)", p.l, p.m)
}

func horner(coef []float64, z float64) float64 {
	s := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		s = s*z + coef[i]
	}

	return s
}
