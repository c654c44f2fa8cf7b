// Package sternbrocot: numeral codec and matrix transform.

package sternbrocot

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidNumeral is returned when a numeral contains a character
	// other than 'L' or 'R'.
	ErrInvalidNumeral = errors.New("sternbrocot: numeral must consist of L and R only")

	// ErrNotPositive is returned when a value to encode lies outside the
	// tree, which holds strictly positive rationals only.
	ErrNotPositive = errors.New("sternbrocot: value is not a positive rational")
)

// walk is the 2×2 state of a tree descent. The numerator of the current
// mediant accumulates in the bottom row, the denominator in the top row:
// mediant = (r+s)/(p+q). The identity walk sits at the root, mediant 1/1.
type walk struct {
	p, q, r, s *big.Int
}

func newWalk(p, q, r, s int64) *walk {
	return &walk{
		p: big.NewInt(p), q: big.NewInt(q),
		r: big.NewInt(r), s: big.NewInt(s),
	}
}

// stepL right-multiplies by L = [[1,1],[0,1]], descending left.
func (w *walk) stepL() {
	w.q.Add(w.q, w.p)
	w.s.Add(w.s, w.r)
}

// stepR right-multiplies by R = [[1,0],[1,1]], descending right.
func (w *walk) stepR() {
	w.p.Add(w.p, w.q)
	w.r.Add(w.r, w.s)
}

// absorb folds a numeral into the walk.
func (w *walk) absorb(numeral string) error {
	for i := 0; i < len(numeral); i++ {
		switch numeral[i] {
		case 'L':
			w.stepL()
		case 'R':
			w.stepR()
		default:
			return fmt.Errorf("%w: %q at %d", ErrInvalidNumeral, numeral[i], i)
		}
	}

	return nil
}

// mediant returns the current mediant, or ErrNotPositive when the walk has
// left the tree (numerator or denominator not strictly positive).
func (w *walk) mediant() (*big.Rat, error) {
	num := new(big.Int).Add(w.r, w.s)
	den := new(big.Int).Add(w.p, w.q)
	if num.Sign() <= 0 || den.Sign() <= 0 {
		return nil, ErrNotPositive
	}

	return new(big.Rat).SetFrac(num, den), nil
}

// Decode converts a Stern–Brocot numeral into the rational it names.
// The empty numeral is the root, 1/1.
func Decode(numeral string) (*big.Rat, error) {
	w := newWalk(1, 0, 0, 1)
	if err := w.absorb(numeral); err != nil {
		return nil, err
	}

	return w.mediant()
}

// Encode converts a positive rational into its Stern–Brocot numeral, the
// unique L/R path from the root to r. Zero, negative and infinite values
// are not in the tree and fail with ErrNotPositive.
func Encode(r *big.Rat) (string, error) {
	if r == nil || r.Sign() <= 0 {
		return "", ErrNotPositive
	}

	var sb strings.Builder
	w := newWalk(1, 0, 0, 1)
	for {
		m, err := w.mediant()
		if err != nil {
			return "", err
		}
		switch r.Cmp(m) {
		case 0:
			return sb.String(), nil
		case -1:
			sb.WriteByte('L')
			w.stepL()
		default:
			sb.WriteByte('R')
			w.stepR()
		}
	}
}

// Transform applies the homographic map (a·x+b)/(c·x+d) to the value named
// by a numeral and returns the numeral of the result, all in exact integer
// matrix arithmetic. The map is folded into the walk's seed, so the input
// numeral is traversed once and the intermediate fraction never appears.
// Results outside the tree fail with ErrNotPositive.
func Transform(numeral string, a, b, c, d int64) (string, error) {
	w := newWalk(d, c, b, a)
	if err := w.absorb(numeral); err != nil {
		return "", err
	}
	m, err := w.mediant()
	if err != nil {
		return "", err
	}

	return Encode(m)
}
