// Package contfrac: order and equality on coefficient streams.
//
// Canonical continued fractions compare lexicographically with a twist:
// taking a reciprocal reverses order, so the comparison flips direction at
// every position. On even indices a larger partial quotient means a larger
// value, on odd indices the smaller one wins. A stream that ends plays as a
// +∞ coefficient at its first missing index, which ranks finite prefixes
// correctly against their extensions.

package contfrac

// Cmp compares two continued fractions exactly, returning −1, 0 or +1.
// Both operands must be in canonical form (every source and engine in this
// package produces canonical streams).
//
// Termination caveat: comparing two equal infinite streams never returns;
// exactness makes equality of irrationals semi-decidable. All rational
// (finite-stream) comparisons terminate.
func (cf *ContinuedFraction) Cmp(other *ContinuedFraction) int {
	sx, sy := cf.gen(), other.gen()
	for k := 0; ; k++ {
		ax, okx := sx.Next()
		ay, oky := sy.Next()

		var d int
		switch {
		case !okx && !oky:
			return 0
		case !okx: // x ended: acts as +∞ at index k
			d = 1
		case !oky:
			d = -1
		default:
			d = ax.Cmp(ay)
		}
		if d == 0 {
			continue
		}
		if k%2 == 1 {
			d = -d
		}

		return d
	}
}

// Equal reports whether the two values are exactly equal: every paired
// coefficient matches and both streams end simultaneously.
// The termination caveat of Cmp applies.
func (cf *ContinuedFraction) Equal(other *ContinuedFraction) bool {
	return cf.Cmp(other) == 0
}

// Sign classifies the value exactly from its leading coefficients without
// materializing a rational: +1, 0 or −1. The ∞ handle fails with
// ErrUnbounded.
func (cf *ContinuedFraction) Sign() (int, error) {
	sign, empty := cf.leadingSign()
	if empty {
		return 0, ErrUnbounded
	}

	return sign, nil
}
