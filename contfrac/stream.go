// Package contfrac: elementary stream implementations and helpers.

package contfrac

import "math/big"

// emptyStream is the coefficient stream of ∞: it yields nothing.
type emptyStream struct{}

func (emptyStream) Next() (*big.Int, bool) { return nil, false }

// sliceStream replays a fixed, finite list of coefficients.
type sliceStream struct {
	terms []*big.Int
	pos   int
}

func (s *sliceStream) Next() (*big.Int, bool) {
	if s.pos >= len(s.terms) {
		return nil, false
	}
	t := new(big.Int).Set(s.terms[s.pos])
	s.pos++

	return t, true
}

// dropStream discards the first n coefficients of its input, then forwards.
// It backs the suffix handle returned by Split.
type dropStream struct {
	in Stream
	n  int
}

func (s *dropStream) Next() (*big.Int, bool) {
	for s.n > 0 {
		s.n--
		if _, ok := s.in.Next(); !ok {
			return nil, false
		}
	}

	return s.in.Next()
}

// Take materializes at most n coefficients from a fresh traversal of g.
// It is the bounded-prefix primitive behind CoefficientsList.
//
// Complexity: O(n) pulls, each O(1) amortized matrix arithmetic.
func Take(g Generator, n int) []*big.Int {
	if n <= 0 {
		return nil
	}
	out := make([]*big.Int, 0, n)
	s := g()
	for len(out) < n {
		t, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}

	return out
}

// copyTerms deep-copies a coefficient list so handles never alias caller
// memory.
func copyTerms(terms []*big.Int) []*big.Int {
	out := make([]*big.Int, len(terms))
	for i, t := range terms {
		out[i] = new(big.Int).Set(t)
	}

	return out
}
