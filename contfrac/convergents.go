// Package contfrac: convergents and rational materialization.
//
// The convergent p_k/q_k after k partial quotients obeys the continuant
// recurrence
//
//	p_k = a_k·p_{k−1} + p_{k−2},  q_k = a_k·q_{k−1} + q_{k−2}
//
// seeded with p_{−1}=1, q_{−1}=0, p_{−2}=0, q_{−2}=1. The transform is
// stateless beyond the two trailing pairs and mirrors the input stream's
// length exactly: finite in, finite out.

package contfrac

import "math/big"

type convergentStream struct {
	in                     Stream
	pkm1, qkm1, pkm2, qkm2 *big.Int
}

func newConvergentStream(in Stream) *convergentStream {
	return &convergentStream{
		in:   in,
		pkm1: big.NewInt(1),
		qkm1: big.NewInt(0),
		pkm2: big.NewInt(0),
		qkm2: big.NewInt(1),
	}
}

func (s *convergentStream) Next() (*big.Rat, bool) {
	ak, ok := s.in.Next()
	if !ok {
		return nil, false
	}
	pk := new(big.Int).Add(new(big.Int).Mul(ak, s.pkm1), s.pkm2)
	qk := new(big.Int).Add(new(big.Int).Mul(ak, s.qkm1), s.qkm2)
	s.pkm2, s.qkm2 = s.pkm1, s.qkm1
	s.pkm1, s.qkm1 = pk, qk

	// q_0 = 1 and a_k ≥ 1 thereafter keep q_k strictly positive.
	return new(big.Rat).SetFrac(pk, qk), true
}

// materializeRat walks a convergent stream until the value is captured.
// A finite stream ends and its last convergent is the exact value; an
// infinite stream is cut once two consecutive convergents differ by less
// than convergenceEps, returning the earlier of the pair. An empty stream
// has no value at all — it is ∞ — and yields ErrUnbounded.
func materializeRat(s ConvergentStream) (*big.Rat, error) {
	var prev *big.Rat
	gap := new(big.Rat)
	for {
		conv, ok := s.Next()
		if !ok {
			if prev == nil {
				return nil, ErrUnbounded
			}

			return prev, nil
		}
		if prev != nil {
			gap.Sub(conv, prev)
			gap.Abs(gap)
			if gap.Cmp(convergenceEps) < 0 {
				return prev, nil
			}
		}
		prev = conv
	}
}
