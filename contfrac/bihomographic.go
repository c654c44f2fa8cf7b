// Package contfrac: the bihomographic (bilinear) transform engine.
//
// Gosper's two-operand machine: eight integers (a..h) encode the map
// (x,y) ↦ (a·xy+b·x+c·y+d)/(e·xy+f·x+g·y+h). Sums, differences, products
// and quotients of two continued fractions are all instances of it.
//
// The denominator coefficients e,f,g,h must be non-negative; that is what
// keeps the denominator positive for all tails and makes the four-corner
// egest test sound. The arithmetic constructors route operand signs so the
// invariant holds; it is validated once at construction, never mid-stream.

package contfrac

import "math/big"

// bihomographicStream lazily emits the coefficient stream of
// (a·xy+b·x+c·y+d)/(e·xy+f·x+g·y+h) for input streams x and y.
//
// Once one input is exhausted its exact value is fully folded into the
// matrix and the remaining tail is ∞; the engine then demotes itself to the
// homographic engine in the surviving variable. Both-exhausted residuals are
// handled by that engine's own exhaustion logic.
type bihomographicStream struct {
	x, y                   Stream
	a, b, c, d, e, f, g, h *big.Int

	xPrimed, yPrimed bool // first term of each input ingested
	turnY            bool // alternation fallback for the ingest heuristic
	demoted          *homographicStream
	done             bool
}

func newBihomographicStream(x, y Stream, coef [8]*big.Int) *bihomographicStream {
	s := &bihomographicStream{x: x, y: y}
	dst := []**big.Int{&s.a, &s.b, &s.c, &s.d, &s.e, &s.f, &s.g, &s.h}
	for i, v := range coef {
		*dst[i] = new(big.Int).Set(v)
	}

	return s
}

func (s *bihomographicStream) Next() (*big.Int, bool) {
	for {
		if s.done {
			return nil, false
		}
		if s.demoted != nil {
			q, ok := s.demoted.Next()
			if !ok {
				s.done = true
			}

			return q, ok
		}
		// e=f=g=h=0 encodes ∞: terminate with an empty output stream.
		if s.e.Sign() == 0 && s.f.Sign() == 0 && s.g.Sign() == 0 && s.h.Sign() == 0 {
			s.done = true

			return nil, false
		}
		// Both tails must be known to lie in (1, ∞) before any egest test.
		if !s.xPrimed {
			s.ingestX()

			continue
		}
		if !s.yPrimed {
			s.ingestY()

			continue
		}
		if r, ok := s.egest(); ok {
			return r, true
		}
		if s.preferX() {
			s.ingestX()
		} else {
			s.ingestY()
		}
	}
}

// egest tries to emit the next output digit r. With e,f,g,h all positive the
// denominator is positive on (0,∞)², the map is monotone in each variable,
// and its range is contained in the hull of the four corner values a/e, b/f,
// c/g, d/h. When all four corner floors agree, the digit is pinned for every
// reachable pair of tails; the state then narrows to
// (e,f,g,h, a−e·r, b−f·r, c−g·r, d−h·r).
func (s *bihomographicStream) egest() (*big.Int, bool) {
	if s.e.Sign() <= 0 || s.f.Sign() <= 0 || s.g.Sign() <= 0 || s.h.Sign() <= 0 {
		return nil, false
	}
	r := floorDiv(s.a, s.e)
	if r.Cmp(floorDiv(s.b, s.f)) != 0 ||
		r.Cmp(floorDiv(s.c, s.g)) != 0 ||
		r.Cmp(floorDiv(s.d, s.h)) != 0 {
		return nil, false
	}

	na := new(big.Int).Set(s.e)
	nb := new(big.Int).Set(s.f)
	nc := new(big.Int).Set(s.g)
	nd := new(big.Int).Set(s.h)
	ne := new(big.Int).Sub(s.a, new(big.Int).Mul(s.e, r))
	nf := new(big.Int).Sub(s.b, new(big.Int).Mul(s.f, r))
	ng := new(big.Int).Sub(s.c, new(big.Int).Mul(s.g, r))
	nh := new(big.Int).Sub(s.d, new(big.Int).Mul(s.h, r))
	s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h = na, nb, nc, nd, ne, nf, ng, nh

	return r, true
}

// preferX decides which input to advance when no digit can be egested:
// whichever input's uncertainty contributes more to the output interval,
// approximated by the partial first-differences |b/f − d/h| (x side) versus
// |c/g − d/h| (y side). Zero denominators make a side's width unbounded and
// win outright; when both are degenerate the engine alternates.
func (s *bihomographicStream) preferX() bool {
	if s.h.Sign() == 0 {
		s.turnY = !s.turnY

		return s.turnY
	}
	if s.f.Sign() == 0 {
		return true
	}
	if s.g.Sign() == 0 {
		return false
	}
	dh := new(big.Rat).SetFrac(s.d, s.h)
	wx := new(big.Rat).SetFrac(s.b, s.f)
	wx.Sub(wx, dh)
	wx.Abs(wx)
	wy := new(big.Rat).SetFrac(s.c, s.g)
	wy.Sub(wy, dh)
	wy.Abs(wy)
	cmp := wx.Cmp(wy)
	if cmp == 0 {
		s.turnY = !s.turnY

		return s.turnY
	}

	return cmp > 0
}

// ingestX folds one digit of x into the matrix:
// (a,b,c,d,e,f,g,h) ← (a·p+c, b·p+d, a, b, e·p+g, f·p+h, e, f).
// Exhaustion fixes x at ∞, leaving the homographic map y ↦ (a·y+b)/(e·y+f).
func (s *bihomographicStream) ingestX() {
	p, ok := s.x.Next()
	if !ok {
		s.demoted = &homographicStream{
			in:     s.y,
			a:      s.a,
			b:      s.b,
			c:      s.e,
			d:      s.f,
			primed: s.yPrimed,
		}

		return
	}
	s.xPrimed = true

	na := new(big.Int).Add(new(big.Int).Mul(s.a, p), s.c)
	nb := new(big.Int).Add(new(big.Int).Mul(s.b, p), s.d)
	ne := new(big.Int).Add(new(big.Int).Mul(s.e, p), s.g)
	nf := new(big.Int).Add(new(big.Int).Mul(s.f, p), s.h)
	s.a, s.b, s.c, s.d = na, nb, new(big.Int).Set(s.a), new(big.Int).Set(s.b)
	s.e, s.f, s.g, s.h = ne, nf, new(big.Int).Set(s.e), new(big.Int).Set(s.f)
}

// ingestY folds one digit of y into the matrix:
// (a,b,c,d,e,f,g,h) ← (a·q+b, a, c·q+d, c, e·q+f, e, g·q+h, g).
// Exhaustion fixes y at ∞, leaving the homographic map x ↦ (a·x+c)/(e·x+g).
func (s *bihomographicStream) ingestY() {
	q, ok := s.y.Next()
	if !ok {
		s.demoted = &homographicStream{
			in:     s.x,
			a:      s.a,
			b:      s.c,
			c:      s.e,
			d:      s.g,
			primed: s.xPrimed,
		}

		return
	}
	s.yPrimed = true

	na := new(big.Int).Add(new(big.Int).Mul(s.a, q), s.b)
	nc := new(big.Int).Add(new(big.Int).Mul(s.c, q), s.d)
	ne := new(big.Int).Add(new(big.Int).Mul(s.e, q), s.f)
	ng := new(big.Int).Add(new(big.Int).Mul(s.g, q), s.h)
	s.a, s.b, s.c, s.d = na, new(big.Int).Set(s.a), nc, new(big.Int).Set(s.c)
	s.e, s.f, s.g, s.h = ne, new(big.Int).Set(s.e), ng, new(big.Int).Set(s.g)
}
