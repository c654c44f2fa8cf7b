// Package contfrac: the homographic (Möbius) transform engine.
//
// Gosper's single-operand machine: four integers (a,b,c,d) encode the map
// x ↦ (a·x+b)/(c·x+d). Each step either egests an output digit, when the
// matrix already pins it down regardless of unseen input, or ingests one
// more input digit to narrow the matrix. All arithmetic is exact big.Int;
// negative values need no special-casing because floor division is what
// produces canonical streams.

package contfrac

import "math/big"

// homographicStream lazily emits the coefficient stream of
// (a·x+b)/(c·x+d) for the input stream x.
//
// The undecided tail of the input lies in (1, ∞) once at least one term has
// been ingested (primed); before that the input ranges over all reals and no
// egest test is sound, so the engine always ingests first. On input
// exhaustion the tail is fixed at ∞ and the exact residual is expanded by
// Euclid's algorithm.
type homographicStream struct {
	in         Stream
	a, b, c, d *big.Int

	primed bool   // at least one term ingested; tail ∈ (1, ∞)
	tail   Stream // residual expansion after input exhaustion
	done   bool
}

// newHomographicStream wires the engine over one traversal of the input.
func newHomographicStream(in Stream, a, b, c, d *big.Int) *homographicStream {
	return &homographicStream{
		in: in,
		a:  new(big.Int).Set(a),
		b:  new(big.Int).Set(b),
		c:  new(big.Int).Set(c),
		d:  new(big.Int).Set(d),
	}
}

func (h *homographicStream) Next() (*big.Int, bool) {
	for {
		if h.done {
			return nil, false
		}
		if h.tail != nil {
			q, ok := h.tail.Next()
			if !ok {
				h.done = true
			}

			return q, ok
		}
		// (c,d) = (0,0) encodes ∞: terminate with an empty output stream.
		if h.c.Sign() == 0 && h.d.Sign() == 0 {
			h.done = true

			return nil, false
		}
		if h.primed {
			if q, ok := h.egest(); ok {
				return q, true
			}
		}
		h.ingest()
	}
}

// egest tries to emit the next output digit. The digit q is determined when
// the denominator c·t+d cannot vanish for any tail t ∈ (1, ∞) — c != 0 and
// c+d on the same side of zero — and the two endpoint values of the map,
// a/c at t→∞ and (a+b)/(c+d) at t→1, share the same floor. The interval is
// open at both ends, so floor equality at the endpoints pins the digit for
// every reachable tail; in particular a zero digit is only ever emitted when
// the value truly lies in [0, 1).
//
// On success the state narrows to (c, d, a−q·c, b−q·d): the emitted digit is
// peeled off and the matrix now maps the input to the reciprocal remainder.
func (h *homographicStream) egest() (*big.Int, bool) {
	if h.c.Sign() == 0 {
		return nil, false
	}
	cd := new(big.Int).Add(h.c, h.d)
	if cd.Sign() != h.c.Sign() {
		return nil, false
	}
	q := floorDiv(h.a, h.c)
	if q.Cmp(floorDiv(new(big.Int).Add(h.a, h.b), cd)) != 0 {
		return nil, false
	}

	na := new(big.Int).Set(h.c)
	nb := new(big.Int).Set(h.d)
	nc := new(big.Int).Sub(h.a, new(big.Int).Mul(q, h.c))
	nd := new(big.Int).Sub(h.b, new(big.Int).Mul(q, h.d))
	h.a, h.b, h.c, h.d = na, nb, nc, nd

	return q, true
}

// ingest folds one more input digit p into the matrix:
// (a,b,c,d) ← (p·a+b, a, p·c+d, c). When the input is exhausted the tail is
// ∞, leaving the exact residual a/c — or the constant b/d when a = c = 0 —
// to be expanded by Euclid's algorithm.
func (h *homographicStream) ingest() {
	p, ok := h.in.Next()
	if !ok {
		if h.a.Sign() == 0 && h.c.Sign() == 0 {
			h.tail = residualStream(h.b, h.d)
		} else {
			h.tail = residualStream(h.a, h.c)
		}

		return
	}
	h.primed = true

	na := new(big.Int).Add(new(big.Int).Mul(p, h.a), h.b)
	nc := new(big.Int).Add(new(big.Int).Mul(p, h.c), h.d)
	h.a, h.b, h.c, h.d = na, new(big.Int).Set(h.a), nc, new(big.Int).Set(h.c)
}
