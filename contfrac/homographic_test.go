package contfrac_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosper/contfrac"
)

// TestHomographic_Identity: the identity matrix reproduces the value and its
// canonical coefficient stream exactly.
func TestHomographic_Identity(t *testing.T) {
	x := contfrac.FromRat(big.NewRat(7, 3))

	id := x.Homographic(1, 0, 0, 1)

	assert.Equal(t, []int64{2, 3}, int64List(id.CoefficientsList(0)))

	r, err := id.Rat()
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(big.NewRat(7, 3)))
}

// TestHomographic_RandomRationals validates (a·r+b)/(c·r+d) against direct
// big.Rat evaluation over random matrices and rationals, including the
// unbounded cases: c = d = 0 or a vanishing denominator with a non-zero
// numerator must yield an empty coefficient stream.
func TestHomographic_RandomRationals(t *testing.T) {
	rng := newTestRNG()
	for i := 0; i < propIters; i++ {
		a := rng.Int63n(201) - 100
		b := rng.Int63n(201) - 100
		c := rng.Int63n(201) - 100
		d := rng.Int63n(201) - 100
		r := randRat(rng, -100, 100, 100)

		s := contfrac.FromRat(r).Homographic(a, b, c, d)

		num := new(big.Rat).Add(new(big.Rat).Mul(big.NewRat(a, 1), r), big.NewRat(b, 1))
		den := new(big.Rat).Add(new(big.Rat).Mul(big.NewRat(c, 1), r), big.NewRat(d, 1))

		if den.Sign() == 0 {
			if num.Sign() == 0 {
				// Degenerate matrix: the map is constant; skip.
				continue
			}
			assert.Empty(t, s.CoefficientsList(0), "(%d,%d,%d,%d) at %s should be unbounded", a, b, c, d, r)
			_, err := s.Rat()
			assert.ErrorIs(t, err, contfrac.ErrUnbounded)

			continue
		}

		got, err := s.Rat()
		require.NoError(t, err, "(%d,%d,%d,%d) at %s", a, b, c, d, r)
		assert.Zero(t, got.Cmp(num.Quo(num, den)), "(%d,%d,%d,%d) at %s", a, b, c, d, r)
	}
}

// TestHomographic_InfinityMatrix: c = d = 0 is ∞ regardless of the input.
func TestHomographic_InfinityMatrix(t *testing.T) {
	s := contfrac.FromRat(big.NewRat(7, 3)).Homographic(1, 2, 0, 0)

	assert.Empty(t, s.CoefficientsList(0))
	_, err := s.Rat()
	assert.ErrorIs(t, err, contfrac.ErrUnbounded)
}

// TestHomographic_EmptyInput: an ∞ input is mapped to a/c — the engine's
// exhaustion residual — and to ∞ when c = 0.
func TestHomographic_EmptyInput(t *testing.T) {
	half := infinityCF().Homographic(1, 0, 2, 5)
	r, err := half.Rat()
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(big.NewRat(1, 2)))

	unbounded := infinityCF().Homographic(3, 1, 0, 5)
	assert.Empty(t, unbounded.CoefficientsList(0))
}

// TestHomographic_IrrationalInput: lazy emission on infinite streams.
// 1/(√2 − 1) = √2 + 1 shifts the periodic expansion: [2; 2, 2, ...].
func TestHomographic_IrrationalInput(t *testing.T) {
	shifted := sqrt2CF().Homographic(1, 1, 0, 1) // √2 + 1
	assert.Equal(t, []int64{2, 2, 2, 2, 2}, int64List(shifted.CoefficientsList(5)))

	recip := sqrt2CF().Homographic(0, 1, 1, -1) // 1/(√2 − 1)
	assert.Equal(t, []int64{2, 2, 2, 2, 2}, int64List(recip.CoefficientsList(5)))

	f, err := sqrt2CF().Homographic(3, -1, 1, 2).Float64() // (3√2−1)/(√2+2)
	require.NoError(t, err)
	want := (3*math.Sqrt2 - 1) / (math.Sqrt2 + 2)
	assert.InEpsilon(t, want, f, 1e-12)
}

// TestSplit peels the leading quotient off and leaves the reciprocal
// remainder; splitting ∞ fails.
func TestSplit(t *testing.T) {
	first, rest, err := contfrac.FromRat(big.NewRat(7, 3)).Split()
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Int64())

	r, err := rest.Rat()
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(big.NewRat(3, 1)))

	// Splitting a single-term stream leaves the ∞ handle.
	_, tail, err := contfrac.FromInt64(5).Split()
	require.NoError(t, err)
	_, err = tail.Rat()
	assert.ErrorIs(t, err, contfrac.ErrUnbounded)

	_, _, err = infinityCF().Split()
	assert.ErrorIs(t, err, contfrac.ErrUnbounded)
}
