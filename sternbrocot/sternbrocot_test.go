package sternbrocot_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosper/sternbrocot"
)

const (
	testSeed  = 1
	propIters = 2000
)

// numeralTable pins the first four levels of the tree.
var numeralTable = []struct {
	p, q    int64
	numeral string
}{
	{1, 1, ""},

	{1, 2, "L"},
	{2, 1, "R"},

	{1, 3, "LL"},
	{2, 3, "LR"},
	{3, 2, "RL"},
	{3, 1, "RR"},

	{1, 4, "LLL"},
	{2, 5, "LLR"},
	{3, 5, "LRL"},
	{3, 4, "LRR"},
	{4, 3, "RLL"},
	{5, 3, "RLR"},
	{5, 2, "RRL"},
	{4, 1, "RRR"},

	{1, 5, "LLLL"},
	{2, 7, "LLLR"},
	{3, 8, "LLRL"},
	{3, 7, "LLRR"},
	{4, 7, "LRLL"},
	{5, 8, "LRLR"},
	{5, 7, "LRRL"},
	{4, 5, "LRRR"},
	{5, 4, "RLLL"},
	{7, 5, "RLLR"},
	{8, 5, "RLRL"},
	{7, 4, "RLRR"},
	{7, 3, "RRLL"},
	{8, 3, "RRLR"},
	{7, 2, "RRRL"},
	{5, 1, "RRRR"},
}

func TestEncode_Table(t *testing.T) {
	for _, tc := range numeralTable {
		got, err := sternbrocot.Encode(big.NewRat(tc.p, tc.q))
		require.NoError(t, err)
		assert.Equal(t, tc.numeral, got, "%d/%d", tc.p, tc.q)
	}
}

func TestDecode_Table(t *testing.T) {
	for _, tc := range numeralTable {
		got, err := sternbrocot.Decode(tc.numeral)
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(big.NewRat(tc.p, tc.q)), "%q", tc.numeral)
	}
}

func TestDecode_InvalidNumeral(t *testing.T) {
	for _, bad := range []string{"X", "LRX", "lr", "L R"} {
		_, err := sternbrocot.Decode(bad)
		assert.ErrorIs(t, err, sternbrocot.ErrInvalidNumeral, "%q", bad)
	}
}

func TestEncode_NotPositive(t *testing.T) {
	for _, r := range []*big.Rat{nil, big.NewRat(0, 1), big.NewRat(-3, 2)} {
		_, err := sternbrocot.Encode(r)
		assert.ErrorIs(t, err, sternbrocot.ErrNotPositive)
	}
}

func TestRandomRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))

	// numeral → value → numeral
	for i := 0; i < propIters; i++ {
		var sb strings.Builder
		for n := rng.Intn(11); n > 0; n-- {
			sb.WriteByte("LR"[rng.Intn(2)])
		}
		numeral := sb.String()

		r, err := sternbrocot.Decode(numeral)
		require.NoError(t, err)
		back, err := sternbrocot.Encode(r)
		require.NoError(t, err)
		assert.Equal(t, numeral, back)
	}

	// value → numeral → value
	for i := 0; i < propIters; i++ {
		r := big.NewRat(1+rng.Int63n(1000), 1+rng.Int63n(1000))

		numeral, err := sternbrocot.Encode(r)
		require.NoError(t, err)
		back, err := sternbrocot.Decode(numeral)
		require.NoError(t, err)
		assert.Zero(t, back.Cmp(r), "%s via %q", r, numeral)
	}
}

func TestTransform(t *testing.T) {
	// x+1 on 1/2 lands on 3/2.
	got, err := sternbrocot.Transform("L", 1, 1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "RL", got)

	// Reciprocal mirrors the path.
	got, err = sternbrocot.Transform("RRLL", 0, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "LLRR", got)

	// Identity.
	got, err = sternbrocot.Transform("LRLR", 1, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "LRLR", got)

	// 2x−1 on 1/3 is negative.
	_, err = sternbrocot.Transform("LL", 2, -1, 0, 1)
	assert.ErrorIs(t, err, sternbrocot.ErrNotPositive)
}

func TestTransform_RandomAgainstRat(t *testing.T) {
	rng := rand.New(rand.NewSource(testSeed))
	for i := 0; i < propIters; i++ {
		r := big.NewRat(1+rng.Int63n(50), 1+rng.Int63n(50))
		numeral, err := sternbrocot.Encode(r)
		require.NoError(t, err)

		a, b := 1+rng.Int63n(10), rng.Int63n(10)
		c, d := rng.Int63n(10), 1+rng.Int63n(10)

		got, err := sternbrocot.Transform(numeral, a, b, c, d)
		require.NoError(t, err)

		// (a·r+b)/(c·r+d) in plain rational arithmetic.
		num := new(big.Rat).Add(new(big.Rat).Mul(big.NewRat(a, 1), r), big.NewRat(b, 1))
		den := new(big.Rat).Add(new(big.Rat).Mul(big.NewRat(c, 1), r), big.NewRat(d, 1))
		want, err := sternbrocot.Encode(num.Quo(num, den))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
