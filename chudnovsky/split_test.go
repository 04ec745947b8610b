package chudnovsky

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTriple(t *testing.T, want, got Triple, msg string) {
	t.Helper()
	assert.Equal(t, 0, want.P.Cmp(got.P), "%s: P %v vs %v", msg, want.P, got.P)
	assert.Equal(t, 0, want.Q.Cmp(got.Q), "%s: Q %v vs %v", msg, want.Q, got.Q)
	assert.Equal(t, 0, want.T.Cmp(got.T), "%s: T %v vs %v", msg, want.T, got.T)
}

func triple(p, q, t string) Triple {
	r := Triple{new(big.Int), new(big.Int), new(big.Int)}
	r.P.SetString(p, 10)
	r.Q.SetString(q, 10)
	r.T.SetString(t, 10)
	return r
}

func TestConstants(t *testing.T) {
	assert.Equal(t, int64(10939058860032000), int64(C3Over24))
	assert.InDelta(t, 14.181647462725477, DigitsPerTerm(), 1e-12)
}

func TestTerm(t *testing.T) {
	first := Term(0)
	assert.Equal(t, int64(1), first.P.Int64())
	assert.Equal(t, int64(1), first.Q.Int64())
	assert.Equal(t, int64(13591409), first.T.Int64())

	assertTriple(t, triple("5", "10939058860032000", "-2793657715"), Term(1), "term 1")
	assertTriple(t, triple("231", "87512470880256000", "254994357387"), Term(2), "term 2")
	assertTriple(t, triple("1105", "295354589220864000", "-1822158051155"), Term(3), "term 3")
}

func TestTerm_Sign(t *testing.T) {
	for a := int64(0); a < 200; a++ {
		r := Split(a, a+1)
		if a%2 == 1 {
			assert.Equal(t, -1, r.T.Sign(), "term %d", a)
		} else {
			assert.Equal(t, 1, r.T.Sign(), "term %d", a)
		}
	}
}

func TestSplit(t *testing.T) {
	assertTriple(t,
		triple(
			"1276275",
			"282744150338349327484720295874090277797888000000000",
			"3842891389605921886462458445812845012126032377429502755975",
		),
		Split(0, 4),
		"[0, 4)",
	)
	assertTriple(t,
		triple(
			"1155",
			"957304069945956794936328192000000",
			"13011111151999862216419332076961924746935",
		),
		Split(0, 3),
		"[0, 3)",
	)
}

func TestSplit_Associative(t *testing.T) {
	leftmost := func(a, b int64) int64 { return a + 1 }
	rightmost := func(a, b int64) int64 { return b - 1 }
	random := func(a, b int64) int64 { return a + 1 + rand.Int64N(b-a-1) }

	ranges := [][2]int64{{0, 2}, {0, 7}, {1, 9}, {3, 40}, {0, 100}, {17, 64}}
	for _, r := range ranges {
		a, b := r[0], r[1]
		want := Split(a, b)
		assertTriple(t, want, SplitWith(a, b, leftmost), "leftmost")
		assertTriple(t, want, SplitWith(a, b, rightmost), "rightmost")
		assertTriple(t, want, SplitWith(a, b, random), "random")

		// any single cut point combines to the same result
		for m := a + 1; m < b; m++ {
			assertTriple(t, want, Combine(Split(a, m), Split(m, b)), "combine")
		}
	}
}

func TestSplit_Panics(t *testing.T) {
	assert.Panics(t, func() { Split(3, 3) })
	assert.Panics(t, func() { Split(4, 3) })
	assert.Panics(t, func() { SplitWith(0, 4, func(a, b int64) int64 { return a }) })
	assert.Panics(t, func() { SplitWith(0, 4, func(a, b int64) int64 { return b }) })
}

func TestSplitter(t *testing.T) {
	want := Split(0, 300)

	var nilSplitter *Splitter
	assertTriple(t, want, nilSplitter.Split(0, 300), "nil")
	assertTriple(t, want, (&Splitter{}).Split(0, 300), "zero")

	for _, s := range []*Splitter{
		{Workers: 1, Threshold: 2},
		{Workers: 3, Threshold: 8},
		{Workers: 16, Threshold: 0},
		NewSplitter(),
	} {
		assertTriple(t, want, s.Split(0, 300), "parallel")
		assertTriple(t, Split(7, 123), s.Split(7, 123), "offset range")
		assertTriple(t, Split(5, 6), s.Split(5, 6), "single term")
	}
}

func TestNewSplitter(t *testing.T) {
	s := NewSplitter()
	require.NotNil(t, s)
	assert.GreaterOrEqual(t, s.Workers, 0)
	assert.Equal(t, int64(DefaultThreshold), s.Threshold)
}
