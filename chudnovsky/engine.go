package chudnovsky

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"NameInPi/mp"
)

var digitsPerTerm = math.Log10(float64(C3Over24) / 72)

// DigitsPerTerm is the number of decimal digits each term adds, log10(C^3/1728).
// It is a slight underestimate so the term count never falls short.
func DigitsPerTerm() float64 {
	return digitsPerTerm
}

const piScale = 426880

// Terms returns the number of series terms needed for d digits.
func Terms(d int) int64 {
	return int64(float64(d)/digitsPerTerm) + 1
}

// Pi returns floor(pi * 10^d) computed on the calling goroutine. It panics if
// d < 1.
func Pi(d int) *big.Int {
	return (*Splitter)(nil).Pi(d)
}

// Pi returns floor(pi * 10^d) using the splitter's workers for the series.
func (s *Splitter) Pi(d int) *big.Int {
	if d < 1 {
		panic("chudnovsky: digit count must be positive")
	}
	return scaled(s.Split(0, Terms(d)), d)
}

// scaled turns the triple for [0, N) into Q * 426880 * sqrt(10005) / T with
// d decimal digits, rounding toward negative infinity.
func scaled(r Triple, d int) *big.Int {
	// sqrt(10005) with 2d fractional digits, the only rounding besides truncating the series
	sqrtC := mp.Isqrt(new(big.Int).Mul(big.NewInt(10005), mp.Pow10(2*d)))

	num := mp.Mul(r.Q, sqrtC)
	num.Mul(num, big.NewInt(piScale))
	return mp.FloorDiv(num, r.T)
}

// Fixed views an integer produced by Pi(d) as the decimal value it stands for,
// 3.14159... with d digits after the point.
func Fixed(pi *big.Int, d int) decimal.Decimal {
	return decimal.NewFromBigInt(pi, -int32(d))
}
