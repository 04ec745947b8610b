package mp

import (
	"math/big"
	"sync/atomic"

	"github.com/remyoudompheng/bigfft"
)

// DefaultFFTThreshold is the operand size in bits at which Mul switches from
// the Karatsuba multiplication in math/big to FFT multiplication. Below this
// size the FFT setup costs more than it saves.
const DefaultFFTThreshold = 500_000

var (
	one = big.NewInt(1)
	ten = big.NewInt(10)

	fftThreshold atomic.Int64
)

func init() {
	fftThreshold.Store(DefaultFFTThreshold)
}

// SetFFTThreshold changes the bit length at which Mul hands off to bigfft.
// A value of zero or less disables FFT multiplication entirely.
func SetFFTThreshold(bits int) {
	fftThreshold.Store(int64(bits))
}

// FFTThreshold returns the current FFT hand-off size in bits.
func FFTThreshold() int {
	return int(fftThreshold.Load())
}

// Mul returns x*y as a new value. Neither argument is modified.
func Mul(x, y *big.Int) *big.Int {
	limit := fftThreshold.Load()
	if limit > 0 && int64(x.BitLen()) >= limit && int64(y.BitLen()) >= limit {
		return bigfft.Mul(x, y)
	}
	return new(big.Int).Mul(x, y)
}

// FloorDiv returns floor(x / y), that is the quotient rounded toward negative
// infinity. This differs from both big.Int.Quo (truncation) and big.Int.Div
// (Euclidean) when y is negative or when the signs of x and y differ.
func FloorDiv(x, y *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	// truncation rounded toward zero, step down if the true quotient was negative
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, one)
	}
	return q
}

// Isqrt returns floor(sqrt(x)). It panics if x is negative.
func Isqrt(x *big.Int) *big.Int {
	if x.Sign() < 0 {
		panic("mp: square root of negative value")
	}
	return new(big.Int).Sqrt(x)
}

// Odd reports whether x is odd. The sign of x is irrelevant.
func Odd(x *big.Int) bool {
	return x.Bit(0) == 1
}

// Pow10 returns 10^n for n >= 0.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("mp: negative exponent")
	}
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// LastDigits returns the k low order decimal digits of |x|. The value of k
// must be in [0..19] so the result fits a uint64.
func LastDigits(x *big.Int, k int) uint64 {
	if k < 0 || k > 19 {
		panic("mp: digit count out of range")
	}
	m := new(big.Int).Abs(x)
	return m.Mod(m, Pow10(k)).Uint64()
}
