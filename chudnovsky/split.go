/*
Package chudnovsky computes floor(pi * 10^d) exactly using the Chudnovsky series
evaluated by binary splitting.

Term k of the series contributes

	(-1)^k (6k)! (13591409 + 545140134k) / ((3k)! (k!)^3 640320^(3k))

and binary splitting folds a range of terms into three integers P, Q and T so
that no rational arithmetic is needed until a single final division.
*/
package chudnovsky

import (
	"math/big"

	"NameInPi/mp"
)

const (
	// C is the Chudnovsky constant 640320.
	C = 640320

	// C3Over24 is C^3 / 24, which divides evenly.
	C3Over24 = C * C * C / 24

	termA = 13591409
	termB = 545140134
)

// Triple holds the binary splitting accumulators for a range [a, b) of terms.
// Only T/Q is meaningful, neither value converges on its own. A Triple is never
// modified once it has been built.
type Triple struct {
	P, Q, T *big.Int
}

// Combine merges the triples for [a, m) and [m, b) into the triple for [a, b).
func Combine(left, right Triple) Triple {
	t := mp.Mul(right.Q, left.T)
	return Triple{
		P: mp.Mul(left.P, right.P),
		Q: mp.Mul(left.Q, right.Q),
		T: t.Add(t, mp.Mul(left.P, right.T)),
	}
}

// Term returns the triple for the single term range [a, a+1).
func Term(a int64) Triple {
	var p, q *big.Int
	if a == 0 {
		p = big.NewInt(1)
		q = big.NewInt(1)
	} else {
		k := big.NewInt(a)
		p = big.NewInt(6*a - 5)
		p.Mul(p, big.NewInt(2*a-1))
		p.Mul(p, big.NewInt(6*a-1))

		q = new(big.Int).Mul(k, k)
		q.Mul(q, k)
		q.Mul(q, big.NewInt(C3Over24))
	}

	t := big.NewInt(termB)
	t.Mul(t, big.NewInt(a))
	t.Add(t, big.NewInt(termA))
	t.Mul(t, p)
	// the sign alternates with the parity of the term index
	if a&1 == 1 {
		t.Neg(t)
	}
	return Triple{P: p, Q: q, T: t}
}

// Midpoint is the split point used by Split, floor((a+b)/2).
func Midpoint(a, b int64) int64 {
	return a + (b-a)/2
}

// Split computes the triple for the range [a, b) splitting each range at its
// midpoint. It panics unless a < b.
func Split(a, b int64) Triple {
	return SplitWith(a, b, Midpoint)
}

// SplitWith is like Split, but mid chooses where each range with more than one
// term is divided. The value mid returns must lie strictly inside (a, b).
func SplitWith(a, b int64, mid func(a, b int64) int64) Triple {
	if a >= b {
		panic("chudnovsky: empty term range")
	}
	if b-a == 1 {
		return Term(a)
	}
	m := mid(a, b)
	if m <= a || m >= b {
		panic("chudnovsky: split point outside of range")
	}
	return Combine(SplitWith(a, m, mid), SplitWith(m, b, mid))
}
