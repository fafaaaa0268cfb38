// Package poly implements polynomial arithmetic over GF(p): coefficient-wise
// operations, long division, FFT-based evaluation and interpolation at roots
// of unity, and Lagrange interpolation for arbitrary point sets.
//
// A polynomial is an ascending-degree coefficient sequence: index i holds the
// coefficient of x^i. The empty sequence is the zero polynomial. Trailing
// zero coefficients are preserved; callers control degree via length.
package poly

import (
	"fmt"
	"math/big"

	"STARK-Field/gf"
)

// Poly is an ascending-degree coefficient sequence over a prime field.
type Poly []*big.Int

// Add returns a + b, padding the shorter operand with zeros.
func Add(f *gf.PrimeField, a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Poly, n)
	zero := new(big.Int)
	for i := 0; i < n; i++ {
		ai, bi := zero, zero
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = f.Add(ai, bi)
	}
	return out
}

// Sub returns a - b, padding the shorter operand with zeros.
func Sub(f *gf.PrimeField, a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Poly, n)
	zero := new(big.Int)
	for i := 0; i < n; i++ {
		ai, bi := zero, zero
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = f.Sub(ai, bi)
	}
	return out
}

// Mul returns the product polynomial, the full convolution of the
// coefficient sequences. Cost is O(len(a) * len(b)).
func Mul(f *gf.PrimeField, a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j].Add(out[i+j], tmp.Mul(ai, bj))
		}
	}
	res := make(Poly, len(out))
	for i, v := range out {
		res[i] = f.Mod(v)
	}
	return res
}

// MulByConst scales every coefficient of a by c.
func MulByConst(f *gf.PrimeField, a Poly, c *big.Int) Poly {
	out := make(Poly, len(a))
	for i, ai := range a {
		out[i] = f.Mul(ai, c)
	}
	return out
}

// Div performs exact polynomial division a / b. A zero divisor fails with
// ErrDivisionByZero; a nonzero remainder fails with ErrNotDivisible. Callers
// that want the remainder use DivMod instead.
func Div(f *gf.PrimeField, a, b Poly) (Poly, error) {
	q, r, err := DivMod(f, a, b)
	if err != nil {
		return nil, err
	}
	if degree(f, r) >= 0 {
		return nil, fmt.Errorf("%w: remainder of degree %d", gf.ErrNotDivisible, degree(f, r))
	}
	return q, nil
}

// DivMod performs polynomial long division, returning quotient and remainder
// with a = b*q + r and deg(r) < deg(b). Only a zero divisor polynomial is
// an error.
func DivMod(f *gf.PrimeField, a, b Poly) (quotient, remainder Poly, err error) {
	db := degree(f, b)
	if db < 0 {
		return nil, nil, fmt.Errorf("%w: zero divisor polynomial", gf.ErrDivisionByZero)
	}
	da := degree(f, a)
	if da < db {
		return Poly{}, reduced(f, a), nil
	}

	invLead, err := f.Inv(b[db])
	if err != nil {
		return nil, nil, err
	}
	rem := make([]*big.Int, da+1)
	for i := 0; i <= da; i++ {
		rem[i] = f.Mod(a[i])
	}
	q := make(Poly, da-db+1)
	for i := range q {
		q[i] = new(big.Int)
	}
	for i := da; i >= db; i-- {
		if rem[i].Sign() == 0 {
			continue
		}
		c := f.Mul(rem[i], invLead)
		q[i-db] = c
		for j := 0; j <= db; j++ {
			rem[i-db+j] = f.Sub(rem[i-db+j], new(big.Int).Mul(c, b[j]))
		}
	}
	return q, Poly(rem[:db]), nil
}

// EvalAt evaluates the polynomial at x with Horner's rule.
func EvalAt(f *gf.PrimeField, p Poly, x *big.Int) *big.Int {
	mod := f.Characteristic()
	acc := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p[i])
		acc.Mod(acc, mod)
	}
	return acc
}

// EvalQuarticBatch evaluates many independent degree-3 polynomials, one per
// row, at the matching x-coordinate. Every row must hold exactly 4
// coefficients (ErrInvalidDegree); row counts must match (ErrDimensionMismatch).
func EvalQuarticBatch(f *gf.PrimeField, polys [][]*big.Int, xs []*big.Int) ([]*big.Int, error) {
	if len(polys) != len(xs) {
		return nil, fmt.Errorf("%w: %d polynomials vs %d x-coordinates", gf.ErrDimensionMismatch, len(polys), len(xs))
	}
	out := make([]*big.Int, len(polys))
	for i, row := range polys {
		if len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, want 4", gf.ErrInvalidDegree, i, len(row))
		}
		out[i] = EvalAt(f, Poly(row), xs[i])
	}
	return out, nil
}

// degree returns the index of the highest nonzero coefficient mod p, or -1
// for the zero polynomial.
func degree(f *gf.PrimeField, p Poly) int {
	for i := len(p) - 1; i >= 0; i-- {
		if f.Mod(p[i]).Sign() != 0 {
			return i
		}
	}
	return -1
}

// reduced returns a copy of p with every coefficient in canonical range.
func reduced(f *gf.PrimeField, p Poly) Poly {
	out := make(Poly, len(p))
	for i, v := range p {
		out[i] = f.Mod(v)
	}
	return out
}
