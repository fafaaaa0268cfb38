// Package gf implements exact arithmetic over prime fields GF(p) with
// arbitrary-precision elements: scalar modular operations, Montgomery batch
// inversion and other vectorized operations, secure and seeded randomness,
// and roots-of-unity machinery for NTT-style transforms.
//
// All elements are *big.Int values in the canonical range [0, p). Inputs may
// be negative or exceed p; they are reduced on use. Every operation returns
// freshly allocated values and never retains caller slices, so a single
// PrimeField is safe for concurrent use.
package gf

import (
	"fmt"
	"math/big"
	"sync"

	"STARK-Field/internal/factor"
)

// FiniteField is the operation set shared by every field engine. PrimeField
// is the GF(p) specialization; an extension-field GF(p^n) variant would
// implement the same set over a different element representation.
type FiniteField interface {
	Characteristic() *big.Int
	ExtensionDegree() int
	ElementSize() int

	Add(x, y *big.Int) *big.Int
	Sub(x, y *big.Int) *big.Int
	Mul(x, y *big.Int) *big.Int
	Div(x, y *big.Int) (*big.Int, error)
	Exp(b, e *big.Int) (*big.Int, error)
	Inv(v *big.Int) (*big.Int, error)

	InvMany(values []*big.Int) ([]*big.Int, error)
	MulMany(values [][]*big.Int, m1, m2 []*big.Int) ([][]*big.Int, error)
	Combine(values, coefficients []*big.Int) (*big.Int, error)
	CombineMany(values [][]*big.Int, coefficients []*big.Int) ([]*big.Int, error)
	PowerSeries(base *big.Int, length int) []*big.Int

	Rand() (*big.Int, error)
	Prng(seed []byte, length int) ([]*big.Int, error)

	RootOfUnity(order uint64) (*big.Int, error)
	PowerCycle(root *big.Int) ([]*big.Int, error)
}

// PrimeField is a GF(p) engine. The modulus is immutable; the factorization
// of p-1 and the group generator are computed once on first use and shared
// by all subsequent root-of-unity lookups.
type PrimeField struct {
	p        *big.Int
	pMinus1  *big.Int
	elemSize int

	genOnce    sync.Once
	genErr     error
	generator  *big.Int
	pm1Factors []*big.Int
}

var _ FiniteField = (*PrimeField)(nil)

// NewPrimeField builds a GF(p) engine. p must be an odd integer >= 3;
// primality is asserted by the caller, not verified here.
func NewPrimeField(p *big.Int) (*PrimeField, error) {
	if p == nil || p.Cmp(big.NewInt(3)) < 0 {
		return nil, fmt.Errorf("gf: modulus must be >= 3")
	}
	if p.Bit(0) == 0 {
		return nil, fmt.Errorf("gf: modulus must be odd")
	}
	mod := new(big.Int).Set(p)
	return &PrimeField{
		p:        mod,
		pMinus1:  new(big.Int).Sub(mod, big.NewInt(1)),
		elemSize: (mod.BitLen() + 7) / 8,
	}, nil
}

// NewPrimeFieldChecked is NewPrimeField plus a Miller-Rabin probable-prime
// pass over the modulus. Use it at trust boundaries where the modulus is not
// known prime by construction.
func NewPrimeFieldChecked(p *big.Int) (*PrimeField, error) {
	f, err := NewPrimeField(p)
	if err != nil {
		return nil, err
	}
	if !f.p.ProbablyPrime(20) {
		return nil, fmt.Errorf("gf: modulus %s is not prime", f.p.String())
	}
	return f, nil
}

// Characteristic returns a copy of the field modulus p.
func (f *PrimeField) Characteristic() *big.Int {
	return new(big.Int).Set(f.p)
}

// ExtensionDegree returns 1: this engine is the prime-field case of GF(p^n).
func (f *PrimeField) ExtensionDegree() int { return 1 }

// ElementSize returns the minimum byte width representing any element,
// ceil(bitlen(p)/8).
func (f *PrimeField) ElementSize() int { return f.elemSize }

// Mod reduces v into the canonical range [0, p). The reduction is the true
// mathematical modulo, so negative inputs map to their positive residue.
func (f *PrimeField) Mod(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.p)
}

// Add returns x + y mod p.
func (f *PrimeField) Add(x, y *big.Int) *big.Int {
	return f.Mod(new(big.Int).Add(x, y))
}

// Sub returns x - y mod p.
func (f *PrimeField) Sub(x, y *big.Int) *big.Int {
	return f.Mod(new(big.Int).Sub(x, y))
}

// Mul returns x * y mod p.
func (f *PrimeField) Mul(x, y *big.Int) *big.Int {
	return f.Mod(new(big.Int).Mul(x, y))
}

// Div returns x * y^-1 mod p, or ErrDivisionByZero when y is congruent to zero.
func (f *PrimeField) Div(x, y *big.Int) (*big.Int, error) {
	inv, err := f.Inv(y)
	if err != nil {
		return nil, fmt.Errorf("%w: divisor is zero", ErrDivisionByZero)
	}
	return f.Mul(x, inv), nil
}

// Exp returns b^e mod p by square-and-multiply. A negative exponent is
// interpreted over the field: b^e = Inv(b)^|e|, which fails with
// ErrNotInvertible when b is congruent to zero.
func (f *PrimeField) Exp(b, e *big.Int) (*big.Int, error) {
	base := f.Mod(b)
	if e.Sign() >= 0 {
		return new(big.Int).Exp(base, e, f.p), nil
	}
	inv, err := f.Inv(base)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Exp(inv, new(big.Int).Neg(e), f.p), nil
}

// Inv returns the multiplicative inverse of v via the extended Euclidean
// algorithm, or ErrNotInvertible when v is congruent to zero.
func (f *PrimeField) Inv(v *big.Int) (*big.Int, error) {
	val := f.Mod(v)
	if val.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero element", ErrNotInvertible)
	}
	x := new(big.Int)
	g := new(big.Int).GCD(x, nil, val, f.p)
	if g.Cmp(big.NewInt(1)) != 0 {
		// Unreachable for prime p and nonzero val; guards composite moduli
		// passed through the unchecked constructor.
		return nil, fmt.Errorf("%w: gcd(%s, p) = %s", ErrNotInvertible, val.String(), g.String())
	}
	return f.Mod(x), nil
}

// groupData returns the cached generator of GF(p)* and the distinct prime
// factors of p-1, computing both on first call.
func (f *PrimeField) groupData() (*big.Int, []*big.Int, error) {
	f.genOnce.Do(func() {
		factors, err := factor.Distinct(f.pMinus1)
		if err != nil {
			f.genErr = fmt.Errorf("gf: factoring p-1: %w", err)
			return
		}
		f.pm1Factors = factors
		f.generator, f.genErr = f.findGenerator(factors)
	})
	return f.generator, f.pm1Factors, f.genErr
}

// findGenerator scans small candidates for a generator of the multiplicative
// group: c generates GF(p)* iff c^((p-1)/q) != 1 for every prime q | p-1.
func (f *PrimeField) findGenerator(factors []*big.Int) (*big.Int, error) {
	one := big.NewInt(1)
	exp := new(big.Int)
	for c := int64(2); ; c++ {
		cand := big.NewInt(c)
		if cand.Cmp(f.p) >= 0 {
			return nil, fmt.Errorf("gf: no generator found for modulus %s", f.p.String())
		}
		isGen := true
		for _, q := range factors {
			exp.Div(f.pMinus1, q)
			if new(big.Int).Exp(cand, exp, f.p).Cmp(one) == 0 {
				isGen = false
				break
			}
		}
		if isGen {
			return cand, nil
		}
	}
}
