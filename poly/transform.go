package poly

import (
	"fmt"
	"math/big"

	"STARK-Field/gf"
)

// EvalAtRoots evaluates p at every element of a power-of-two root-of-unity
// power cycle using a recursive Cooley-Tukey NTT over the field: the even and
// odd coefficient halves are evaluated at the squared root set and combined
// with a butterfly step, for O(k log k) total cost.
//
// rootsOfUnity must be the full power cycle of a primitive root whose order
// is a power of two dividing p-1, and len(p) must not exceed the cycle
// length; violations fail with ErrInvalidDomain.
func EvalAtRoots(f *gf.PrimeField, p Poly, rootsOfUnity []*big.Int) ([]*big.Int, error) {
	if err := validateDomain(f, len(rootsOfUnity)); err != nil {
		return nil, err
	}
	k := len(rootsOfUnity)
	if len(p) > k {
		return nil, fmt.Errorf("%w: polynomial has %d coefficients, domain only %d", gf.ErrInvalidDomain, len(p), k)
	}
	coeffs := make([]*big.Int, k)
	zero := new(big.Int)
	for i := range coeffs {
		if i < len(p) {
			coeffs[i] = f.Mod(p[i])
		} else {
			coeffs[i] = zero
		}
	}
	return ntt(f, coeffs, rootsOfUnity), nil
}

// InterpolateRoots recovers the unique polynomial of degree < k passing
// through (rootsOfUnity[i], ys[i]): the values are transformed at the inverse
// root cycle and scaled by inv(k). It is the exact algebraic inverse of
// EvalAtRoots for any polynomial of degree below the cycle length.
func InterpolateRoots(f *gf.PrimeField, rootsOfUnity []*big.Int, ys []*big.Int) (Poly, error) {
	if err := validateDomain(f, len(rootsOfUnity)); err != nil {
		return nil, err
	}
	k := len(rootsOfUnity)
	if len(ys) != k {
		return nil, fmt.Errorf("%w: %d values for a domain of %d roots", gf.ErrDimensionMismatch, len(ys), k)
	}

	// The cycle of r^-1 is the original cycle walked backwards.
	invRoots := make([]*big.Int, k)
	invRoots[0] = rootsOfUnity[0]
	for i := 1; i < k; i++ {
		invRoots[i] = rootsOfUnity[k-i]
	}

	vals := make([]*big.Int, k)
	for i, y := range ys {
		vals[i] = f.Mod(y)
	}
	raw := ntt(f, vals, invRoots)

	kInv, err := f.Inv(new(big.Int).SetUint64(uint64(k)))
	if err != nil {
		return nil, err
	}
	out := make(Poly, k)
	for i, v := range raw {
		out[i] = f.Mul(v, kInv)
	}
	return out, nil
}

// ntt is the recursive Cooley-Tukey kernel. coeffs and roots have the same
// power-of-two length; every value is already in canonical range.
func ntt(f *gf.PrimeField, coeffs, roots []*big.Int) []*big.Int {
	k := len(coeffs)
	if k == 1 {
		return []*big.Int{new(big.Int).Set(coeffs[0])}
	}
	half := k / 2
	evens := make([]*big.Int, half)
	odds := make([]*big.Int, half)
	sqRoots := make([]*big.Int, half)
	for i := 0; i < half; i++ {
		evens[i] = coeffs[2*i]
		odds[i] = coeffs[2*i+1]
		sqRoots[i] = roots[2*i]
	}
	evenVals := ntt(f, evens, sqRoots)
	oddVals := ntt(f, odds, sqRoots)

	out := make([]*big.Int, k)
	for i := 0; i < half; i++ {
		t := f.Mul(roots[i], oddVals[i])
		out[i] = f.Add(evenVals[i], t)
		out[i+half] = f.Sub(evenVals[i], t)
	}
	return out
}

// validateDomain checks that k is a power of two >= 2 for which the field has
// roots of unity, i.e. k divides p-1.
func validateDomain(f *gf.PrimeField, k int) error {
	if k < 2 || k&(k-1) != 0 {
		return fmt.Errorf("%w: domain size %d is not a power of two >= 2", gf.ErrInvalidDomain, k)
	}
	pm1 := new(big.Int).Sub(f.Characteristic(), big.NewInt(1))
	if new(big.Int).Mod(pm1, big.NewInt(int64(k))).Sign() != 0 {
		return fmt.Errorf("%w: field has no order-%d roots of unity", gf.ErrInvalidDomain, k)
	}
	return nil
}
