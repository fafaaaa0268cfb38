package gf

import (
	"fmt"
	"math/big"

	"STARK-Field/internal/factor"
)

// RootOfUnity returns a primitive root of unity of the given order: an
// element r with r^order = 1 and r^j != 1 for 0 < j < order. The order must
// be at least 2 and divide p-1, otherwise ErrInvalidOrder is returned.
//
// The root is derived as g^((p-1)/order) from a cached generator g of the
// multiplicative group. Primitivity of the result is verified against the
// prime factors of order before it is returned; an unverified root would
// silently corrupt every transform built on it.
func (f *PrimeField) RootOfUnity(order uint64) (*big.Int, error) {
	if order < 2 {
		return nil, fmt.Errorf("%w: order %d must be >= 2", ErrInvalidOrder, order)
	}
	ord := new(big.Int).SetUint64(order)
	if new(big.Int).Mod(f.pMinus1, ord).Sign() != 0 {
		return nil, fmt.Errorf("%w: order %d does not divide p-1", ErrInvalidOrder, order)
	}

	gen, _, err := f.groupData()
	if err != nil {
		return nil, err
	}
	exp := new(big.Int).Div(f.pMinus1, ord)
	root := new(big.Int).Exp(gen, exp, f.p)

	if err := f.verifyPrimitive(root, ord); err != nil {
		return nil, err
	}
	return root, nil
}

// verifyPrimitive checks root^order = 1 and root^(order/q) != 1 for every
// prime factor q of order.
func (f *PrimeField) verifyPrimitive(root, order *big.Int) error {
	one := big.NewInt(1)
	if new(big.Int).Exp(root, order, f.p).Cmp(one) != 0 {
		return fmt.Errorf("%w: candidate root is not an order-%s root", ErrInvalidOrder, order.String())
	}
	ordFactors, err := factor.Distinct(order)
	if err != nil {
		return fmt.Errorf("gf: factoring order: %w", err)
	}
	exp := new(big.Int)
	for _, q := range ordFactors {
		exp.Div(order, q)
		if new(big.Int).Exp(root, exp, f.p).Cmp(one) == 0 {
			return fmt.Errorf("%w: candidate root is not primitive (order/%s collapses to 1)", ErrInvalidOrder, q.String())
		}
	}
	return nil
}

// PowerCycle returns the full ordered power sequence [r^0, r^1, ...] of the
// root, stopping as soon as the value 1 recurs. The result length equals the
// multiplicative order of root. A root congruent to zero has no power cycle
// and fails with ErrInvalidOrder.
func (f *PrimeField) PowerCycle(root *big.Int) ([]*big.Int, error) {
	r := f.Mod(root)
	if r.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero has no power cycle", ErrInvalidOrder)
	}
	one := big.NewInt(1)
	cycle := []*big.Int{big.NewInt(1)}
	for cur := new(big.Int).Set(r); cur.Cmp(one) != 0; cur = f.Mul(cur, r) {
		cycle = append(cycle, new(big.Int).Set(cur))
	}
	return cycle, nil
}
