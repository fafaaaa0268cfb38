package gf

import (
	"fmt"
	"math/big"
)

// InvMany inverts every element of values with Montgomery's batch trick: one
// forward pass of running products, a single Inv of the total, and a backward
// pass recovering each inverse. Cost is 3(n-1) multiplications plus one
// inversion. Fails with ErrNotInvertible if any element is congruent to zero;
// no partial result is returned.
func (f *PrimeField) InvMany(values []*big.Int) ([]*big.Int, error) {
	n := len(values)
	if n == 0 {
		return []*big.Int{}, nil
	}

	// Running products: acc[i] = values[0] * ... * values[i].
	acc := make([]*big.Int, n)
	for i, v := range values {
		red := f.Mod(v)
		if red.Sign() == 0 {
			return nil, fmt.Errorf("%w: zero element at index %d", ErrNotInvertible, i)
		}
		if i == 0 {
			acc[0] = red
		} else {
			acc[i] = f.Mul(acc[i-1], red)
		}
	}

	tailInv, err := f.Inv(acc[n-1])
	if err != nil {
		return nil, err
	}

	// Backward pass: values[i]^-1 = acc[i-1] * (values[0..i])^-1.
	out := make([]*big.Int, n)
	for i := n - 1; i > 0; i-- {
		out[i] = f.Mul(tailInv, acc[i-1])
		tailInv = f.Mul(tailInv, f.Mod(values[i]))
	}
	out[0] = tailInv
	return out, nil
}

// MulMany multiplies every column of a column-major matrix row-wise by m1
// and, when m2 is non-nil, additionally by m2. The result has the shape of
// values. All columns and both multiplier vectors must share one row count;
// any mismatch fails with ErrDimensionMismatch.
func (f *PrimeField) MulMany(values [][]*big.Int, m1, m2 []*big.Int) ([][]*big.Int, error) {
	rows := len(m1)
	if m2 != nil && len(m2) != rows {
		return nil, fmt.Errorf("%w: m1 has %d rows, m2 has %d", ErrDimensionMismatch, rows, len(m2))
	}
	out := make([][]*big.Int, len(values))
	for c, col := range values {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrDimensionMismatch, c, len(col), rows)
		}
		res := make([]*big.Int, rows)
		for r, v := range col {
			prod := f.Mul(v, m1[r])
			if m2 != nil {
				prod = f.Mul(prod, m2[r])
			}
			res[r] = prod
		}
		out[c] = res
	}
	return out, nil
}

// Combine returns the dot product sum(values[i] * coefficients[i]) mod p.
// Length mismatch fails with ErrDimensionMismatch.
func (f *PrimeField) Combine(values, coefficients []*big.Int) (*big.Int, error) {
	if len(values) != len(coefficients) {
		return nil, fmt.Errorf("%w: %d values vs %d coefficients", ErrDimensionMismatch, len(values), len(coefficients))
	}
	acc := new(big.Int)
	tmp := new(big.Int)
	for i, v := range values {
		acc.Add(acc, tmp.Mul(v, coefficients[i]))
	}
	return f.Mod(acc), nil
}

// CombineMany computes, for every row of a column-major matrix, the dot
// product of that row with coefficients (one coefficient per column). This is
// the matrix-vector product over the field; one result per row.
func (f *PrimeField) CombineMany(values [][]*big.Int, coefficients []*big.Int) ([]*big.Int, error) {
	if len(values) != len(coefficients) {
		return nil, fmt.Errorf("%w: %d columns vs %d coefficients", ErrDimensionMismatch, len(values), len(coefficients))
	}
	if len(values) == 0 {
		return []*big.Int{}, nil
	}
	rows := len(values[0])
	acc := make([]*big.Int, rows)
	for r := range acc {
		acc[r] = new(big.Int)
	}
	tmp := new(big.Int)
	for c, col := range values {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrDimensionMismatch, c, len(col), rows)
		}
		for r, v := range col {
			acc[r].Add(acc[r], tmp.Mul(v, coefficients[c]))
		}
	}
	for r := range acc {
		acc[r] = f.Mod(acc[r])
	}
	return acc, nil
}

// PowerSeries returns [base^0, base^1, ..., base^(length-1)], each term one
// multiplication from the previous.
func (f *PrimeField) PowerSeries(base *big.Int, length int) []*big.Int {
	out := make([]*big.Int, length)
	if length == 0 {
		return out
	}
	out[0] = big.NewInt(1)
	if length == 1 {
		return out
	}
	b := f.Mod(base)
	out[1] = b
	for i := 2; i < length; i++ {
		out[i] = f.Mul(out[i-1], b)
	}
	return out
}
