package poly

import (
	"fmt"
	"math/big"

	"STARK-Field/gf"
)

// Interpolate performs general Lagrange interpolation over arbitrary
// pairwise-distinct x-coordinates, returning the unique polynomial of degree
// < n with P(xs[i]) = ys[i]. Cost is O(n^2); root-of-unity domains should use
// InterpolateRoots instead. Repeated x-coordinates fail with
// ErrDuplicateXCoordinate, length mismatch with ErrDimensionMismatch.
func Interpolate(f *gf.PrimeField, xs, ys []*big.Int) (Poly, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, fmt.Errorf("%w: %d x-coordinates vs %d values", gf.ErrDimensionMismatch, n, len(ys))
	}
	if n == 0 {
		return Poly{}, nil
	}

	points := make([]*big.Int, n)
	for i, x := range xs {
		points[i] = f.Mod(x)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].Cmp(points[j]) == 0 {
				return nil, fmt.Errorf("%w: x=%s at indices %d and %d", gf.ErrDuplicateXCoordinate, points[i].String(), i, j)
			}
		}
	}

	// Vanishing polynomial prod (x - xi), then per-point numerators by
	// synthetic division and denominators numerator_i(xi).
	root := make(Poly, 1, n+1)
	root[0] = big.NewInt(1)
	for _, x := range points {
		root = Mul(f, root, Poly{f.Sub(new(big.Int), x), big.NewInt(1)})
	}

	numerators := make([]Poly, n)
	denominators := make([]*big.Int, n)
	for i, x := range points {
		numerators[i] = divByLinear(f, root, x)
		denominators[i] = EvalAt(f, numerators[i], x)
	}
	invDenoms, err := f.InvMany(denominators)
	if err != nil {
		return nil, err
	}

	out := make(Poly, n)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		scale := f.Mul(ys[i], invDenoms[i])
		for j := 0; j < n; j++ {
			out[j].Add(out[j], tmp.Mul(numerators[i][j], scale))
		}
	}
	for j := range out {
		out[j] = f.Mod(out[j])
	}
	return out, nil
}

// InterpolateQuarticBatch interpolates many independent degree-3 polynomials,
// one per 4-point row, in a single batched pass. The closed form for fixed
// degree 3 avoids general Lagrange overhead, and all 4*rows denominators are
// inverted with one shared batch inversion. Rows of width other than 4 fail
// with ErrInvalidDegree, mismatched row counts with ErrDimensionMismatch.
func InterpolateQuarticBatch(f *gf.PrimeField, xSets, ySets [][]*big.Int) ([][]*big.Int, error) {
	rows := len(xSets)
	if rows != len(ySets) {
		return nil, fmt.Errorf("%w: %d x-rows vs %d y-rows", gf.ErrDimensionMismatch, rows, len(ySets))
	}

	// Per row: numerator polynomials for each of the 4 points, plus the
	// denominator numerator_i(x_i), collected for one batch inversion.
	equations := make([][4]Poly, rows)
	denominators := make([]*big.Int, 0, 4*rows)
	for r := 0; r < rows; r++ {
		if len(xSets[r]) != 4 {
			return nil, fmt.Errorf("%w: x-row %d has width %d, want 4", gf.ErrInvalidDegree, r, len(xSets[r]))
		}
		if len(ySets[r]) != 4 {
			return nil, fmt.Errorf("%w: y-row %d has width %d, want 4", gf.ErrInvalidDegree, r, len(ySets[r]))
		}
		xs := xSets[r]
		for i := 0; i < 4; i++ {
			eq := quarticNumerator(f, xs, i)
			equations[r][i] = eq
			denominators = append(denominators, EvalAt(f, eq, xs[i]))
		}
	}

	invDenoms, err := f.InvMany(denominators)
	if err != nil {
		return nil, fmt.Errorf("quartic batch with coincident x-coordinates: %w", err)
	}

	out := make([][]*big.Int, rows)
	tmp := new(big.Int)
	for r := 0; r < rows; r++ {
		coeffs := make([]*big.Int, 4)
		for j := range coeffs {
			coeffs[j] = new(big.Int)
		}
		for i := 0; i < 4; i++ {
			scale := f.Mul(ySets[r][i], invDenoms[4*r+i])
			eq := equations[r][i]
			for j := 0; j < 4; j++ {
				coeffs[j].Add(coeffs[j], tmp.Mul(eq[j], scale))
			}
		}
		for j := range coeffs {
			coeffs[j] = f.Mod(coeffs[j])
		}
		out[r] = coeffs
	}
	return out, nil
}

// quarticNumerator expands prod_{j != i} (x - xs[j]) for a 4-point row into
// ascending coefficients [c0, c1, c2, 1].
func quarticNumerator(f *gf.PrimeField, xs []*big.Int, i int) Poly {
	var a, b, c *big.Int
	switch i {
	case 0:
		a, b, c = xs[1], xs[2], xs[3]
	case 1:
		a, b, c = xs[0], xs[2], xs[3]
	case 2:
		a, b, c = xs[0], xs[1], xs[3]
	default:
		a, b, c = xs[0], xs[1], xs[2]
	}
	ab := f.Mul(a, b)
	// (x-a)(x-b)(x-c) = x^3 - (a+b+c)x^2 + (ab+ac+bc)x - abc
	c0 := f.Sub(new(big.Int), f.Mul(ab, c))
	c1 := f.Add(ab, f.Mul(f.Add(a, b), c))
	c2 := f.Sub(new(big.Int), f.Add(f.Add(a, b), c))
	return Poly{c0, c1, c2, big.NewInt(1)}
}

// divByLinear divides p by the monic linear factor (x - x0) with synthetic
// division, assuming exact divisibility. The quotient has len(p)-1
// coefficients.
func divByLinear(f *gf.PrimeField, p Poly, x0 *big.Int) Poly {
	out := make(Poly, len(p)-1)
	carry := new(big.Int)
	for i := len(p) - 2; i >= 0; i-- {
		carry = f.Add(p[i+1], f.Mul(carry, x0))
		out[i] = carry
	}
	return out
}
