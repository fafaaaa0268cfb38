// Package factor computes the distinct prime factors of arbitrary-precision
// integers. It backs the multiplicative-group generator search: finding a
// generator of GF(p)* requires the prime factorization of p-1.
package factor

import (
	"errors"
	"fmt"
	"math/big"
)

// trialBound caps the trial-division stage; everything below 2^16 is peeled
// off before Pollard's rho takes over.
const trialBound = 1 << 16

// millerRabinRounds is passed to big.Int.ProbablyPrime. Together with the
// Baillie-PSW test this makes the composite-declared-prime probability
// negligible for inputs of any practical size.
const millerRabinRounds = 20

var one = big.NewInt(1)

// Distinct returns the distinct prime factors of n in ascending order.
// n must be >= 2.
func Distinct(n *big.Int) ([]*big.Int, error) {
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.New("factor: input must be >= 2")
	}
	rem := new(big.Int).Set(n)
	seen := make(map[string]*big.Int)

	// Trial division stage.
	two := big.NewInt(2)
	if rem.Bit(0) == 0 {
		seen[two.String()] = two
		for rem.Bit(0) == 0 {
			rem.Rsh(rem, 1)
		}
	}
	d := big.NewInt(3)
	limit := big.NewInt(trialBound)
	mod := new(big.Int)
	for d.Cmp(limit) <= 0 {
		sq := new(big.Int).Mul(d, d)
		if sq.Cmp(rem) > 0 {
			break
		}
		if mod.Mod(rem, d).Sign() == 0 {
			p := new(big.Int).Set(d)
			seen[p.String()] = p
			for mod.Mod(rem, d).Sign() == 0 {
				rem.Div(rem, d)
			}
		}
		d.Add(d, two)
	}

	if rem.Cmp(one) > 0 {
		if err := splitRecursive(rem, seen); err != nil {
			return nil, err
		}
	}

	out := make([]*big.Int, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sortAscending(out)
	return out, nil
}

// splitRecursive decomposes m (free of factors below trialBound) into primes
// using Miller-Rabin certification and Pollard's rho splitting.
func splitRecursive(m *big.Int, seen map[string]*big.Int) error {
	if m.ProbablyPrime(millerRabinRounds) {
		p := new(big.Int).Set(m)
		seen[p.String()] = p
		return nil
	}
	d, err := pollardRho(m)
	if err != nil {
		return err
	}
	other := new(big.Int).Div(m, d)
	if err := splitRecursive(d, seen); err != nil {
		return err
	}
	return splitRecursive(other, seen)
}

// pollardRho finds a nontrivial divisor of the odd composite m using Floyd
// cycle detection. The polynomial offset is bumped whenever a cycle
// degenerates, so the search is deterministic.
func pollardRho(m *big.Int) (*big.Int, error) {
	// Perfect squares defeat rho's cycle structure; peel them first.
	if s := new(big.Int).Sqrt(m); new(big.Int).Mul(s, s).Cmp(m) == 0 {
		return s, nil
	}
	g := new(big.Int)
	diff := new(big.Int)
	for c := int64(1); c < 64; c++ {
		offset := big.NewInt(c)
		x := big.NewInt(2)
		y := big.NewInt(2)
		g.SetInt64(1)
		for g.Cmp(one) == 0 {
			x.Mul(x, x).Add(x, offset).Mod(x, m)
			y.Mul(y, y).Add(y, offset).Mod(y, m)
			y.Mul(y, y).Add(y, offset).Mod(y, m)
			diff.Sub(x, y)
			if diff.Sign() == 0 {
				break // cycle closed without a factor, retry with new offset
			}
			g.GCD(nil, nil, diff.Abs(diff), m)
		}
		if g.Cmp(one) > 0 && g.Cmp(m) < 0 {
			return new(big.Int).Set(g), nil
		}
	}
	return nil, fmt.Errorf("factor: pollard rho failed to split %s", m.String())
}

func sortAscending(xs []*big.Int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j].Cmp(xs[j-1]) < 0; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
