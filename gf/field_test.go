package gf

import (
	"errors"
	"math/big"
	"testing"
)

// goldilocks is 2^64 - 2^32 + 1, an FFT-friendly prime with
// p-1 = 2^32 * 3 * 5 * 17 * 257 * 65537.
const goldilocks = "18446744069414584321"

func newTestField(t *testing.T, dec string) *PrimeField {
	t.Helper()
	p, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		t.Fatalf("bad modulus literal %q", dec)
	}
	f, err := NewPrimeField(p)
	if err != nil {
		t.Fatalf("NewPrimeField(%s): %v", dec, err)
	}
	return f
}

func TestModCanonicalRange(t *testing.T) {
	f := newTestField(t, "337")
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{336, 336},
		{337, 0},
		{500, 163},
		{-1, 336},
		{-337, 0},
		{-500, 174},
	}
	for _, c := range cases {
		got := f.Mod(big.NewInt(c.in))
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Fatalf("Mod(%d) = %s, want %d", c.in, got.String(), c.want)
		}
	}
}

func TestAddSubAdditiveInverse(t *testing.T) {
	f := newTestField(t, goldilocks)
	zero := new(big.Int)
	for _, v := range []int64{0, 1, 2, 336, 99999} {
		x := big.NewInt(v)
		neg := f.Sub(zero, x)
		if got := f.Add(x, neg); got.Sign() != 0 {
			t.Fatalf("x + (0 - x) = %s for x=%d, want 0", got.String(), v)
		}
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	f := newTestField(t, "337")
	for x := int64(0); x < 30; x++ {
		for y := int64(1); y < 30; y++ {
			prod := f.Mul(big.NewInt(x), big.NewInt(y))
			got, err := f.Div(prod, big.NewInt(y))
			if err != nil {
				t.Fatalf("Div(%s, %d): %v", prod.String(), y, err)
			}
			if got.Cmp(big.NewInt(x)) != 0 {
				t.Fatalf("Div(Mul(%d,%d), %d) = %s, want %d", x, y, y, got.String(), x)
			}
		}
	}
}

func TestInvProperties(t *testing.T) {
	f := newTestField(t, goldilocks)
	one := big.NewInt(1)
	for _, v := range []int64{1, 2, 3, 65537, 1 << 40} {
		x := big.NewInt(v)
		inv, err := f.Inv(x)
		if err != nil {
			t.Fatalf("Inv(%d): %v", v, err)
		}
		if got := f.Mul(x, inv); got.Cmp(one) != 0 {
			t.Fatalf("x * Inv(x) = %s for x=%d, want 1", got.String(), v)
		}
		// Determinism: same input, same output.
		again, err := f.Inv(x)
		if err != nil {
			t.Fatalf("Inv(%d) second call: %v", v, err)
		}
		if again.Cmp(inv) != 0 {
			t.Fatalf("Inv(%d) not deterministic: %s vs %s", v, inv.String(), again.String())
		}
	}
}

func TestInvZeroFails(t *testing.T) {
	f := newTestField(t, "337")
	if _, err := f.Inv(new(big.Int)); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Inv(0) error = %v, want ErrNotInvertible", err)
	}
	// Multiples of p are congruent to zero.
	if _, err := f.Inv(big.NewInt(337 * 4)); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Inv(4p) error = %v, want ErrNotInvertible", err)
	}
}

func TestDivByZeroFails(t *testing.T) {
	f := newTestField(t, "337")
	if _, err := f.Div(big.NewInt(5), new(big.Int)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Div(5, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestExp(t *testing.T) {
	f := newTestField(t, "337")
	cases := []struct {
		b, e, want int64
	}{
		{2, 0, 1},
		{2, 5, 32},
		{0, 0, 1},
		{0, 5, 0},
		{3, 336, 1}, // Fermat
		{10, 10, 170},
	}
	for _, c := range cases {
		got, err := f.Exp(big.NewInt(c.b), big.NewInt(c.e))
		if err != nil {
			t.Fatalf("Exp(%d, %d): %v", c.b, c.e, err)
		}
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Fatalf("Exp(%d, %d) = %s, want %d", c.b, c.e, got.String(), c.want)
		}
	}
}

func TestExpNegativeExponent(t *testing.T) {
	f := newTestField(t, "337")
	x := big.NewInt(5)
	inv, err := f.Inv(x)
	if err != nil {
		t.Fatal(err)
	}
	got, err := f.Exp(x, big.NewInt(-1))
	if err != nil {
		t.Fatalf("Exp(5, -1): %v", err)
	}
	if got.Cmp(inv) != 0 {
		t.Fatalf("Exp(5, -1) = %s, want Inv(5) = %s", got.String(), inv.String())
	}
	if _, err := f.Exp(new(big.Int), big.NewInt(-2)); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Exp(0, -2) error = %v, want ErrNotInvertible", err)
	}
}

func TestAttributes(t *testing.T) {
	small := newTestField(t, "337")
	if small.ExtensionDegree() != 1 {
		t.Fatalf("ExtensionDegree = %d, want 1", small.ExtensionDegree())
	}
	if small.ElementSize() != 2 {
		t.Fatalf("ElementSize(337) = %d, want 2", small.ElementSize())
	}
	big64 := newTestField(t, goldilocks)
	if big64.ElementSize() != 8 {
		t.Fatalf("ElementSize(goldilocks) = %d, want 8", big64.ElementSize())
	}

	// The returned characteristic is a copy; mutating it must not corrupt
	// the engine.
	ch := small.Characteristic()
	ch.SetInt64(7)
	if small.Characteristic().Cmp(big.NewInt(337)) != 0 {
		t.Fatal("Characteristic() aliases internal modulus")
	}
}

func TestConstructorRejectsBadModulus(t *testing.T) {
	if _, err := NewPrimeField(big.NewInt(2)); err == nil {
		t.Fatal("NewPrimeField(2) should fail")
	}
	if _, err := NewPrimeField(big.NewInt(338)); err == nil {
		t.Fatal("NewPrimeField(even) should fail")
	}
	if _, err := NewPrimeFieldChecked(big.NewInt(341)); err == nil {
		t.Fatal("NewPrimeFieldChecked(341 = 11*31) should fail")
	}
	if _, err := NewPrimeFieldChecked(big.NewInt(337)); err != nil {
		t.Fatalf("NewPrimeFieldChecked(337): %v", err)
	}
}
