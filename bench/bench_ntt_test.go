package bench

import (
	"math/big"
	"testing"

	"STARK-Field/gf"
	"STARK-Field/poly"
)

func benchField(b *testing.B) *gf.PrimeField {
	b.Helper()
	p, _ := new(big.Int).SetString("18446744069414584321", 10)
	f, err := gf.NewPrimeField(p)
	if err != nil {
		b.Fatal(err)
	}
	return f
}

func benchDomain(b *testing.B, f *gf.PrimeField, k uint64) []*big.Int {
	b.Helper()
	r, err := f.RootOfUnity(k)
	if err != nil {
		b.Fatal(err)
	}
	cycle, err := f.PowerCycle(r)
	if err != nil {
		b.Fatal(err)
	}
	return cycle
}

func BenchmarkEvalAtRoots1024(b *testing.B) {
	f := benchField(b)
	roots := benchDomain(b, f, 1024)
	coeffs, err := f.Prng([]byte("bench-eval"), 1024)
	if err != nil {
		b.Fatal(err)
	}
	p := poly.Poly(coeffs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.EvalAtRoots(f, p, roots); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpolateRoots1024(b *testing.B) {
	f := benchField(b)
	roots := benchDomain(b, f, 1024)
	coeffs, err := f.Prng([]byte("bench-interp"), 1024)
	if err != nil {
		b.Fatal(err)
	}
	values, err := poly.EvalAtRoots(f, poly.Poly(coeffs), roots)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.InterpolateRoots(f, roots, values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLagrange64(b *testing.B) {
	f := benchField(b)
	xs, err := f.Prng([]byte("bench-lagrange-xs"), 64)
	if err != nil {
		b.Fatal(err)
	}
	ys, err := f.Prng([]byte("bench-lagrange-ys"), 64)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.Interpolate(f, xs, ys); err != nil {
			b.Fatal(err)
		}
	}
}
