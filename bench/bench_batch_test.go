package bench

import (
	"math/big"
	"testing"

	"STARK-Field/poly"
)

func BenchmarkInvMany1024(b *testing.B) {
	f := benchField(b)
	values, err := f.Prng([]byte("bench-invmany"), 1024)
	if err != nil {
		b.Fatal(err)
	}
	// Replace any zero draw; InvMany rejects zeros.
	for i, v := range values {
		if v.Sign() == 0 {
			values[i] = big.NewInt(1)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.InvMany(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNaiveInv1024(b *testing.B) {
	f := benchField(b)
	values, err := f.Prng([]byte("bench-invmany"), 1024)
	if err != nil {
		b.Fatal(err)
	}
	for i, v := range values {
		if v.Sign() == 0 {
			values[i] = big.NewInt(1)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range values {
			if _, err := f.Inv(v); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPowerSeries4096(b *testing.B) {
	f := benchField(b)
	base := big.NewInt(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.PowerSeries(base, 4096)
	}
}

func BenchmarkInterpolateQuarticBatch256(b *testing.B) {
	f := benchField(b)
	const rows = 256
	flatX, err := f.Prng([]byte("bench-quartic-x"), 4*rows)
	if err != nil {
		b.Fatal(err)
	}
	flatY, err := f.Prng([]byte("bench-quartic-y"), 4*rows)
	if err != nil {
		b.Fatal(err)
	}
	xSets := make([][]*big.Int, rows)
	ySets := make([][]*big.Int, rows)
	for r := 0; r < rows; r++ {
		// Offset the x draws so each row is pairwise distinct.
		row := make([]*big.Int, 4)
		for i := 0; i < 4; i++ {
			row[i] = f.Add(flatX[4*r+i], big.NewInt(int64(i)))
		}
		if hasDup(row) {
			for i := 0; i < 4; i++ {
				row[i] = big.NewInt(int64(4*r + i + 1))
			}
		}
		xSets[r] = row
		ySets[r] = flatY[4*r : 4*r+4]
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := poly.InterpolateQuarticBatch(f, xSets, ySets); err != nil {
			b.Fatal(err)
		}
	}
}

func hasDup(row []*big.Int) bool {
	for i := 0; i < len(row); i++ {
		for j := i + 1; j < len(row); j++ {
			if row[i].Cmp(row[j]) == 0 {
				return true
			}
		}
	}
	return false
}
