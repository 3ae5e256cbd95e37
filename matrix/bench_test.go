// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/paulix/matrix"
)

// BenchmarkKron measures a 16×16 ⊗ 16×16 product.
func BenchmarkKron(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	x, _ := matrix.Random(16, 16, rng)
	y, _ := matrix.Random(16, 16, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Kron(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMul measures a 64×64 product.
func BenchmarkMul(b *testing.B) {
	rng := rand.New(rand.NewPCG(2, 2))
	x, _ := matrix.Random(64, 64, rng)
	y, _ := matrix.Random(64, 64, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
