// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandom_Reproducible: the same seed yields the same matrix.
func TestRandom_Reproducible(t *testing.T) {
	a, err := matrix.Random(4, 4, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b, err := matrix.Random(4, 4, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())

	for _, v := range a.Data() {
		assert.True(t, real(v) >= -1 && real(v) < 1)
		assert.True(t, imag(v) >= -1 && imag(v) < 1)
	}
}

// TestRandomHermitian: m[i][j] == conj(m[j][i]).
func TestRandomHermitian(t *testing.T) {
	const n = 5
	m, err := matrix.RandomHermitian(n, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	d := m.Data()
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, imag(d[i*n+i]))
		for j := 0; j < n; j++ {
			assert.Equal(t, real(d[i*n+j]), real(d[j*n+i]))
			assert.Equal(t, imag(d[i*n+j]), -imag(d[j*n+i]))
		}
	}

	_, err = matrix.RandomHermitian(0, rand.New(rand.NewPCG(0, 0)))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
