// SPDX-License-Identifier: MIT

package matrix

import "math/rand/v2"

// Random returns a rows×cols matrix whose real and imaginary parts are
// drawn uniformly from [-1, 1) using rng.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(rows*cols).
func Random(rows, cols int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return m, nil
}

// RandomHermitian returns an n×n Hermitian matrix (m[i][j] == conj(m[j][i]))
// with entries drawn as in Random; the diagonal is real.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(n^2).
func RandomHermitian(n int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v complex128
	for i := 0; i < n; i++ {
		m.data[i*n+i] = complex(2*rng.Float64()-1, 0)
		for j := i + 1; j < n; j++ {
			v = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
			m.data[i*n+j] = v
			m.data[j*n+i] = complex(real(v), -imag(v))
		}
	}

	return m, nil
}
