// SPDX-License-Identifier: MIT

package pauli_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for round trips of O(1) entries.
const tol = 1e-12

// randomMatrix returns a reproducible random 2^n×2^n complex matrix.
func randomMatrix(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m, err := matrix.Random(1<<n, 1<<n, newRand(seed, n))
	require.NoError(t, err)

	return m
}

// newRand returns a PCG source keyed by (seed, n).
func newRand(seed uint64, n int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(n)))
}

// lexEnumeration lists {I,X,Y,Z}^n alphabetically by plain recursion.
func lexEnumeration(n int) []string {
	out := []string{""}
	for q := 0; q < n; q++ {
		next := make([]string, 0, len(out)*4)
		for _, prefix := range out {
			for _, c := range "IXYZ" {
				next = append(next, prefix+string(c))
			}
		}
		out = next
	}

	return out
}
