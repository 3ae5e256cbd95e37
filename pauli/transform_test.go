// SPDX-License-Identifier: MIT

package pauli_test

import (
	"testing"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/katalvlaran/paulix/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecomposeNatural_OneQubit pins the butterfly on a 2×2 example:
// [[1,2],[3,4]] = 2.5·I − 1.5·Z + 2.5·X − 0.5i·Y.
func TestDecomposeNatural_OneQubit(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]complex128{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, pauli.DecomposeNatural(m))

	want := []complex128{2.5, -1.5, 2.5, -0.5i}
	for k, w := range want {
		assert.InDelta(t, real(w), real(m.Data()[k]), tol, "re[%d]", k)
		assert.InDelta(t, imag(w), imag(m.Data()[k]), tol, "im[%d]", k)
	}
}

// TestDecomposeNatural_ZeroQubits leaves a 1×1 matrix unchanged.
func TestDecomposeNatural_ZeroQubits(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]complex128{{5 - 2i}})
	require.NoError(t, err)
	require.NoError(t, pauli.DecomposeNatural(m))
	assert.Equal(t, []complex128{5 - 2i}, m.Data())
	require.NoError(t, pauli.ReconstructNatural(m))
	assert.Equal(t, []complex128{5 - 2i}, m.Data())
}

// TestDecomposeNatural_SinglePauli: the matrix of a label decomposes to a
// single unit coefficient at that label's position.
func TestDecomposeNatural_SinglePauli(t *testing.T) {
	for n := 1; n <= 3; n++ {
		table, err := pauli.AllStrings(n)
		require.NoError(t, err)
		dim := 1 << n
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				m, err := table[i][j].Matrix()
				require.NoError(t, err)
				require.NoError(t, pauli.DecomposeNatural(m))
				for p, c := range m.Data() {
					want := complex128(0)
					if p == i*dim+j {
						want = 1
					}
					assert.InDelta(t, real(want), real(c), tol, "%q at %d", table[i][j], p)
					assert.InDelta(t, imag(want), imag(c), tol, "%q at %d", table[i][j], p)
				}
			}
		}
	}
}

// TestRoundTrip_Natural: reconstruct(decompose(M)) == M for n = 0..6.
func TestRoundTrip_Natural(t *testing.T) {
	for n := 0; n <= 6; n++ {
		m := randomMatrix(t, n, 1)
		orig := m.CloneDense()
		require.NoError(t, pauli.DecomposeNatural(m))
		require.NoError(t, pauli.ReconstructNatural(m))
		ok, err := matrix.AllClose(m, orig, 0, tol)
		require.NoError(t, err)
		assert.True(t, ok, "natural round trip n=%d", n)
	}
}

// TestRoundTrip_Lexicographic: same property through the lexicographic pair.
func TestRoundTrip_Lexicographic(t *testing.T) {
	for n := 0; n <= 6; n++ {
		m := randomMatrix(t, n, 2)
		orig := m.CloneDense()
		require.NoError(t, pauli.DecomposeLexicographic(m))
		require.NoError(t, pauli.ReconstructLexicographic(m))
		ok, err := matrix.AllClose(m, orig, 0, tol)
		require.NoError(t, err)
		assert.True(t, ok, "lexicographic round trip n=%d", n)
	}
}

// TestBasisCompleteness_Kron: Σ c·P rebuilt with Kronecker products
// equals the input.
func TestBasisCompleteness_Kron(t *testing.T) {
	for n := 0; n <= 4; n++ {
		m := randomMatrix(t, n, 3)
		coeffs := m.CloneDense()
		require.NoError(t, pauli.DecomposeNatural(coeffs))
		terms, err := pauli.Terms(coeffs)
		require.NoError(t, err)

		sum, err := matrix.NewDense(1<<n, 1<<n)
		require.NoError(t, err)
		for _, term := range terms {
			p, err := term.Pauli.Matrix()
			require.NoError(t, err)
			scaled, err := matrix.Scale(p, term.Coeff)
			require.NoError(t, err)
			sum, err = matrix.Add(sum, scaled)
			require.NoError(t, err)
		}
		ok, err := matrix.AllClose(sum, m, 0, 1e-10)
		require.NoError(t, err)
		assert.True(t, ok, "Kronecker sum n=%d", n)
	}
}

// TestBasisCompleteness_Sum checks the same property through Sum for n ≤ 6.
func TestBasisCompleteness_Sum(t *testing.T) {
	for n := 0; n <= 6; n++ {
		m := randomMatrix(t, n, 4)
		coeffs := m.CloneDense()
		require.NoError(t, pauli.DecomposeNatural(coeffs))
		terms, err := pauli.Terms(coeffs)
		require.NoError(t, err)
		sum, err := pauli.Sum(terms, n)
		require.NoError(t, err)
		ok, err := matrix.AllClose(sum, m, 0, 1e-10)
		require.NoError(t, err)
		assert.True(t, ok, "Sum n=%d", n)
	}
}

// TestDecomposeLexicographic_Consistency: lexicographic position id holds
// exactly the natural coefficient at LexToNatural(id).
func TestDecomposeLexicographic_Consistency(t *testing.T) {
	for n := 0; n <= 5; n++ {
		nat := randomMatrix(t, n, 5)
		lex := nat.CloneDense()
		require.NoError(t, pauli.DecomposeNatural(nat))
		require.NoError(t, pauli.DecomposeLexicographic(lex))
		dim := 1 << n
		for id, c := range lex.Data() {
			i, j, err := pauli.LexToNatural(uint64(id), n)
			require.NoError(t, err)
			assert.Equal(t, nat.Data()[i*dim+j], c, "n=%d id=%d", n, id)
		}
	}
}

// TestDecomposeXZPhase checks coefficients and encoding rows.
func TestDecomposeXZPhase(t *testing.T) {
	for n := 0; n <= 4; n++ {
		nat := randomMatrix(t, n, 6)
		m := nat.CloneDense()
		require.NoError(t, pauli.DecomposeNatural(nat))
		enc, err := pauli.DecomposeXZPhase(m)
		require.NoError(t, err)
		assert.Equal(t, nat.Data(), m.Data(), "coefficients n=%d", n)

		dim := 1 << n
		require.Equal(t, dim*dim, enc.Len())
		require.Equal(t, n, enc.Qubits)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				wx, wz, wp, err := pauli.XZPhaseForIndex(i, j, n)
				require.NoError(t, err)
				x, z, phase := enc.Row(i*dim + j)
				assert.Equal(t, wx, x)
				assert.Equal(t, wz, z)
				assert.Equal(t, wp, phase)
			}
		}
	}
}

// TestDecompose_HermitianIsReal: Hermitian input has real coefficients.
func TestDecompose_HermitianIsReal(t *testing.T) {
	for n := 1; n <= 5; n++ {
		m, err := matrix.RandomHermitian(1<<n, newRand(7, n))
		require.NoError(t, err)
		require.NoError(t, pauli.DecomposeNatural(m))
		for p, c := range m.Data() {
			assert.InDelta(t, 0, imag(c), tol, "n=%d p=%d", n, p)
		}
	}
}

// TestDecompose_Wrap writes through to the caller's slice.
func TestDecompose_Wrap(t *testing.T) {
	buf := []complex128{1, 2, 3, 4}
	m, err := matrix.Wrap(2, 2, buf)
	require.NoError(t, err)
	require.NoError(t, pauli.DecomposeNatural(m))
	assert.InDelta(t, 2.5, real(buf[0]), tol)
	assert.InDelta(t, -0.5, imag(buf[3]), tol)
}

// TestDecompose_ValidationLeavesBufferUntouched covers every entry point.
func TestDecompose_ValidationLeavesBufferUntouched(t *testing.T) {
	entries := map[string]func(*matrix.Dense) error{
		"DecomposeNatural":         func(m *matrix.Dense) error { return pauli.DecomposeNatural(m) },
		"DecomposeLexicographic":   func(m *matrix.Dense) error { return pauli.DecomposeLexicographic(m) },
		"ReconstructNatural":       func(m *matrix.Dense) error { return pauli.ReconstructNatural(m) },
		"ReconstructLexicographic": func(m *matrix.Dense) error { return pauli.ReconstructLexicographic(m) },
		"DecomposeXZPhase": func(m *matrix.Dense) error {
			_, err := pauli.DecomposeXZPhase(m)

			return err
		},
	}
	for name, fn := range entries {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, fn(nil), matrix.ErrNilMatrix)

			rect, err := matrix.Wrap(2, 4, []complex128{1, 2, 3, 4, 5, 6, 7, 8})
			require.NoError(t, err)
			assert.ErrorIs(t, fn(rect), matrix.ErrNonSquare)
			assert.Equal(t, []complex128{1, 2, 3, 4, 5, 6, 7, 8}, rect.Data())

			three, err := matrix.NewDenseFromRows([][]complex128{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
			require.NoError(t, err)
			assert.ErrorIs(t, fn(three), matrix.ErrNotPowerOfTwo)
			assert.Equal(t, []complex128{1, 2, 3, 4, 5, 6, 7, 8, 9}, three.Data())
		})
	}
}

// TestParallel_MatchesSequential: fan-out never changes a single bit.
func TestParallel_MatchesSequential(t *testing.T) {
	par := []pauli.Option{pauli.WithWorkers(4), pauli.WithParallelThreshold(2)}
	for n := 0; n <= 7; n++ {
		seq := randomMatrix(t, n, 8)
		orig := seq.CloneDense()
		p := seq.CloneDense()

		require.NoError(t, pauli.DecomposeNatural(seq))
		require.NoError(t, pauli.DecomposeNatural(p, par...))
		assert.Equal(t, seq.Data(), p.Data(), "forward n=%d", n)

		require.NoError(t, pauli.ReconstructNatural(seq))
		require.NoError(t, pauli.ReconstructNatural(p, par...))
		assert.Equal(t, seq.Data(), p.Data(), "inverse n=%d", n)

		lex := orig.CloneDense()
		plex := orig.CloneDense()
		require.NoError(t, pauli.DecomposeLexicographic(lex))
		require.NoError(t, pauli.DecomposeLexicographic(plex, pauli.WithParallel(), pauli.WithParallelThreshold(4)))
		assert.Equal(t, lex.Data(), plex.Data(), "lexicographic n=%d", n)
	}
}
