// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/paulix/matrix"
)

// phasePowers[e] = i^e.
var phasePowers = [4]complex128{1, 1i, -1, -1i}

// Terms lists the coefficients of a natural-order decomposition (as left
// in m by DecomposeNatural) together with their labels, in row-major order.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPowerOfTwo.
// Complexity: O(4^n · n).
func Terms(m *matrix.Dense) ([]Term, error) {
	data, dim, n, err := prepare(opTerms, m)
	if err != nil {
		return nil, err
	}
	out := make([]Term, len(data))
	var i, j int
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			out[i*dim+j] = Term{Pauli: stringForIndex(uint64(i), uint64(j), n), Coeff: data[i*dim+j]}
		}
	}

	return out, nil
}

// TermsLexicographic lists the coefficients of a lexicographic
// decomposition (as left in m by DecomposeLexicographic): entry id of the
// result is LexString(id, n) with the coefficient at flat position id.
//
// Errors: same as Terms.
// Complexity: O(4^n · n).
func TermsLexicographic(m *matrix.Dense) ([]Term, error) {
	data, _, n, err := prepare(opTermsLexicographic, m)
	if err != nil {
		return nil, err
	}
	out := make([]Term, len(data))
	for id, c := range data {
		out[id] = Term{Pauli: lexString(uint64(id), n), Coeff: c}
	}

	return out, nil
}

// Sum builds Σ coeff·P over terms as a dense 2^n×2^n matrix.
//
// Every Pauli string is a signed permutation: in row a it has exactly one
// non-zero, at column b = a XOR x, with value i^phase · (−1)^popcount(z & b).
// Sum writes those entries directly instead of forming Kronecker products.
// Repeated labels accumulate.
//
// Errors: ErrQubitCount (n outside [0, MaxTableQubits]), ErrInvalidSymbol,
// ErrTermMismatch (a label whose length is not n).
// Complexity: O(len(terms) · 2^n) after an O(4^n) allocation.
func Sum(terms []Term, n int) (*matrix.Dense, error) {
	if err := validateQubits(n, MaxTableQubits); err != nil {
		return nil, pauliErrorf(opSum, err)
	}
	dim := 1 << n
	out, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, pauliErrorf(opSum, err)
	}
	data := out.Data()

	var a, b int
	var v complex128
	for k, t := range terms {
		if t.Pauli.Qubits() != n {
			return nil, pauliErrorf(opSum, fmt.Errorf("term %d %q has %d qubits, want %d: %w",
				k, t.Pauli, t.Pauli.Qubits(), n, ErrTermMismatch))
		}
		x, z, err := t.Pauli.Index()
		if err != nil {
			return nil, pauliErrorf(opSum, err)
		}
		if t.Coeff == 0 {
			continue
		}
		v = t.Coeff * phasePowers[phaseOf(uint64(x), uint64(z))]
		for a = 0; a < dim; a++ {
			b = a ^ x
			if bits.OnesCount(uint(z&b))&1 == 1 {
				data[a*dim+b] -= v
			} else {
				data[a*dim+b] += v
			}
		}
	}

	return out, nil
}
