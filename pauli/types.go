// SPDX-License-Identifier: MIT

package pauli

// MaxQubits bounds every index-level operation: natural indices are 32-bit
// halves of a 64-bit Morton word.
const MaxQubits = 32

// MaxTableQubits bounds AllStrings, which materializes 4^n labels.
const MaxTableQubits = 12

// Symbol is one single-qubit Pauli operator.
type Symbol byte

// The four single-qubit operators, as they appear in labels.
const (
	I Symbol = 'I'
	X Symbol = 'X'
	Y Symbol = 'Y'
	Z Symbol = 'Z'
)

// lexSymbols maps a base-4 lexicographic digit to its symbol.
const lexSymbols = "IXYZ"

// naturalSymbols maps the (x bit, z bit) pair at index x<<1|z to its symbol.
var naturalSymbols = [4]Symbol{I, Z, X, Y}

// bitsOf returns the (x, z) bits of a symbol.
func (s Symbol) bitsOf() (x, z uint, ok bool) {
	switch s {
	case I:
		return 0, 0, true
	case X:
		return 1, 0, true
	case Y:
		return 1, 1, true
	case Z:
		return 0, 1, true
	}

	return 0, 0, false
}

// String is an n-qubit Pauli label such as "XIZY"; the first character acts
// on the most significant qubit.
type String string

// Term pairs a Pauli label with its coefficient.
type Term struct {
	Pauli String
	Coeff complex128
}

// Symplectic holds the (x, z, phase) encoding of every coefficient of a
// natural-order decomposition.
//
// Rows are index-aligned with the coefficient buffer in row-major order:
// row p = i*2^n + j. X and Z are flat p*Qubits + k arrays (k in label
// order); Phase[p] is e in {0,1,2,3} with P = i^e · X^x Z^z, i.e. the number
// of Y factors mod 4.
type Symplectic struct {
	Qubits int
	X      []int8
	Z      []int8
	Phase  []int8
}

// Len returns the number of encoded strings (4^Qubits).
func (s *Symplectic) Len() int { return len(s.Phase) }

// Row returns the x and z bit vectors and the phase of row p.
// The slices alias the backing arrays.
func (s *Symplectic) Row(p int) (x, z []int8, phase int8) {
	lo, hi := p*s.Qubits, (p+1)*s.Qubits

	return s.X[lo:hi], s.Z[lo:hi], s.Phase[p]
}
