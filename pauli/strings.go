// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"

	"github.com/katalvlaran/paulix/matrix"
)

// validateQubits checks 0 ≤ n ≤ limit.
func validateQubits(n, limit int) error {
	if n < 0 || n > limit {
		return fmt.Errorf("n=%d (max %d): %w", n, limit, ErrQubitCount)
	}

	return nil
}

// validatePair checks 0 ≤ n ≤ MaxQubits and 0 ≤ i, j < 2^n.
func validatePair(i, j, n int) error {
	if err := validateQubits(n, MaxQubits); err != nil {
		return err
	}
	dim := uint64(1) << n
	if i < 0 || j < 0 || uint64(i) >= dim || uint64(j) >= dim {
		return fmt.Errorf("(%d,%d) with n=%d: %w", i, j, n, ErrOutOfRange)
	}

	return nil
}

// StringForIndex returns the label of the natural-order coefficient at
// row i, column j of an n-qubit decomposition.
//
// For each qubit k, from the most significant bit down, the pair
// (bit of i, bit of j) selects I, Z, X or Y (see the package doc).
//
// Errors: ErrQubitCount, ErrOutOfRange.
// Complexity: O(n), one allocation for the label.
func StringForIndex(i, j, n int) (String, error) {
	if err := validatePair(i, j, n); err != nil {
		return "", pauliErrorf(opStringForIndex, err)
	}

	return stringForIndex(uint64(i), uint64(j), n), nil
}

// stringForIndex is StringForIndex without validation.
func stringForIndex(i, j uint64, n int) String {
	buf := make([]byte, n)
	var bit uint64
	for k := 0; k < n; k++ {
		bit = uint64(n - 1 - k)
		buf[k] = byte(naturalSymbols[((i>>bit)&1)<<1|(j>>bit)&1])
	}

	return String(buf)
}

// AllStrings returns the 2^n×2^n table of natural-order labels:
// AllStrings(n)[i][j] == StringForIndex(i, j, n).
//
// Implementation:
//   - Stage 1: start from the 0-qubit table [[""]].
//   - Stage 2: for q = 1..n, place four copies of the (q−1)-qubit table at
//     the quadrant offsets of a 2^q table, prefixing I (top-left),
//     Z (top-right), X (bottom-left) and Y (bottom-right).
//
// The rows of each level share one flat backing slice.
//
// Errors: ErrQubitCount (n < 0 or n > MaxTableQubits).
// Complexity: O(4^n · n) time and label bytes.
func AllStrings(n int) ([][]String, error) {
	if err := validateQubits(n, MaxTableQubits); err != nil {
		return nil, pauliErrorf(opAllStrings, err)
	}

	table := [][]String{{""}}
	var prefix [4]string
	for idx, s := range naturalSymbols {
		prefix[idx] = string(rune(s))
	}
	for q := 1; q <= n; q++ {
		half := len(table)
		dim := half << 1
		flat := make([]String, dim*dim)
		next := make([][]String, dim)
		for r := range next {
			next[r] = flat[r*dim : (r+1)*dim]
		}
		for r := 0; r < half; r++ {
			for c := 0; c < half; c++ {
				s := string(table[r][c])
				next[r][c] = String(prefix[0] + s)
				next[r][half+c] = String(prefix[1] + s)
				next[half+r][c] = String(prefix[2] + s)
				next[half+r][half+c] = String(prefix[3] + s)
			}
		}
		table = next
	}

	return table, nil
}

// LexString returns the id-th label in alphabetical order of {I,X,Y,Z}^n,
// i.e. id written in base 4 with digits I=0, X=1, Y=2, Z=3, most
// significant digit first.
//
// Errors: ErrQubitCount, ErrOutOfRange (id ≥ 4^n).
// Complexity: O(n).
func LexString(id uint64, n int) (String, error) {
	if err := validateLexID(id, n); err != nil {
		return "", pauliErrorf(opLexString, err)
	}

	return lexString(id, n), nil
}

// lexString is LexString without validation.
func lexString(id uint64, n int) String {
	buf := make([]byte, n)
	for k := 0; k < n; k++ {
		buf[k] = lexSymbols[(id>>(2*uint(n-1-k)))&3]
	}

	return String(buf)
}

// ParseString validates s as a Pauli label.
//
// Errors: ErrQubitCount (len(s) > MaxQubits), ErrInvalidSymbol.
// Complexity: O(len(s)).
func ParseString(s string) (String, error) {
	if err := validateQubits(len(s), MaxQubits); err != nil {
		return "", pauliErrorf(opParseString, err)
	}
	for k := 0; k < len(s); k++ {
		if _, _, ok := Symbol(s[k]).bitsOf(); !ok {
			return "", pauliErrorf(opParseString, fmt.Errorf("%q at %d: %w", s[k], k, ErrInvalidSymbol))
		}
	}

	return String(s), nil
}

// String implements fmt.Stringer.
func (s String) String() string { return string(s) }

// Qubits returns the number of qubits the label acts on.
func (s String) Qubits() int { return len(s) }

// Index returns the natural-order position (row, column) of the label;
// it is the inverse of StringForIndex.
//
// Errors: ErrQubitCount, ErrInvalidSymbol.
// Complexity: O(n).
func (s String) Index() (i, j int, err error) {
	if _, err = ParseString(string(s)); err != nil {
		return 0, 0, err
	}
	var ui, uj uint64
	for k := 0; k < len(s); k++ {
		x, z, _ := Symbol(s[k]).bitsOf()
		ui = ui<<1 | uint64(x)
		uj = uj<<1 | uint64(z)
	}

	return int(ui), int(uj), nil
}

// single returns the 2×2 matrix of one symbol.
func single(sym Symbol) [][]complex128 {
	switch sym {
	case X:
		return [][]complex128{{0, 1}, {1, 0}}
	case Y:
		return [][]complex128{{0, -1i}, {1i, 0}}
	case Z:
		return [][]complex128{{1, 0}, {0, -1}}
	}

	return [][]complex128{{1, 0}, {0, 1}}
}

// Matrix returns the dense 2^n×2^n operator of the label, built as the
// Kronecker product of its factors (first character outermost).
// The empty label is the 1×1 matrix [1].
//
// Errors: ErrQubitCount, ErrInvalidSymbol.
// Complexity: O(4^n) time and space.
func (s String) Matrix() (*matrix.Dense, error) {
	if _, err := ParseString(string(s)); err != nil {
		return nil, err
	}
	out, err := matrix.Identity(1)
	if err != nil {
		return nil, err
	}
	for k := 0; k < len(s); k++ {
		factor, err := matrix.NewDenseFromRows(single(Symbol(s[k])))
		if err != nil {
			return nil, err
		}
		if out, err = matrix.Kron(out, factor); err != nil {
			return nil, err
		}
	}

	return out, nil
}
