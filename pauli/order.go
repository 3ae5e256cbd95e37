// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"

	"github.com/katalvlaran/paulix/interleave"
)

// validateLexID checks 0 ≤ n ≤ MaxQubits and id < 4^n.
func validateLexID(id uint64, n int) error {
	if err := validateQubits(n, MaxQubits); err != nil {
		return err
	}
	// 4^32 overflows uint64; every id is valid there.
	if n < MaxQubits && id >= uint64(1)<<(2*uint(n)) {
		return fmt.Errorf("id=%d with n=%d: %w", id, n, ErrOutOfRange)
	}

	return nil
}

// LexToNatural maps the id-th string in lexicographic order to its
// natural-order position (i, j).
//
// The id is deinterleaved into (i', j') (even bits, odd bits) and
// (i, j) = (i' XOR j', j'). This is the single definition of the relation
// between the two orders; every permutation in this package goes through
// lexToNatural / naturalToLex.
//
// Errors: ErrQubitCount, ErrOutOfRange.
// Complexity: O(1).
func LexToNatural(id uint64, n int) (i, j int, err error) {
	if err = validateLexID(id, n); err != nil {
		return 0, 0, pauliErrorf(opLexToNatural, err)
	}
	ui, uj := lexToNatural(id)

	return int(ui), int(uj), nil
}

// NaturalToLex is the inverse of LexToNatural: Interleave(i XOR j, j).
//
// Errors: ErrQubitCount, ErrOutOfRange.
// Complexity: O(1).
func NaturalToLex(i, j, n int) (uint64, error) {
	if err := validatePair(i, j, n); err != nil {
		return 0, pauliErrorf(opNaturalToLex, err)
	}

	return naturalToLex(uint32(i), uint32(j)), nil
}

// lexToNatural is LexToNatural without validation.
func lexToNatural(id uint64) (i, j uint32) {
	lo, hi := interleave.Deinterleave(id)

	return lo ^ hi, hi
}

// naturalToLex is NaturalToLex without validation.
func naturalToLex(i, j uint32) uint64 {
	return interleave.Interleave(i^j, j)
}
