// SPDX-License-Identifier: MIT

package pauli

import "math/bits"

// XZPhaseForIndex returns the symplectic encoding of the natural-order
// label at (i, j): x[k] = 1 where character k is X or Y, z[k] = 1 where it
// is Z or Y, and phase = (number of Y) mod 4, so that
//
//	P(i, j) = i^phase · X^x Z^z.
//
// It agrees with StringForIndex character by character.
//
// Errors: ErrQubitCount, ErrOutOfRange.
// Complexity: O(n).
func XZPhaseForIndex(i, j, n int) (x, z []int8, phase int8, err error) {
	if err = validatePair(i, j, n); err != nil {
		return nil, nil, 0, pauliErrorf(opXZPhaseForIndex, err)
	}
	x = make([]int8, n)
	z = make([]int8, n)
	phase = encodeXZ(uint64(i), uint64(j), n, x, z)

	return x, z, phase, nil
}

// XZ returns the symplectic encoding of the label (see XZPhaseForIndex).
//
// Errors: ErrQubitCount, ErrInvalidSymbol.
// Complexity: O(n).
func (s String) XZ() (x, z []int8, phase int8, err error) {
	i, j, err := s.Index()
	if err != nil {
		return nil, nil, 0, err
	}
	x = make([]int8, len(s))
	z = make([]int8, len(s))
	phase = encodeXZ(uint64(i), uint64(j), len(s), x, z)

	return x, z, phase, nil
}

// encodeXZ fills x and z (length n, label order) from the row and column
// bits and returns the phase exponent.
func encodeXZ(i, j uint64, n int, x, z []int8) int8 {
	var bit uint64
	for k := 0; k < n; k++ {
		bit = uint64(n - 1 - k)
		x[k] = int8((i >> bit) & 1)
		z[k] = int8((j >> bit) & 1)
	}

	return phaseOf(i, j)
}

// phaseOf is the number of Y factors mod 4: popcount(i & j) & 3.
func phaseOf(i, j uint64) int8 {
	return int8(bits.OnesCount64(i&j) & 3)
}
