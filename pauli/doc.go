// SPDX-License-Identifier: MIT

// Package pauli decomposes dense 2^n×2^n complex matrices into Pauli-string
// coefficients and reconstructs them, in place.
//
// 🚀 What is a Pauli decomposition?
//
//	Every N×N complex matrix M (N = 2^n) is a unique linear combination of
//	the 4^n Pauli strings, n-fold tensor products of
//
//	  I = [[1,0],[0,1]]   X = [[0,1],[1,0]]
//	  Y = [[0,-i],[i,0]]  Z = [[1,0],[0,-1]]
//
//	  M = Σ coeff[i,j] · P(i,j)
//
// ✨ Key features:
//   - DecomposeNatural / ReconstructNatural: in-place fast transform,
//     O(N² log N) time, O(1) extra memory.
//   - DecomposeLexicographic: coefficients ordered II, IX, IY, IZ, XI, ...
//     (costs one auxiliary N×N buffer).
//   - DecomposeXZPhase: symplectic (x, z, phase) encoding next to each
//     coefficient.
//   - StringForIndex / AllStrings / LexString / LexToNatural / NaturalToLex:
//     labels and index maps without running a transform.
//   - Optional quadrant parallelism (WithWorkers), bit-identical to the
//     sequential path.
//
// Natural order:
//
//	The coefficient at row i, column j belongs to the string whose k-th
//	character (k = 0 is the most significant bit) is chosen by the bit
//	pair (row bit, column bit):
//
//	  (0,0) → I   (0,1) → Z
//	  (1,0) → X   (1,1) → Y
//
//	so the row index holds the X bits and the column index the Z bits.
//	For one qubit: AllStrings(1) = [[I Z] [X Y]].
//
// Lexicographic order:
//
//	id = Interleave(i XOR j, j) with I=0, X=1, Y=2, Z=3 as base-4 digits.
//	LexToNatural is the only place that inverts it.
//
// Errors:
//
//	Invalid input is reported before any write: a failed call leaves the
//	buffer untouched. Transform errors match the matrix sentinels
//	(matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPowerOfTwo);
//	label and index errors match ErrQubitCount, ErrOutOfRange and
//	ErrInvalidSymbol.
//
// Usage:
//
//	m, _ := matrix.Wrap(4, 4, buf) // caller-owned buffer
//	if err := pauli.DecomposeNatural(m); err != nil { ... }
//	label, _ := pauli.StringForIndex(2, 1, 2) // "XZ"
package pauli
