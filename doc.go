// SPDX-License-Identifier: MIT

// Package paulix decomposes dense complex matrices into Pauli strings and
// rebuilds them, exactly and in place.
//
// An N×N matrix with N = 2^n is a unique complex combination of the 4^n
// n-qubit Pauli strings (tensor products of I, X, Y, Z). The Fast Pauli
// Transform computes all 4^n coefficients in O(N² log N) with a quadrant
// butterfly and no extra memory; its inverse rebuilds the matrix.
//
// Everything is organized under three packages and one command:
//
//	interleave/        — Morton-style bit interleaving of two 32-bit halves
//	matrix/            — row-major complex128 Dense, validators, Kron/Mul/AllClose
//	pauli/             — labels, symplectic encoding, natural ⇄ lexicographic
//	                     order, the transforms and their parallel scheduler
//	cmd/paulidecomp/   — CLI over JSON documents (decompose, reconstruct, strings, lex)
//
// Quick example (one qubit, natural order [[I Z] [X Y]]):
//
//	[[1, 2], [3, 4]]  →  2.5·I − 1.5·Z + 2.5·X − 0.5i·Y
//
//	go get github.com/katalvlaran/paulix/pauli
package paulix
