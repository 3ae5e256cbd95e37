// SPDX-License-Identifier: MIT

// Package matrix provides the dense complex matrix used by the Pauli
// transforms.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix over one flat slice
//     (offset = i*cols + j), with bounds-checked At/Set and a finite-value
//     numeric policy.
//   - Wrap: adopt a caller-owned buffer without copying, so in-place
//     kernels mutate the caller's memory and never reallocate it.
//   - Validators: nil, square, same-shape and power-of-two checks that
//     return package sentinels (see errors.go).
//   - Small algebra used to build and compare Pauli operators: Add, Sub,
//     Scale, Mul, Kron, AllClose, Identity.
//   - Random and RandomHermitian: reproducible test inputs from a caller
//     supplied math/rand/v2 source.
//
// Errors are sentinels matched with errors.Is; no exported function panics
// on user input.
//
// Complexity quicksheet:
//   - NewDense/Clone: O(r*c); At/Set/Wrap: O(1); Mul: O(r*n*c);
//     Kron: O(ra*ca*rb*cb).
package matrix
