// SPDX-License-Identifier: MIT

// Package interleave packs two 32-bit integers into one 64-bit Morton word
// and back.
//
// The low operand occupies the even bit positions of the word and the high
// operand the odd positions:
//
//	lo = l3 l2 l1 l0
//	hi = h3 h2 h1 h0
//	Interleave(lo, hi) = h3 l3 h2 l2 h1 l1 h0 l0
//
// Spreading and compacting use masked shift-xor cascades (five steps for a
// 32-bit half) instead of per-bit loops, so every function is O(1),
// branch free and allocation free.
//
// Widths are fixed by the types: halves are uint32 and words are uint64, so
// there is no out-of-range input to reject. Callers narrowing from int must
// check the value fits in 32 bits first.
//
// The pauli package uses these helpers to map a natural-order coefficient
// position (i, j) to its lexicographic id and back.
package interleave
