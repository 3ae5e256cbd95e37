// SPDX-License-Identifier: MIT

package interleave

// Masks for the spread/compact cascades. Step k keeps blocks of 2^k bits
// separated by 2^k zero bits.
const (
	mask16 uint64 = 0x0000ffff0000ffff
	mask8  uint64 = 0x00ff00ff00ff00ff
	mask4  uint64 = 0x0f0f0f0f0f0f0f0f
	mask2  uint64 = 0x3333333333333333
	mask1  uint64 = 0x5555555555555555
	mask32 uint64 = 0x00000000ffffffff
)

// Spread moves bit k of v to bit 2k of the result; odd bits are zero.
// Complexity: O(1).
func Spread(v uint32) uint64 {
	w := uint64(v)
	w = (w ^ (w << 16)) & mask16
	w = (w ^ (w << 8)) & mask8
	w = (w ^ (w << 4)) & mask4
	w = (w ^ (w << 2)) & mask2
	w = (w ^ (w << 1)) & mask1

	return w
}

// Compact gathers the even bits of w (bit 2k → bit k). Odd bits are ignored.
// Compact(Spread(v)) == v for every v.
// Complexity: O(1).
func Compact(w uint64) uint32 {
	w &= mask1
	w = (w ^ (w >> 1)) & mask2
	w = (w ^ (w >> 2)) & mask4
	w = (w ^ (w >> 4)) & mask8
	w = (w ^ (w >> 8)) & mask16
	w = (w ^ (w >> 16)) & mask32

	return uint32(w)
}

// Interleave returns the Morton word with lo on even bits and hi on odd bits.
// Complexity: O(1).
func Interleave(lo, hi uint32) uint64 {
	return Spread(lo) | Spread(hi)<<1
}

// Deinterleave is the exact inverse of Interleave.
// Complexity: O(1).
func Deinterleave(w uint64) (lo, hi uint32) {
	return Compact(w), Compact(w >> 1)
}
