// SPDX-License-Identifier: MIT

// Package pauli - Fast Pauli Transform kernels.
//
// Algorithm outline (forward, one level):
//
//	Split a block of dimension 2h into quadrants
//
//	  [ A  B ]
//	  [ C  D ]
//
//	Writing the block as I⊗P_I + X⊗P_X + Y⊗P_Y + Z⊗P_Z gives
//	A = P_I + P_Z, D = P_I − P_Z, B = P_X − i·P_Y, C = P_X + i·P_Y, so
//
//	  A ← (A + D)/2      (I)
//	  B ← (A − D)/2      (Z)
//	  C ← (B + C)/2      (X)
//	  D ← i·(B − C)/2    (Y)
//
//	and each quadrant is then decomposed for the remaining qubits. The
//	resulting layout is the natural order by construction: the row bit of
//	each level is the X bit and the column bit the Z bit.
//
// The inverse undoes the levels leaves first:
//
//	A ← a + b,  D ← a − b,  B ← c − i·d,  C ← c + i·d.
//
// Passes are loops over the flat row-major buffer with explicit offsets;
// there is no allocation and no recursion on the sequential path.
//
// Complexity: O(N² log N) flops, O(1) extra memory (O(N²) for the
// lexicographic variants).

package pauli

import (
	"fmt"

	"github.com/katalvlaran/paulix/matrix"
)

// prepare validates m and returns its buffer, dimension and qubit count.
// It never writes to m.
func prepare(tag string, m *matrix.Dense) (data []complex128, dim, n int, err error) {
	if n, err = matrix.ValidatePowerOfTwo(m); err != nil {
		return nil, 0, 0, pauliErrorf(tag, err)
	}
	if n > MaxQubits {
		return nil, 0, 0, pauliErrorf(tag, fmt.Errorf("n=%d: %w", n, ErrQubitCount))
	}

	return m.Data(), m.Rows(), n, nil
}

// DecomposeNatural overwrites m with its Pauli coefficients in natural
// order: afterwards m[i][j] is the coefficient of StringForIndex(i, j, n).
//
// Errors (nothing is written on error):
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPowerOfTwo.
//
// Complexity: O(N² log N) time, O(1) extra space.
func DecomposeNatural(m *matrix.Dense, opts ...Option) error {
	data, dim, _, err := prepare(opDecomposeNatural, m)
	if err != nil {
		return err
	}
	forwardBlock(data, dim, 0, dim, newScheduler(gatherOptions(opts...)))

	return nil
}

// ReconstructNatural is the inverse of DecomposeNatural: it overwrites the
// natural-order coefficients in m with the matrix they describe.
//
// Errors: same as DecomposeNatural; nothing is written on error.
// Complexity: O(N² log N) time, O(1) extra space.
func ReconstructNatural(m *matrix.Dense, opts ...Option) error {
	data, dim, _, err := prepare(opReconstructNatural, m)
	if err != nil {
		return err
	}
	inverseBlock(data, dim, 0, dim, newScheduler(gatherOptions(opts...)))

	return nil
}

// DecomposeLexicographic overwrites m with its Pauli coefficients ordered
// alphabetically by label: flattened row-major, position id holds the
// coefficient of LexString(id, n).
//
// The natural transform runs in place; the reordering is not a simple
// swap pattern and uses one auxiliary N×N buffer, so this variant costs
// more time and memory than DecomposeNatural.
//
// Errors: same as DecomposeNatural; nothing is written on error.
// Complexity: O(N² log N) time, O(N²) extra space.
func DecomposeLexicographic(m *matrix.Dense, opts ...Option) error {
	data, dim, _, err := prepare(opDecomposeLexicographic, m)
	if err != nil {
		return err
	}
	forwardBlock(data, dim, 0, dim, newScheduler(gatherOptions(opts...)))

	tmp := make([]complex128, len(data))
	copy(tmp, data)
	var i, j int
	for i = 0; i < dim; i++ {
		row := tmp[i*dim : (i+1)*dim]
		for j = 0; j < dim; j++ {
			data[naturalToLex(uint32(i), uint32(j))] = row[j]
		}
	}

	return nil
}

// ReconstructLexicographic is the inverse of DecomposeLexicographic.
//
// Errors: same as DecomposeNatural; nothing is written on error.
// Complexity: O(N² log N) time, O(N²) extra space.
func ReconstructLexicographic(m *matrix.Dense, opts ...Option) error {
	data, dim, _, err := prepare(opReconstructLexicographic, m)
	if err != nil {
		return err
	}

	tmp := make([]complex128, len(data))
	copy(tmp, data)
	var i, j int
	for i = 0; i < dim; i++ {
		row := data[i*dim : (i+1)*dim]
		for j = 0; j < dim; j++ {
			row[j] = tmp[naturalToLex(uint32(i), uint32(j))]
		}
	}
	inverseBlock(data, dim, 0, dim, newScheduler(gatherOptions(opts...)))

	return nil
}

// DecomposeXZPhase runs DecomposeNatural on m and returns the symplectic
// encoding of every coefficient position, index-aligned with m in
// row-major order.
//
// Errors: same as DecomposeNatural; nothing is written on error.
// Complexity: O(N² log N + N²·n) time, O(N²·n) space for the encoding.
func DecomposeXZPhase(m *matrix.Dense, opts ...Option) (*Symplectic, error) {
	data, dim, n, err := prepare(opDecomposeXZPhase, m)
	if err != nil {
		return nil, err
	}
	forwardBlock(data, dim, 0, dim, newScheduler(gatherOptions(opts...)))

	size := dim * dim
	enc := &Symplectic{
		Qubits: n,
		X:      make([]int8, size*n),
		Z:      make([]int8, size*n),
		Phase:  make([]int8, size),
	}
	var i, j, p int
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			p = i*dim + j
			enc.Phase[p] = encodeXZ(uint64(i), uint64(j), n, enc.X[p*n:(p+1)*n], enc.Z[p*n:(p+1)*n])
		}
	}

	return enc, nil
}

// ---------- block recursion (parallel path) ----------

// quadrants returns the offsets of the four quadrants of a block at off
// with half-size h.
func quadrants(off, stride, h int) [4]int {
	return [4]int{off, off + h, off + h*stride, off + h*stride + h}
}

// forwardBlock decomposes the dim×dim block at off. Blocks too small to
// split run the iterative passes inline.
func forwardBlock(data []complex128, stride, off, dim int, s *scheduler) {
	if !s.splits(dim) {
		forwardLevels(data, stride, off, dim)

		return
	}
	h := dim >> 1
	s.rows(h, func(r0, r1 int) { forwardPass(data, stride, off, h, r0, r1) })
	q := quadrants(off, stride, h)
	s.run(
		func() { forwardBlock(data, stride, q[0], h, s) },
		func() { forwardBlock(data, stride, q[1], h, s) },
		func() { forwardBlock(data, stride, q[2], h, s) },
		func() { forwardBlock(data, stride, q[3], h, s) },
	)
}

// inverseBlock reconstructs the dim×dim block at off, quadrants first.
func inverseBlock(data []complex128, stride, off, dim int, s *scheduler) {
	if !s.splits(dim) {
		inverseLevels(data, stride, off, dim)

		return
	}
	h := dim >> 1
	q := quadrants(off, stride, h)
	s.run(
		func() { inverseBlock(data, stride, q[0], h, s) },
		func() { inverseBlock(data, stride, q[1], h, s) },
		func() { inverseBlock(data, stride, q[2], h, s) },
		func() { inverseBlock(data, stride, q[3], h, s) },
	)
	s.rows(h, func(r0, r1 int) { inversePass(data, stride, off, h, r0, r1) })
}

// ---------- iterative passes (sequential path) ----------

// forwardLevels applies every forward level to the block, coarsest first.
func forwardLevels(data []complex128, stride, off, dim int) {
	var h, br, bc int
	for h = dim >> 1; h >= 1; h >>= 1 {
		for br = 0; br < dim; br += h << 1 {
			for bc = 0; bc < dim; bc += h << 1 {
				forwardPass(data, stride, off+br*stride+bc, h, 0, h)
			}
		}
	}
}

// inverseLevels applies every inverse level to the block, finest first.
func inverseLevels(data []complex128, stride, off, dim int) {
	var h, br, bc int
	for h = 1; h < dim; h <<= 1 {
		for br = 0; br < dim; br += h << 1 {
			for bc = 0; bc < dim; bc += h << 1 {
				inversePass(data, stride, off+br*stride+bc, h, 0, h)
			}
		}
	}
}

// forwardPass runs the forward butterfly on rows [r0, r1) of the top half
// of the 2h×2h block at off.
func forwardPass(data []complex128, stride, off, h, r0, r1 int) {
	var r, c, top, bot int
	var a, b, cc, d, t complex128
	for r = r0; r < r1; r++ {
		top = off + r*stride
		bot = top + h*stride
		for c = 0; c < h; c++ {
			a, b = data[top+c], data[top+h+c]
			cc, d = data[bot+c], data[bot+h+c]
			data[top+c] = (a + d) * 0.5
			data[top+h+c] = (a - d) * 0.5
			data[bot+c] = (b + cc) * 0.5
			t = b - cc
			data[bot+h+c] = complex(-imag(t)*0.5, real(t)*0.5) // i·t/2
		}
	}
}

// inversePass runs the inverse butterfly on rows [r0, r1) of the top half
// of the 2h×2h block at off.
func inversePass(data []complex128, stride, off, h, r0, r1 int) {
	var r, c, top, bot int
	var a, b, cc, d complex128
	for r = r0; r < r1; r++ {
		top = off + r*stride
		bot = top + h*stride
		for c = 0; c < h; c++ {
			a, b = data[top+c], data[top+h+c]
			cc, d = data[bot+c], data[bot+h+c]
			data[top+c] = a + b
			data[bot+h+c] = a - b
			data[top+h+c] = complex(real(cc)+imag(d), imag(cc)-real(d)) // c − i·d
			data[bot+c] = complex(real(cc)-imag(d), imag(cc)+real(d))   // c + i·d
		}
	}
}
