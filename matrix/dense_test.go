// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions rejects non-positive shapes.
func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %v", shape)
	}
}

// TestDense_AtSet covers bounds checks and the numeric policy.
func TestDense_AtSet(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 3-4i))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3-4i, v)
	assert.Equal(t, 3-4i, m.Data()[1*3+2], "row-major offset i*c+j")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, cmplx.Inf()), matrix.ErrNaNInf)

	r, c := m.Shape()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
}

// TestWrap_Aliases verifies that Wrap shares the caller's buffer.
func TestWrap_Aliases(t *testing.T) {
	t.Parallel()

	buf := []complex128{1, 2, 3, 4}
	m, err := matrix.Wrap(2, 2, buf)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 9i))
	assert.Equal(t, 9i, buf[1])

	_, err = matrix.Wrap(2, 3, buf)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Wrap(0, 2, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows covers copying, ragged input and non-finite values.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	rows := [][]complex128{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 100
	assert.Equal(t, []complex128{1, 2, 3, 4}, m.Data(), "input must be copied")

	_, err = matrix.NewDenseFromRows([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]complex128{{cmplx.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDense_Clone produces an independent copy.
func TestDense_Clone(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]complex128{{1, 2i}})
	require.NoError(t, err)
	cp := m.CloneDense()
	require.NoError(t, cp.Set(0, 0, 7))
	assert.Equal(t, complex128(1), m.Data()[0])
	assert.Equal(t, "[(1+0i), (0+2i)]\n", m.String())
}
