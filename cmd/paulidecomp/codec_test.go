// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/katalvlaran/paulix/pauli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrixCodec_RoundTrip encodes and decodes a complex matrix.
func TestMatrixCodec_RoundTrip(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]complex128{{1, 2.5 - 1i}, {-3i, 0.125}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, encodeMatrix(&buf, m))
	got, err := decodeMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Data(), got.Data())
}

// TestDecodeMatrix_Document reads the documented wire shape.
func TestDecodeMatrix_Document(t *testing.T) {
	m, err := decodeMatrix(strings.NewReader(`{"rows":[[[1,0],[0,-1]],[[0,1],[2,0.5]]]}`))
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, -1i, 1i, 2 + 0.5i}, m.Data())
}

// TestDecodeMatrix_Errors rejects malformed entries and ragged rows.
func TestDecodeMatrix_Errors(t *testing.T) {
	_, err := decodeMatrix(strings.NewReader(`{"rows":[[[1,0,3]]]}`))
	assert.ErrorIs(t, err, errEntry)
	_, err = decodeMatrix(strings.NewReader(`{"rows":[[[1]]]}`))
	assert.ErrorIs(t, err, errEntry)
	_, err = decodeMatrix(strings.NewReader(`{"rows":[[[1,0],[2,0]],[[3,0]]]}`))
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = decodeMatrix(strings.NewReader(`{"rows":[]}`))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = decodeMatrix(strings.NewReader(`{"rows":`))
	assert.Error(t, err)
}

// TestTermsCodec_RoundTrip covers the terms document and the zero filter.
func TestTermsCodec_RoundTrip(t *testing.T) {
	terms := []pauli.Term{
		{Pauli: "XZ", Coeff: 0.5 - 2i},
		{Pauli: "II", Coeff: 0},
		{Pauli: "YY", Coeff: 1e-15},
	}
	doc := newTermsDoc(2, orderNatural, terms, true, 1e-12)
	require.Len(t, doc.Terms, 1)

	var buf bytes.Buffer
	require.NoError(t, encodeTerms(&buf, doc))
	got, err := decodeTerms(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, termDoc{Pauli: "XZ", Re: 0.5, Im: -2}, got.Terms[0])

	all := newTermsDoc(2, orderLex, terms, false, 0)
	assert.Len(t, all.Terms, 3)
}
