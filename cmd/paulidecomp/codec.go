// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/cmplx"

	"github.com/francoispqt/gojay"
	"github.com/katalvlaran/paulix/matrix"
	"github.com/katalvlaran/paulix/pauli"
)

// Document keys.
const (
	keyRows   = "rows"
	keyQubits = "qubits"
	keyOrder  = "order"
	keyTerms  = "terms"
	keyPauli  = "pauli"
	keyRe     = "re"
	keyIm     = "im"
)

// errEntry reports a matrix entry that is not a [re, im] pair.
var errEntry = errors.New("paulidecomp: matrix entry must be [re, im]")

// ---------- matrix document: {"rows":[[[re,im],...],...]} ----------

// entry decodes one [re, im] pair.
type entry struct {
	v complex128
	n int
}

func (e *entry) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var f float64
	if err := dec.Float64(&f); err != nil {
		return err
	}
	switch e.n {
	case 0:
		e.v = complex(f, 0)
	case 1:
		e.v = complex(real(e.v), f)
	default:
		return errEntry
	}
	e.n++

	return nil
}

// pair encodes one complex number as [re, im].
type pair complex128

func (p pair) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(real(p))
	enc.Float64(imag(p))
}

func (p pair) IsNil() bool { return false }

// row is one matrix row.
type row []complex128

func (r *row) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var e entry
	if err := dec.Array(&e); err != nil {
		return err
	}
	if e.n != 2 {
		return errEntry
	}
	*r = append(*r, e.v)

	return nil
}

func (r row) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range r {
		enc.Array(pair(v))
	}
}

func (r row) IsNil() bool { return r == nil }

// rows is the list of matrix rows.
type rows [][]complex128

func (rs *rows) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var r row
	if err := dec.Array(&r); err != nil {
		return err
	}
	*rs = append(*rs, r)

	return nil
}

func (rs rows) MarshalJSONArray(enc *gojay.Encoder) {
	for _, r := range rs {
		enc.Array(row(r))
	}
}

func (rs rows) IsNil() bool { return rs == nil }

// matrixDoc is the matrix document.
type matrixDoc struct {
	Rows rows
}

func (d *matrixDoc) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	if key == keyRows {
		return dec.Array(&d.Rows)
	}

	return nil
}

func (d *matrixDoc) NKeys() int { return 1 }

func (d *matrixDoc) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey(keyRows, d.Rows)
}

func (d *matrixDoc) IsNil() bool { return d == nil }

// decodeMatrix reads a matrix document.
func decodeMatrix(r io.Reader) (*matrix.Dense, error) {
	dec := gojay.BorrowDecoder(r)
	defer dec.Release()

	var doc matrixDoc
	if err := dec.DecodeObject(&doc); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	m, err := matrix.NewDenseFromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	return m, nil
}

// encodeMatrix writes m as a matrix document followed by a newline.
func encodeMatrix(w io.Writer, m *matrix.Dense) error {
	r, c := m.Shape()
	data := m.Data()
	doc := matrixDoc{Rows: make(rows, r)}
	for i := range doc.Rows {
		doc.Rows[i] = data[i*c : (i+1)*c]
	}

	return encodeDoc(w, &doc)
}

// ---------- terms document: {"qubits":n,"order":..,"terms":[...]} ----------

// termDoc is one {"pauli":"XZ","re":..,"im":..} entry.
type termDoc struct {
	Pauli string
	Re    float64
	Im    float64
}

func (t *termDoc) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case keyPauli:
		return dec.String(&t.Pauli)
	case keyRe:
		return dec.Float64(&t.Re)
	case keyIm:
		return dec.Float64(&t.Im)
	}

	return nil
}

func (t *termDoc) NKeys() int { return 3 }

func (t *termDoc) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey(keyPauli, t.Pauli)
	enc.Float64Key(keyRe, t.Re)
	enc.Float64Key(keyIm, t.Im)
}

func (t *termDoc) IsNil() bool { return t == nil }

// termList is the "terms" array.
type termList []termDoc

func (l *termList) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var t termDoc
	if err := dec.Object(&t); err != nil {
		return err
	}
	*l = append(*l, t)

	return nil
}

func (l termList) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range l {
		enc.Object(&l[i])
	}
}

func (l termList) IsNil() bool { return l == nil }

// termsDoc is the terms document.
type termsDoc struct {
	Qubits int
	Order  string
	Terms  termList
}

func (d *termsDoc) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case keyQubits:
		return dec.Int(&d.Qubits)
	case keyOrder:
		return dec.String(&d.Order)
	case keyTerms:
		return dec.Array(&d.Terms)
	}

	return nil
}

func (d *termsDoc) NKeys() int { return 3 }

func (d *termsDoc) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey(keyQubits, d.Qubits)
	enc.StringKey(keyOrder, d.Order)
	enc.ArrayKey(keyTerms, d.Terms)
}

func (d *termsDoc) IsNil() bool { return d == nil }

// newTermsDoc converts engine terms, dropping those with |c| <= tol when
// skipZero is set.
func newTermsDoc(n int, order string, terms []pauli.Term, skipZero bool, tol float64) *termsDoc {
	doc := &termsDoc{Qubits: n, Order: order, Terms: make(termList, 0, len(terms))}
	for _, t := range terms {
		if skipZero && cmplx.Abs(t.Coeff) <= tol {
			continue
		}
		doc.Terms = append(doc.Terms, termDoc{Pauli: t.Pauli.String(), Re: real(t.Coeff), Im: imag(t.Coeff)})
	}

	return doc
}

// decodeTerms reads a terms document.
func decodeTerms(r io.Reader) (*termsDoc, error) {
	dec := gojay.BorrowDecoder(r)
	defer dec.Release()

	var doc termsDoc
	if err := dec.DecodeObject(&doc); err != nil {
		return nil, fmt.Errorf("decode terms: %w", err)
	}

	return &doc, nil
}

// encodeTerms writes a terms document followed by a newline.
func encodeTerms(w io.Writer, doc *termsDoc) error {
	return encodeDoc(w, doc)
}

func encodeDoc(w io.Writer, doc gojay.MarshalerJSONObject) error {
	enc := gojay.BorrowEncoder(w)
	defer enc.Release()

	if err := enc.EncodeObject(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	_, err := io.WriteString(w, "\n")

	return err
}
