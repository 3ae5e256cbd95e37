// SPDX-License-Identifier: MIT

package pauli

import (
	"errors"
	"fmt"
)

var (
	// ErrQubitCount indicates a qubit count outside the supported range
	// (negative, above MaxQubits, or above MaxTableQubits for AllStrings).
	ErrQubitCount = errors.New("pauli: qubit count out of range")

	// ErrOutOfRange indicates an index pair outside [0, 2^n) or a
	// lexicographic id outside [0, 4^n).
	ErrOutOfRange = errors.New("pauli: index out of range")

	// ErrInvalidSymbol indicates a label character outside {I, X, Y, Z}.
	ErrInvalidSymbol = errors.New("pauli: invalid symbol")

	// ErrTermMismatch indicates terms of different lengths, or a term count
	// that does not match the requested qubit count.
	ErrTermMismatch = errors.New("pauli: inconsistent terms")
)

// Call-site tags (grep-friendly, stable).
const (
	opDecomposeNatural         = "DecomposeNatural"
	opDecomposeLexicographic   = "DecomposeLexicographic"
	opReconstructNatural       = "ReconstructNatural"
	opReconstructLexicographic = "ReconstructLexicographic"
	opDecomposeXZPhase         = "DecomposeXZPhase"
	opStringForIndex           = "StringForIndex"
	opAllStrings               = "AllStrings"
	opLexString                = "LexString"
	opXZPhaseForIndex          = "XZPhaseForIndex"
	opLexToNatural             = "LexToNatural"
	opNaturalToLex             = "NaturalToLex"
	opParseString              = "ParseString"
	opTerms                    = "Terms"
	opSum                      = "Sum"
	opTermsLexicographic       = "TermsLexicographic"
)

// pauliErrorf wraps err with a call-site tag: "pauli.<tag>: <err>".
func pauliErrorf(tag string, err error) error {
	return fmt.Errorf("pauli.%s: %w", tag, err)
}
