// SPDX-License-Identifier: MIT

// Command paulidecomp decomposes dense matrices into Pauli-string
// coefficients and rebuilds matrices from coefficient lists.
//
//	paulidecomp decompose --in m.json [--order natural|lex] [--skip-zero] [--verify]
//	paulidecomp reconstruct --in terms.json
//	paulidecomp strings --qubits n
//	paulidecomp lex --qubits n --id k
//
// Matrices are JSON documents {"rows":[[[re,im],...],...]}; coefficient
// lists are {"qubits":n,"order":"natural","terms":[{"pauli":"XZ","re":..,"im":..}]}.
// Global flags: --config file.yaml, --verbose, --workers, --parallel-threshold.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
