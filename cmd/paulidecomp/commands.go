// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/paulix/matrix"
	"github.com/katalvlaran/paulix/pauli"
	"github.com/spf13/cobra"
)

// verifyTolerance bounds |rebuilt − input| for --verify.
const verifyTolerance = 1e-9

// errVerify reports a decomposition that does not rebuild its input.
var errVerify = errors.New("paulidecomp: verification failed")

// app carries the state shared by all subcommands.
type app struct {
	cfg        config
	configPath string
	verbose    bool
	log        *slog.Logger
	errOut     io.Writer
}

// newRootCmd builds the command tree over the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: defaultConfig(), errOut: errOut}
	root := &cobra.Command{
		Use:               "paulidecomp",
		Short:             "Pauli-string decomposition of dense complex matrices",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (flags override it)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.IntVar(&a.cfg.Workers, flagWorkers, a.cfg.Workers, "extra goroutines for the transform (0 = sequential)")
	pf.IntVar(&a.cfg.ParallelThreshold, flagThreshold, a.cfg.ParallelThreshold, "smallest block dimension split across workers")

	root.AddCommand(a.decomposeCmd(), a.reconstructCmd(), a.stringsCmd(), a.lexCmd())
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	return root
}

// setup installs the logger and folds the config file under the flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	if a.configPath != "" {
		file, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg.merge(file, cmd.Flags().Changed)
		a.log.Debug("config loaded", "path", a.configPath)
	}

	return a.cfg.validate()
}

// open returns the input named by path; "-" is the command's stdin.
func open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (a *app) decomposeCmd() *cobra.Command {
	var in string
	var verify bool
	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Decompose a matrix document into Pauli coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.decompose(cmd, in, verify)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in, "in", "-", "matrix document (- for stdin)")
	f.StringVar(&a.cfg.Order, flagOrder, a.cfg.Order, "coefficient order: natural or lex")
	f.BoolVar(&a.cfg.SkipZero, flagSkipZero, a.cfg.SkipZero, "omit terms with |c| <= tolerance")
	f.Float64Var(&a.cfg.Tolerance, flagTolerance, a.cfg.Tolerance, "threshold for --skip-zero")
	f.BoolVar(&verify, "verify", false, "rebuild the input from the coefficients and compare")

	return cmd
}

func (a *app) decompose(cmd *cobra.Command, in string, verify bool) error {
	r, err := open(cmd, in)
	if err != nil {
		return err
	}
	defer r.Close()
	m, err := decodeMatrix(r)
	if err != nil {
		return err
	}
	n, err := matrix.ValidatePowerOfTwo(m)
	if err != nil {
		return err
	}
	var orig *matrix.Dense
	if verify {
		orig = m.CloneDense()
	}

	start := time.Now()
	var terms []pauli.Term
	if a.cfg.Order == orderLex {
		if err = pauli.DecomposeLexicographic(m, a.cfg.options()...); err != nil {
			return err
		}
		terms, err = pauli.TermsLexicographic(m)
	} else {
		if err = pauli.DecomposeNatural(m, a.cfg.options()...); err != nil {
			return err
		}
		terms, err = pauli.Terms(m)
	}
	if err != nil {
		return err
	}
	a.log.Debug("decomposed", "qubits", n, "order", a.cfg.Order,
		"workers", a.cfg.Workers, "elapsed", time.Since(start))

	if verify {
		sum, err := pauli.Sum(terms, n)
		if err != nil {
			return err
		}
		ok, err := matrix.AllClose(sum, orig, verifyTolerance, verifyTolerance)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%d qubits: %w", n, errVerify)
		}
		a.log.Info("verified", "qubits", n, "terms", len(terms))
	}

	doc := newTermsDoc(n, a.cfg.Order, terms, a.cfg.SkipZero, a.cfg.Tolerance)
	a.log.Debug("terms", "kept", len(doc.Terms), "total", len(terms))

	return encodeTerms(cmd.OutOrStdout(), doc)
}

func (a *app) reconstructCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Rebuild a matrix document from Pauli coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.reconstruct(cmd, in)
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "terms document (- for stdin)")

	return cmd
}

// reconstruct scatters the terms into natural order and runs the inverse
// transform. Repeated labels accumulate; the document's order field is
// informational since every term carries its label.
func (a *app) reconstruct(cmd *cobra.Command, in string) error {
	r, err := open(cmd, in)
	if err != nil {
		return err
	}
	defer r.Close()
	doc, err := decodeTerms(r)
	if err != nil {
		return err
	}
	n := doc.Qubits
	if n < 0 || n > pauli.MaxTableQubits {
		return fmt.Errorf("qubits=%d: %w", n, pauli.ErrQubitCount)
	}
	dim := 1 << n
	m, err := matrix.NewDense(dim, dim)
	if err != nil {
		return err
	}
	data := m.Data()
	for k, t := range doc.Terms {
		s, err := pauli.ParseString(t.Pauli)
		if err != nil {
			return fmt.Errorf("term %d: %w", k, err)
		}
		if s.Qubits() != n {
			return fmt.Errorf("term %d %q: %w", k, t.Pauli, pauli.ErrTermMismatch)
		}
		i, j, err := s.Index()
		if err != nil {
			return fmt.Errorf("term %d: %w", k, err)
		}
		data[i*dim+j] += complex(t.Re, t.Im)
	}

	start := time.Now()
	if err = pauli.ReconstructNatural(m, a.cfg.options()...); err != nil {
		return err
	}
	a.log.Debug("reconstructed", "qubits", n, "terms", len(doc.Terms), "elapsed", time.Since(start))

	return encodeMatrix(cmd.OutOrStdout(), m)
}

func (a *app) stringsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "strings",
		Short: "Print the natural-order Pauli label table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := pauli.AllStrings(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			line := make([]string, len(table))
			for _, row := range table {
				for j, s := range row {
					line[j] = s.String()
				}
				if _, err = fmt.Fprintln(out, strings.Join(line, " ")); err != nil {
					return err
				}
			}
			a.log.Debug("strings", "qubits", n, "rows", len(table))

			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "qubits", "n", 1, "number of qubits")

	return cmd
}

func (a *app) lexCmd() *cobra.Command {
	var n int
	var id uint64
	cmd := &cobra.Command{
		Use:   "lex",
		Short: "Show the id-th label in alphabetical order and its natural position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := pauli.LexString(id, n)
			if err != nil {
				return err
			}
			i, j, err := pauli.LexToNatural(id, n)
			if err != nil {
				return err
			}
			x, z, phase, err := pauli.XZPhaseForIndex(i, j, n)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "label=%s i=%d j=%d x=%s z=%s phase=%d\n",
				s, i, j, bitString(x), bitString(z), phase)

			return err
		},
	}
	cmd.Flags().IntVarP(&n, "qubits", "n", 1, "number of qubits")
	cmd.Flags().Uint64Var(&id, "id", 0, "lexicographic id in [0, 4^n)")

	return cmd
}

// bitString renders a 0/1 vector as digits.
func bitString(v []int8) string {
	b := make([]byte, len(v))
	for k, bit := range v {
		b[k] = '0' + byte(bit)
	}

	return string(b)
}
