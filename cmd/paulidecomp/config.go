// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/paulix/pauli"
	"gopkg.in/yaml.v3"
)

// Coefficient orders accepted by --order.
const (
	orderNatural = "natural"
	orderLex     = "lex"
)

// Flag names shared by the command tree and the config merge.
const (
	flagWorkers   = "workers"
	flagThreshold = "parallel-threshold"
	flagOrder     = "order"
	flagSkipZero  = "skip-zero"
	flagTolerance = "tolerance"
)

// errInvalidConfig reports a config value outside its range.
var errInvalidConfig = errors.New("paulidecomp: invalid config")

// config is the effective CLI configuration. A YAML file supplies values
// that explicit flags override.
type config struct {
	Workers           int     `yaml:"workers"`
	ParallelThreshold int     `yaml:"parallel_threshold"`
	Order             string  `yaml:"order"`
	SkipZero          bool    `yaml:"skip_zero"`
	Tolerance         float64 `yaml:"tolerance"`
}

func defaultConfig() config {
	return config{
		Workers:           pauli.DefaultWorkers,
		ParallelThreshold: pauli.DefaultParallelThreshold,
		Order:             orderNatural,
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected.
func loadConfig(path string) (config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	c := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// merge copies every field of file whose flag was not set explicitly.
func (c *config) merge(file config, changed func(name string) bool) {
	if !changed(flagWorkers) {
		c.Workers = file.Workers
	}
	if !changed(flagThreshold) {
		c.ParallelThreshold = file.ParallelThreshold
	}
	if !changed(flagOrder) {
		c.Order = file.Order
	}
	if !changed(flagSkipZero) {
		c.SkipZero = file.SkipZero
	}
	if !changed(flagTolerance) {
		c.Tolerance = file.Tolerance
	}
}

func (c config) validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers=%d: %w", c.Workers, errInvalidConfig)
	case c.ParallelThreshold < 2:
		return fmt.Errorf("parallel_threshold=%d: %w", c.ParallelThreshold, errInvalidConfig)
	case c.Order != orderNatural && c.Order != orderLex:
		return fmt.Errorf("order=%q: %w", c.Order, errInvalidConfig)
	case c.Tolerance < 0 || math.IsNaN(c.Tolerance):
		return fmt.Errorf("tolerance=%g: %w", c.Tolerance, errInvalidConfig)
	}

	return nil
}

// options translates the config into engine options. Call after validate.
func (c config) options() []pauli.Option {
	return []pauli.Option{
		pauli.WithWorkers(c.Workers),
		pauli.WithParallelThreshold(c.ParallelThreshold),
	}
}
