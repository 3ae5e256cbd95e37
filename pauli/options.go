// SPDX-License-Identifier: MIT

// Package pauli: functional configuration for the transforms.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: options change scheduling only, never results.
//   - No global state; every call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package pauli

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of extra goroutines a transform may use.
	// 0 ⇒ strictly sequential.
	DefaultWorkers = 0

	// DefaultParallelThreshold is the smallest block dimension whose four
	// quadrants are fanned out to workers. Smaller blocks run inline.
	DefaultParallelThreshold = 256
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "pauli: WithWorkers: workers must be >= 0"
	panicThresholdInvalid = "pauli: WithParallelThreshold: dim must be >= 2"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers   int // >= 0; DefaultWorkers
	threshold int // >= 2; DefaultParallelThreshold
}

// WithWorkers bounds the number of extra goroutines used for quadrant
// fan-out. 0 disables parallelism.
//
// Panics when workers < 0.
// Complexity: O(1).
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithParallel is WithWorkers(runtime.GOMAXPROCS(0)).
func WithParallel() Option {
	return WithWorkers(runtime.GOMAXPROCS(0))
}

// WithParallelThreshold sets the smallest block dimension that is split
// across workers. Has no effect while workers == 0.
//
// Panics when dim < 2.
// Complexity: O(1).
func WithParallelThreshold(dim int) Option {
	if dim < 2 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = dim }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
