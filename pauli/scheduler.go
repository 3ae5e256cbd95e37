// SPDX-License-Identifier: MIT

package pauli

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// rowChunks is how many pieces one butterfly pass is split into.
const rowChunks = 4

// scheduler fans out disjoint sub-blocks of one transform call.
// A nil scheduler runs everything inline.
//
// The semaphore caps live goroutines across all recursion levels. A task
// that cannot get a slot runs on the calling goroutine, so a parent never
// blocks waiting for a slot its children hold. Every fan-out joins before
// it returns.
type scheduler struct {
	slots  *semaphore.Weighted
	minDim int
}

// newScheduler returns nil when o disables parallelism.
func newScheduler(o Options) *scheduler {
	if o.workers <= 0 {
		return nil
	}

	return &scheduler{
		slots:  semaphore.NewWeighted(int64(o.workers)),
		minDim: o.threshold,
	}
}

// splits reports whether a block of dimension dim is fanned out.
func (s *scheduler) splits(dim int) bool {
	return s != nil && dim >= s.minDim
}

// run executes tasks, concurrently where a slot is free, and waits for all.
func (s *scheduler) run(tasks ...func()) {
	var g errgroup.Group
	for _, task := range tasks {
		if s.slots.TryAcquire(1) {
			g.Go(func() error {
				defer s.slots.Release(1)
				task()

				return nil
			})

			continue
		}
		task()
	}
	_ = g.Wait() // tasks never fail
}

// rows splits [0, h) into rowChunks ranges and runs fn on each.
func (s *scheduler) rows(h int, fn func(r0, r1 int)) {
	chunks := rowChunks
	if h < chunks {
		chunks = h
	}
	tasks := make([]func(), 0, chunks)
	for c := 0; c < chunks; c++ {
		r0, r1 := c*h/chunks, (c+1)*h/chunks
		tasks = append(tasks, func() { fn(r0, r1) })
	}
	s.run(tasks...)
}
