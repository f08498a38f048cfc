// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// evaluating independent elements in parallel. A Pool is created once and
// reused across many bulk evaluations, so no goroutines are spawned per call.
//
// Work functions return an error. When several ranges fail, the pool
// reports the error of the range with the lowest start index, which makes
// the outcome independent of scheduling.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ParallelFor(len(xs), func(start, end int) error {
//	    return evaluate(xs[start:end], out[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused. Its methods are safe for concurrent use.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0,
// GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close
// more than once is safe; a closed pool runs work on the calling goroutine.
// Close must not race with a ParallelFor call that is still submitting work.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// firstError keeps the error reported for the lowest start index.
type firstError struct {
	mu    sync.Mutex
	start int
	err   error
}

func (f *firstError) record(start int, err error) {
	if err == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil || start < f.start {
		f.start = start
		f.err = err
	}
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn on each. It blocks until every range is done and returns the error of
// the failing range with the lowest start, or nil.
func (p *Pool) ParallelFor(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers

	var (
		wg    sync.WaitGroup
		first firstError
	)
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				first.record(start, fn(start, end))
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	return first.err
}

// ParallelForBatched hands out batches of batchSize indices through an
// atomic counter, which balances load when the cost per element varies.
// Every batch is evaluated even after a failure; the error of the failing
// batch with the lowest start is returned.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		var first firstError
		for start := 0; start < n; start += batchSize {
			first.record(start, fn(start, min(start+batchSize, n)))
		}
		return first.err
	}

	var (
		nextBatch atomic.Int64
		wg        sync.WaitGroup
		first     firstError
	)
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					first.record(start, fn(start, min(start+batchSize, n)))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	return first.err
}
