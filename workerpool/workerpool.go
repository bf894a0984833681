// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a parallel_for(n, body, grain) primitive.
// Parallel kernels (the parallel paths in hashing, sorting, groupbyagg and
// joins) dispatch work through a Pool rather than spawning goroutines
// directly.
package workerpool

import (
	"sync"

	"github.com/vectorframe/corekernel/config"
)

// Pool runs ParallelFor bodies across a bounded set of goroutines.
//
// A Pool holds no state between calls: the thread budget (config.MaxThreads)
// is read once per ParallelFor entry. Within a single call, work is split
// into grain-sized chunks pushed onto a shared channel; worker goroutines
// pull the next chunk as soon as they finish their current one, giving
// work-stealing behavior without the overhead of a persistent pool.
type Pool struct {
	maxWorkers int
}

// New creates a pool capped at maxWorkers goroutines per ParallelFor call.
// maxWorkers <= 0 means "use the current config.MaxThreads() budget".
func New(maxWorkers int) *Pool {
	return &Pool{maxWorkers: maxWorkers}
}

// Default returns a Pool sized to the current thread budget. Kernels that
// don't hold a long-lived Pool call this at entry.
func Default() *Pool {
	return New(config.MaxThreads())
}

func (p *Pool) workers(numChunks int) int {
	w := p.maxWorkers
	if w <= 0 {
		w = config.MaxThreads()
	}
	if w > numChunks {
		w = numChunks
	}
	if w < 1 {
		w = 1
	}
	return w
}

type chunk struct{ start, end int }

// ParallelFor partitions [0, n) into chunks of approximately grain indices
// and runs body(start, end) for each chunk, blocking until every chunk has
// completed (a barrier join). grain <= 0 picks an even split across the
// worker budget, i.e. one chunk per worker.
//
// Each invocation of body owns its [start, end) range exclusively and may
// write to any caller-provided buffer slice covering that range without
// synchronization: worker-local buffers, no shared cursor.
func (p *Pool) ParallelFor(n int, body func(start, end int), grain int) {
	if n <= 0 {
		return
	}

	if grain <= 0 {
		workers := p.workers(n)
		if workers <= 1 {
			body(0, n)
			return
		}
		grain = (n + workers - 1) / workers
	}
	if grain < 1 {
		grain = 1
	}

	numChunks := (n + grain - 1) / grain
	workers := p.workers(numChunks)
	if workers <= 1 {
		body(0, n)
		return
	}

	chunks := make(chan chunk, numChunks)
	for start := 0; start < n; start += grain {
		end := start + grain
		if end > n {
			end = n
		}
		chunks <- chunk{start, end}
	}
	close(chunks)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for c := range chunks {
				body(c.start, c.end)
			}
		}()
	}
	wg.Wait()
}

// NumWorkers reports how many goroutines a ParallelFor(n, ...) call would
// use for the given range length under the pool's current budget.
func (p *Pool) NumWorkers(n int) int {
	return p.workers(n)
}
