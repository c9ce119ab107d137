// Copyright 2026 The planar Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parallel provides the scoped worker pool and the map-then-combine
// reduction used by the hull reducer and the integrator.
package parallel

import (
	"runtime"
	"sync"

	"github.com/akhenakh/planar"
)

// WorkerPool is a fixed set of goroutines that execute submitted functions.
//
// Each worker owns a queue and falls back to stealing from the other queues
// when its own is empty. A pool is meant to live for one top-level
// computation: create it, run every batch through ExecuteAll, then Close it.
//
// WorkerPool is safe for concurrent use, including Close racing with
// ExecuteAll. Functions run by the pool must not call ExecuteAll or Close on
// it.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is read-held by every ExecuteAll batch and write-held by Close
	// while it marks the pool closed, so workers outlive the batches that
	// reached them.
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool starts a pool with the given number of workers. A value of
// zero or less selects GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	planar.Logger().Debug("parallel: worker pool started", "workers", workers)
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			fn()
		default:
			return
		}
	}
}

// steal takes one function from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every function in work and returns once all of them have
// finished. Functions are dealt round-robin to the worker queues.
//
// If a function panics, the panic is recovered on the worker and ExecuteAll
// re-panics with the value from the lowest-indexed failing function after
// the whole batch has finished. On a closed pool the batch runs on the
// calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		for _, fn := range work {
			fn()
		}
		return
	}

	var (
		wg     sync.WaitGroup
		panics = make([]any, len(work))
	)
	wg.Add(len(work))
	for i, fn := range work {
		wrapped := func() {
			defer func() {
				panics[i] = recover()
				wg.Done()
			}()
			fn()
		}
		p.queues[i%p.workers] <- wrapped
	}
	wg.Wait()

	for _, v := range panics {
		if v != nil {
			panic(v)
		}
	}
}

// Close stops the workers after they finish any queued work and waits for
// them to exit. Batches already inside ExecuteAll complete first. Close is
// safe to call more than once.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	p.wg.Wait()
	planar.Logger().Debug("parallel: worker pool closed", "workers", p.workers)
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}
