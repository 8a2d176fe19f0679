// Package parallel runs independent tessellation jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with one queue per worker. An idle
// worker steals from the other queues before blocking on its own.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool. workers <= 0 uses GOMAXPROCS.
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
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
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
		case job := <-own:
			run(job)
			continue
		default:
		}
		if job := p.steal(id); job != nil {
			run(job)
			continue
		}
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			run(job)
		}
	}
}

func run(job func()) {
	if job != nil {
		job()
	}
}

func (p *WorkerPool) drain(q chan func()) {
	for {
		select {
		case job := <-q:
			run(job)
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll distributes jobs round-robin and waits for all of them. Jobs
// that cannot be queued because the pool is closed run on the caller's
// goroutine, so every job runs exactly once.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	if !p.running.Load() {
		for _, job := range jobs {
			run(job)
		}
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			run(job)
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	pending.Wait()
}

// Close stops accepting work, finishes queued jobs and stops the workers.
// It is safe to call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Map applies fn to every element of in and returns the results in input
// order. A nil pool runs fn sequentially.
func Map[T, R any](p *WorkerPool, in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	if p == nil || p.workers < 2 || len(in) < 2 {
		for i, v := range in {
			out[i] = fn(v)
		}
		return out
	}
	jobs := make([]func(), len(in))
	for i, v := range in {
		jobs[i] = func() { out[i] = fn(v) }
	}
	p.ExecuteAll(jobs)
	return out
}
