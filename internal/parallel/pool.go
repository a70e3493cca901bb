package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that run batches of independent work
// items.
//
// Each worker owns a queue and steals from the others when its own queue
// is empty.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds one buffered queue per worker.
	queues []chan func()

	done chan struct{}
	wg   sync.WaitGroup

	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.queues[i] = make(chan func(), max(8, workers*4))
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case work := <-own:
			work()
			continue
		default:
		}

		if work := p.steal(id); work != nil {
			work()
			continue
		}

		select {
		case work := <-own:
			work()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

// drain runs whatever is left in queue without blocking.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
// Victims are visited starting after id so idle workers spread out.
func (p *WorkerPool) steal(id int) func() {
	for k := 1; k < p.workers; k++ {
		select {
		case work := <-p.queues[(id+k)%p.workers]:
			return work
		default:
		}
	}
	return nil
}

// batch tracks the items of one ExecuteAll call.
type batch struct {
	ctx     context.Context
	pending sync.WaitGroup
	skipped atomic.Int64
}

// wrap returns fn guarded by the batch context. An item dequeued after
// cancellation is counted as skipped instead of run.
func (b *batch) wrap(fn func()) func() {
	return func() {
		defer b.pending.Done()
		if b.ctx.Err() != nil {
			b.skipped.Add(1)
			return
		}
		fn()
	}
}

// skip marks n items as never submitted.
func (b *batch) skip(n int) {
	b.skipped.Add(int64(n))
	b.pending.Add(-n)
}

// ExecuteAll distributes work round-robin, waits until every item has run
// or been skipped, and returns the number skipped.
//
// Items are skipped when ctx is cancelled before they start or when the
// pool is closed before they are queued. An item that has started always
// runs to completion.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func()) int {
	if len(work) == 0 {
		return 0
	}
	if !p.running.Load() {
		return len(work)
	}

	b := &batch{ctx: ctx}
	b.pending.Add(len(work))

	for i, fn := range work {
		if ctx.Err() != nil {
			b.skip(len(work) - i)
			break
		}
		select {
		case p.queues[i%p.workers] <- b.wrap(fn):
		case <-p.done:
			b.skip(1)
		case <-ctx.Done():
			b.skip(1)
		}
	}

	b.pending.Wait()
	return int(b.skipped.Load())
}

// Close stops the pool after queued work has run.
// Close is safe to call multiple times, but not while ExecuteAll is in
// progress on another goroutine.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
