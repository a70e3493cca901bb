package parallel

import (
	"context"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if len(pool.queues) != 4 {
		t.Errorf("queues = %d, want 4", len(pool.queues))
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewWorkerPool(n)
		expected := runtime.GOMAXPROCS(0)
		if pool.workers != expected {
			t.Errorf("NewWorkerPool(%d) workers = %d, want %d (GOMAXPROCS)", n, pool.workers, expected)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	if skipped := pool.ExecuteAll(context.Background(), work); skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllMoreThanQueue(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(context.Background(), work)

	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if n := pool.ExecuteAll(context.Background(), nil); n != 0 {
		t.Errorf("ExecuteAll(nil) = %d, want 0", n)
	}
	if n := pool.ExecuteAll(context.Background(), []func(){}); n != 0 {
		t.Errorf("ExecuteAll(empty) = %d, want 0", n)
	}
}

func TestWorkerPool_ExecuteAllCancelledMidBatch(t *testing.T) {
	// One worker drains its queue in order, so only the first item runs.
	pool := NewWorkerPool(1)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var counter atomic.Int64
	work := make([]func(), 6)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
			cancel()
		}
	}

	skipped := pool.ExecuteAll(ctx, work)
	if counter.Load() != 1 {
		t.Errorf("ran %d items, want 1", counter.Load())
	}
	if skipped != 5 {
		t.Errorf("skipped = %d, want 5", skipped)
	}
}

func TestWorkerPool_ExecuteAllPreCancelled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	work := []func(){func() { ran.Store(true) }, func() { ran.Store(true) }}
	if skipped := pool.ExecuteAll(ctx, work); skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if ran.Load() {
		t.Error("work ran under a cancelled context")
	}
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	// Closing twice must not panic.
	pool.Close()

	var ran atomic.Bool
	if n := pool.ExecuteAll(context.Background(), []func(){func() { ran.Store(true) }}); n != 1 {
		t.Errorf("ExecuteAll on a closed pool skipped %d, want 1", n)
	}
	if ran.Load() {
		t.Error("ExecuteAll on a closed pool should not run work")
	}
}
