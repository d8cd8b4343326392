// Package tasks runs background work spawned by request handlers. Tasks are
// in-process only; anything still running when the process exits is lost,
// which is why Shutdown drains in-flight work before returning.
package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"orator/internal/logger"
)

// Runner tracks spawned goroutines so the process can drain them on
// shutdown. A non-zero concurrency limit bounds how many run at once;
// callers of Go never block either way.
type Runner struct {
	wg   sync.WaitGroup
	sem  chan struct{}
	log  zerolog.Logger
	mu   sync.Mutex
	done bool
}

// NewRunner creates a runner. maxConcurrency <= 0 means unbounded.
func NewRunner(maxConcurrency int) *Runner {
	r := &Runner{log: logger.WithComponent("tasks")}
	if maxConcurrency > 0 {
		r.sem = make(chan struct{}, maxConcurrency)
	}
	return r
}

// Go schedules fn on its own goroutine and returns immediately. The task
// gets a fresh background context so it outlives the spawning request.
// Panics are recovered and logged rather than crashing the process. Tasks
// scheduled after Shutdown are dropped.
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	r.mu.Lock()
	if r.done {
		r.mu.Unlock()
		r.log.Warn().Str("task", name).Msg("runner shut down, task dropped")
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		if r.sem != nil {
			r.sem <- struct{}{}
			defer func() { <-r.sem }()
		}
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Error().Str("task", name).Any("panic", rec).Msg("task panicked")
			}
		}()

		start := time.Now()
		fn(context.Background())
		r.log.Debug().Str("task", name).Dur("duration", time.Since(start)).Msg("task finished")
	}()
}

// Shutdown stops accepting new tasks and waits for in-flight ones, giving
// up when ctx expires.
func (r *Runner) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.done = true
	r.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until all currently scheduled tasks finish. Intended for
// tests that need to observe a task's result.
func (r *Runner) Wait() {
	r.wg.Wait()
}
