package schedule

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Runner executes a Task in a background goroutine, waiting a full interval
// after each run completes. At most one run is in flight at any time.
type Runner struct {
	task     Task
	interval time.Duration

	startOnce sync.Once
	alive     atomic.Bool
	done      chan struct{}
}

func NewRunner(task Task, interval time.Duration) *Runner {
	return &Runner{
		task:     task,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the loop. Only the first call has any effect.
func (r *Runner) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.alive.Store(true)
		go r.run(ctx)
	})
}

// Alive reports whether the background loop is still running.
func (r *Runner) Alive() bool {
	return r.alive.Load()
}

// Done is closed when the loop has exited.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) run(ctx context.Context) {
	defer func() {
		r.alive.Store(false)
		close(r.done)
	}()

	slog.Info("task loop started", "task", r.task.Name(), "interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("task loop stopped", "task", r.task.Name())
			return
		default:
		}

		// Task errors are recoverable, the loop just waits for the next tick.
		if err := r.task.Run(ctx); err != nil {
			slog.Error("task run failed", "task", r.task.Name(), "error", err)
		}

		select {
		case <-ctx.Done():
			slog.Info("task loop stopped", "task", r.task.Name())
			return
		case <-time.After(r.interval):
		}
	}
}
