package lambdapi

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Bridge drives asynchronous work to completion for a process that handles
// one invocation at a time. It also owns the process-lifetime resources
// entered during setup and releases them exactly once at shutdown.
type Bridge struct {
	logger zerolog.Logger

	mu       sync.Mutex
	releases []ReleaseFunc
	done     bool
}

// NewBridge returns a bridge that reports release failures to the given
// logger.
func NewBridge(logger zerolog.Logger) *Bridge {
	return &Bridge{logger: logger}
}

type taskResult struct {
	value interface{}
	err   error
}

// Run drives a task to completion with no deadline. It is meant for setup
// work outside the per-invocation path.
func (b *Bridge) Run(ctx context.Context, task Task) (interface{}, error) {
	return task(ctx)
}

// RunWithTimeout drives a task to completion, giving up after the timeout
// with a *TimeoutError. The task's context is canceled on timeout; the
// task's own cleanup remains the task's responsibility.
func (b *Bridge) RunWithTimeout(ctx context.Context, timeout time.Duration, task Task) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make(chan taskResult, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				results <- taskResult{err: fmt.Errorf("task panic: %v\n%s", v, debug.Stack())}
			}
		}()
		value, err := task(ctx)
		results <- taskResult{value: value, err: err}
	}()

	select {
	case r := <-results:
		// A task that surfaces the expired deadline itself reports the
		// same fault as one that never returned.
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) && ctx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return r.value, r.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &TimeoutError{Timeout: timeout}
		}
		return nil, ctx.Err()
	}
}

// ResourceFunc materializes a process-lifetime resource and returns its
// release operation. A nil release means the resource needs no teardown.
type ResourceFunc func(ctx context.Context) (interface{}, ReleaseFunc, error)

// EnterResource runs a setup block once and keeps the resulting object
// alive until Shutdown. Resources are released in reverse order of entry.
func (b *Bridge) EnterResource(ctx context.Context, setup ResourceFunc) (interface{}, error) {
	value, release, err := setup(ctx)
	if err != nil {
		return nil, err
	}
	if release != nil {
		b.mu.Lock()
		b.releases = append(b.releases, release)
		b.mu.Unlock()
	}
	return value, nil
}

// Shutdown releases the entered resources in reverse order. Release
// failures are logged and never raised past teardown. Shutdown runs at
// most once.
func (b *Bridge) Shutdown(ctx context.Context) {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	b.done = true
	releases := b.releases
	b.releases = nil
	b.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		b.release(ctx, releases[i])
	}
}

func (b *Bridge) release(ctx context.Context, release ReleaseFunc) {
	defer func() {
		if v := recover(); v != nil {
			b.logger.Error().Interface("panic", v).Msg("resource release panicked")
		}
	}()
	if err := release(ctx); err != nil {
		b.logger.Error().Err(err).Msg("resource release failed")
	}
}
