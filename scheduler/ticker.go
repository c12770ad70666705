package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Task is run once per tick. Returning an error stops the ticker.
type Task func(ctx context.Context) error

// Ticker runs at most one repeating task at a time.
//
// Starting a new task first cancels the outstanding one and waits for it
// to return, so rapid restarts never leave two schedules running.
// Stop and Start must not be called from inside a Task.
type Ticker struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
	done   chan struct{} // closed once the task goroutine returns
	err    error         // first task error not yet returned by Stop
}

// Start cancels any running task and schedules task every interval
func (t *Ticker) Start(ctx context.Context, interval time.Duration, task Task) error {
	if interval <= 0 {
		return errors.Errorf("[Ticker.Start] interval must be positive: %+v", interval)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// a failed previous run keeps its error for the next Stop
	t.stopLocked()

	ctx, cancel := context.WithCancel(ctx)
	eg, egCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	eg.Go(func() error {
		defer close(done)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case <-tick.C:
				if err := task(egCtx); err != nil {
					return errors.Wrap(err, "[Ticker] task failed")
				}
			}
		}
	})

	t.cancel = cancel
	t.group = eg
	t.done = done
	return nil
}

// Stop cancels the running task and waits for it to return.
// It returns the first task error seen since the last Stop, if any.
func (t *Ticker) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	err := t.err
	t.err = nil
	return err
}

// Running reports whether a task is scheduled and still ticking
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.group == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Ticker) stopLocked() {
	if t.group == nil {
		return
	}
	t.cancel()
	if err := t.group.Wait(); err != nil && t.err == nil {
		t.err = err
	}
	t.cancel, t.group, t.done = nil, nil, nil
}
