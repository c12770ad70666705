package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestTickerRunsTask(t *testing.T) {
	var (
		ticker Ticker
		calls  atomic.Int32
		done   = make(chan struct{})
	)
	err := ticker.Start(context.Background(), time.Millisecond, func(ctx context.Context) error {
		if calls.Add(1) == 3 {
			close(done)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("task never ran three times")
	}
	if err := ticker.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if ticker.Running() {
		t.Error("ticker still running after Stop")
	}

	stopped := calls.Load()
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != stopped {
		t.Error("task ran after Stop returned")
	}
}

func TestTickerSingleOutstandingTask(t *testing.T) {
	var (
		ticker  Ticker
		active  atomic.Int32
		overlap atomic.Bool
	)
	task := func(ctx context.Context) error {
		if active.Add(1) > 1 {
			overlap.Store(true)
		}
		time.Sleep(100 * time.Microsecond)
		active.Add(-1)
		return nil
	}

	// rapid toggling must never leave two schedules behind
	for range 20 {
		if err := ticker.Start(context.Background(), time.Millisecond, task); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(20 * time.Millisecond)
	if err := ticker.Stop(); err != nil {
		t.Fatal(err)
	}
	if overlap.Load() {
		t.Error("two tasks ran at the same time")
	}
}

func TestTickerTaskErrorStops(t *testing.T) {
	var ticker Ticker
	boom := errors.New("boom")
	ran := make(chan struct{})
	err := ticker.Start(context.Background(), time.Millisecond, func(ctx context.Context) error {
		close(ran)
		return boom
	})
	if err != nil {
		t.Fatal(err)
	}
	<-ran
	if err := ticker.Stop(); !errors.Is(err, boom) {
		t.Errorf("Stop() = %v, want %v", err, boom)
	}
}

func TestTickerParentCancel(t *testing.T) {
	var ticker Ticker
	ctx, cancel := context.WithCancel(context.Background())
	if err := ticker.Start(ctx, time.Millisecond, func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := ticker.Stop(); err != nil {
		t.Errorf("Stop after parent cancel: %v", err)
	}
}

func TestTickerRejectsInterval(t *testing.T) {
	var ticker Ticker
	if err := ticker.Start(context.Background(), 0, func(context.Context) error { return nil }); err == nil {
		t.Error("expected error for zero interval")
	}
	if ticker.Running() {
		t.Error("ticker should not be running")
	}
	if err := ticker.Stop(); err != nil {
		t.Errorf("Stop on idle ticker: %v", err)
	}
}

func TestTickerRunningFalseAfterTaskError(t *testing.T) {
	var ticker Ticker
	boom := errors.New("boom")
	ran := make(chan struct{})
	err := ticker.Start(context.Background(), time.Millisecond, func(ctx context.Context) error {
		close(ran)
		return boom
	})
	if err != nil {
		t.Fatal(err)
	}
	<-ran

	deadline := time.Now().Add(5 * time.Second)
	for ticker.Running() {
		if time.Now().After(deadline) {
			t.Fatal("Running() still true after the task failed")
		}
		time.Sleep(time.Millisecond)
	}
	if err := ticker.Stop(); !errors.Is(err, boom) {
		t.Errorf("Stop() = %v, want %v", err, boom)
	}
}

func TestTickerStartKeepsFailedTaskError(t *testing.T) {
	var ticker Ticker
	boom := errors.New("boom")
	ran := make(chan struct{})
	err := ticker.Start(context.Background(), time.Millisecond, func(ctx context.Context) error {
		close(ran)
		return boom
	})
	if err != nil {
		t.Fatal(err)
	}
	<-ran

	// restarting must not swallow the earlier failure
	if err := ticker.Start(context.Background(), time.Millisecond, func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if !ticker.Running() {
		t.Error("restarted ticker should be running")
	}
	if err := ticker.Stop(); !errors.Is(err, boom) {
		t.Errorf("Stop() = %v, want %v", err, boom)
	}
	if err := ticker.Stop(); err != nil {
		t.Errorf("second Stop() = %v, want nil", err)
	}
}
