package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

func TestSchedulerRunsJobsUntilCancelled(t *testing.T) {
	s := New(zap.NewNop())
	fast := atomic.NewInt64(0)
	failing := atomic.NewInt64(0)
	s.Add("fast", 5*time.Millisecond, func(ctx context.Context) error {
		fast.Inc()
		return nil
	})
	s.Add("failing", 5*time.Millisecond, func(ctx context.Context) error {
		failing.Inc()
		return errors.New("boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for fast.Load() < 3 || failing.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("jobs did not tick: fast=%d failing=%d", fast.Load(), failing.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	s.Wait()

	if s.Ticks("fast") != fast.Load() {
		t.Errorf("tick counter %d does not match runs %d", s.Ticks("fast"), fast.Load())
	}
	if s.Ticks("missing") != 0 {
		t.Error("unknown job must report zero ticks")
	}
}

func TestAddAfterStartIsIgnored(t *testing.T) {
	s := New(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	s.Add("late", time.Millisecond, func(ctx context.Context) error { return nil })
	cancel()
	s.Wait()
	if len(s.jobs) != 0 {
		t.Fatalf("expected no jobs, got %d", len(s.jobs))
	}
}
