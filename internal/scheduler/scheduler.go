// Package scheduler runs named jobs on fixed intervals until its context
// is cancelled.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Job is one periodic task.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error

	ticks *atomic.Int64
}

// Scheduler owns a set of jobs.
type Scheduler struct {
	jobs    []*Job
	started *atomic.Bool
	wg      sync.WaitGroup
	log     *zap.Logger
}

func New(log *zap.Logger) *Scheduler {
	return &Scheduler{started: atomic.NewBool(false), log: log}
}

// Add registers a job. Jobs added after Start are ignored.
func (s *Scheduler) Add(name string, interval time.Duration, run func(ctx context.Context) error) {
	if s.started.Load() {
		s.log.Warn("job added after start", zap.String("job", name))
		return
	}
	s.jobs = append(s.jobs, &Job{Name: name, Interval: interval, Run: run, ticks: atomic.NewInt64(0)})
}

// Start launches one goroutine per job. It returns immediately; a second
// call does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CAS(false, true) {
		return
	}
	for _, job := range s.jobs {
		j := job
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.loop(ctx, j)
		}()
		s.log.Info("job started", zap.String("job", j.Name), zap.Duration("interval", j.Interval))
	}
}

// Wait blocks until every job goroutine has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Ticks reports how many times the named job has fired.
func (s *Scheduler) Ticks(name string) int64 {
	for _, job := range s.jobs {
		if job.Name == name {
			return job.ticks.Load()
		}
	}
	return 0
}

func (s *Scheduler) loop(ctx context.Context, job *Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job.ticks.Inc()
			if err := job.Run(ctx); err != nil {
				s.log.Error("job failed", zap.String("job", job.Name), zap.Error(err))
			}
		}
	}
}
