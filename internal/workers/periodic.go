// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultPeriodicInterval is used when a PeriodicJob is created with a
// non-positive interval.
const DefaultPeriodicInterval = 5 * time.Minute

// PeriodicJob calls fn on a ticker until stopped. It implements [Worker].
type PeriodicJob struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodicJob creates a job that calls fn every interval. If interval is
// zero or negative it defaults to [DefaultPeriodicInterval]. The job is idle
// until Start is called.
func NewPeriodicJob(interval time.Duration, fn func(ctx context.Context)) *PeriodicJob {
	if interval <= 0 {
		interval = DefaultPeriodicInterval
	}
	return &PeriodicJob{interval: interval, fn: fn}
}

// Start stops any previously running loop, then launches a goroutine that
// calls fn every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *PeriodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.fn(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *PeriodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
