package workers

import (
	"sync"
	"time"
)

// Scheduler runs at most one pending callback. Scheduling a new callback
// replaces the pending one instead of stacking a second timer.
type Scheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewScheduler returns an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule arranges for fn to run once after d, cancelling any callback
// that is still pending. It is a no-op after Stop.
func (s *Scheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.cancelLocked()

	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.gen != gen || s.stopped {
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.mu.Unlock()

		fn()
	})
}

// Cancel drops the pending callback, if any. A callback that already
// started keeps running.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
}

// Pending reports whether a callback is waiting to fire.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer != nil
}

// Stop cancels the pending callback and disables further scheduling.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.cancelLocked()
}

func (s *Scheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	// invalidates a callback whose timer fired but has not taken the lock yet
	s.gen++
}
