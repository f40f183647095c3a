package workers

import (
	"context"
	"sync"
)

// Scope is a long-lived background context owned by one component.
// Goroutines launched with Go share the context and are waited for on Stop.
// It implements [Worker].
type Scope struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScope returns a scope that is idle until Start is called.
func NewScope() *Scope {
	return &Scope{}
}

// Start derives the scope context from ctx. Calling Start on a running
// scope is a no-op.
func (s *Scope) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil && s.ctx.Err() == nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
}

// Context returns the scope context, or an already cancelled context when
// the scope is not running.
func (s *Scope) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return s.ctx
}

// Go runs fn in a new goroutine bound to the scope context. It reports
// false and does nothing when the scope is not running.
func (s *Scope) Go(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx == nil || s.ctx.Err() != nil {
		return false
	}

	ctx := s.ctx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(ctx)
	}()
	return true
}

// Stop cancels the scope context and waits for every goroutine started
// with Go. Safe to call more than once and before Start.
func (s *Scope) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
}
