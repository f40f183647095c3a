// Package broadcast provides an observable value cell: a single current
// value that can be read without locking and watched by any number of
// subscribers.
//
// A subscriber always receives the current value immediately on
// subscription and then every later value. Delivery never blocks the
// writer: a subscriber that falls behind skips intermediate values and
// sees only the latest one.
package broadcast

import (
	"context"
	"sync"
	"sync/atomic"
)

// Value is an observable cell holding a value of type T.
// The zero Value is not usable; construct it with [NewValue].
type Value[T any] struct {
	cur atomic.Pointer[T]

	mu     sync.Mutex
	subs   map[chan T]struct{}
	closed bool
	done   chan struct{}

	// watchers tracks the per-subscriber goroutines waiting on ctx or done.
	watchers sync.WaitGroup
}

// NewValue returns a cell holding initial.
func NewValue[T any](initial T) *Value[T] {
	v := &Value[T]{subs: make(map[chan T]struct{}), done: make(chan struct{})}
	v.cur.Store(&initial)
	return v
}

// Get returns the current value. It never blocks.
func (v *Value[T]) Get() T {
	return *v.cur.Load()
}

// Set publishes val to the cell and to every subscriber.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.publish(val)
}

// Update atomically replaces the current value with fn(current) when fn
// reports ok. It returns whether the value was replaced. fn must not call
// back into v.
func (v *Value[T]) Update(fn func(current T) (next T, ok bool)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	next, ok := fn(*v.cur.Load())
	if !ok {
		return false
	}
	v.publish(next)
	return true
}

func (v *Value[T]) publish(val T) {
	v.cur.Store(&val)
	for ch := range v.subs {
		offer(ch, val)
	}
}

// Subscribe returns a channel that first yields the current value and then
// every subsequent one. The channel is closed when ctx is done or the cell
// is closed.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		close(ch)
		return ch
	}
	ch <- *v.cur.Load()
	v.subs[ch] = struct{}{}
	v.watchers.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.watchers.Done()
		select {
		case <-ctx.Done():
			v.unsubscribe(ch)
		case <-v.done:
		}
	}()

	return ch
}

func (v *Value[T]) unsubscribe(ch chan T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.subs[ch]; ok {
		delete(v.subs, ch)
		close(ch)
	}
}

// Close closes every subscriber channel and releases their context
// watchers. Later Set calls still update the current value but have no
// subscribers to notify. Close is idempotent.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	close(v.done)
	for ch := range v.subs {
		delete(v.subs, ch)
		close(ch)
	}
}

// offer delivers val without blocking. If the subscriber has not consumed
// the previous value yet, that value is dropped in favour of val.
// Callers hold v.mu, so there is exactly one sender per channel.
func offer[T any](ch chan T, val T) {
	select {
	case ch <- val:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- val
}
