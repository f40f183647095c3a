// Package workers provides the lifecycle primitives shared by the client's
// long-lived components: the Worker contract, the Workers aggregate that
// starts and stops them together, a replaceable one-shot Scheduler and a
// PeriodicJob driven by a ticker.
package workers

import "context"

// Worker is implemented by every component that owns background
// goroutines. Start launches them and returns immediately; Stop cancels
// them. Stop must be safe to call more than once and before Start.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() {
//	    if w.cancel != nil {
//	        w.cancel()
//	    }
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
