package workers

import (
	"context"
	"sync"
)

// Workers starts a fixed set of workers in order and stops them in reverse
// order exactly once.
type Workers struct {
	workers []Worker

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewWorkers groups ws. Nil entries are ignored.
func NewWorkers(ws ...Worker) *Workers {
	list := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			list = append(list, w)
		}
	}
	return &Workers{workers: list}
}

// Start starts every worker in registration order. Subsequent calls are
// no-ops.
func (w *Workers) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		for _, worker := range w.workers {
			worker.Start(ctx)
		}
	})
}

// Stop stops every worker in reverse registration order. Subsequent calls
// are no-ops.
func (w *Workers) Stop() {
	w.stopOnce.Do(func() {
		for i := len(w.workers) - 1; i >= 0; i-- {
			w.workers[i].Stop()
		}
	})
}
