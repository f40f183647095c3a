package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/workers"
)

// NewClientSyncJob returns a worker that asks orchestrator for a background
// pull every interval. A non-positive interval falls back to
// workers.DefaultPeriodicInterval. The job is idle until Start is called.
func NewClientSyncJob(orchestrator SyncOrchestrator, interval time.Duration) workers.Worker {
	return workers.NewPeriodicJob(interval, func(context.Context) {
		orchestrator.TriggerBackgroundSync()
	})
}
