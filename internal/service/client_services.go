package service

import (
	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
)

type ClientServices struct {
	Auth       AuthStateManager
	Connection ConnectionStateManager
	Sync       SyncOrchestrator
	SyncJob    workers.Worker
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	auth := NewAuthStateManager(storages.SessionRepository, serverAdapter, cfg.ReverifyInterval, logger)
	connection := NewConnectionStateManager(auth, serverAdapter, cfg.ProbeInterval, logger)
	orchestrator := NewSyncOrchestrator(auth, connection, serverAdapter, storages.BookRepository, logger)

	return &ClientServices{
		Auth:       auth,
		Connection: connection,
		Sync:       orchestrator,
		SyncJob:    NewClientSyncJob(orchestrator, cfg.SyncInterval),
	}
}

// Workers groups the services in start order: auth restores the session
// before connection subscribes to it, and the sync job starts last.
func (s *ClientServices) Workers() *workers.Workers {
	return workers.NewWorkers(s.Auth, s.Connection, s.Sync, s.SyncJob)
}
