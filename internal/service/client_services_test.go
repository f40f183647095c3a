package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/mock"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	storages := &store.ClientStorages{
		BookRepository:    mock.NewMockLocalBookRepository(ctrl),
		SessionRepository: mock.NewMockSessionRepository(ctrl),
	}
	cfg := config.ClientWorkers{
		ReverifyInterval: time.Hour,
		ProbeInterval:    time.Minute,
		SyncInterval:     5 * time.Minute,
	}

	services := NewClientServices(storages, mock.NewMockServerAdapter(ctrl), cfg, logger.Nop())
	require.NotNil(t, services)

	auth, ok := services.Auth.(*authStateManager)
	require.True(t, ok)
	assert.Equal(t, time.Hour, auth.reverifyInterval)

	connection, ok := services.Connection.(*connectionStateManager)
	require.True(t, ok)
	assert.Equal(t, time.Minute, connection.probeInterval)
	assert.Same(t, services.Auth, connection.auth)

	orchestrator, ok := services.Sync.(*syncOrchestrator)
	require.True(t, ok)
	assert.Same(t, services.Connection, orchestrator.connection)

	assert.NotNil(t, services.SyncJob)
	assert.NotNil(t, services.Workers())
}
