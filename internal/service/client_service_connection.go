package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/broadcast"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
	"github.com/MKhiriev/go-book-keeper/models"
)

// DefaultProbeInterval is the pause between periodic reachability probes.
const DefaultProbeInterval = 30 * time.Second

type connectionStateManager struct {
	auth    AuthStateManager
	adapter adapter.ServerAdapter

	probeInterval time.Duration
	state         *broadcast.Value[models.ConnectionState]
	probes        *workers.Scheduler
	scope         *workers.Scope

	logger *logger.Logger
}

// NewConnectionStateManager creates a manager in the Offline state. It
// starts following auth on Start. A non-positive probeInterval falls back
// to DefaultProbeInterval.
func NewConnectionStateManager(auth AuthStateManager, serverAdapter adapter.ServerAdapter, probeInterval time.Duration, logger *logger.Logger) ConnectionStateManager {
	if probeInterval <= 0 {
		probeInterval = DefaultProbeInterval
	}

	return &connectionStateManager{
		auth:          auth,
		adapter:       serverAdapter,
		probeInterval: probeInterval,
		state:         broadcast.NewValue[models.ConnectionState](models.Offline{}),
		probes:        workers.NewScheduler(),
		scope:         workers.NewScope(),
		logger:        logger.WithComponent("connection"),
	}
}

func (s *connectionStateManager) Start(ctx context.Context) {
	s.scope.Start(ctx)

	authStates := s.auth.Subscribe(s.scope.Context())
	s.scope.Go(func(ctx context.Context) {
		for state := range authStates {
			s.onAuthState(ctx, state)
		}
	})
}

func (s *connectionStateManager) Stop() {
	s.probes.Stop()
	s.scope.Stop()
	s.state.Close()
}

func (s *connectionStateManager) onAuthState(ctx context.Context, state models.AuthState) {
	switch st := state.(type) {
	case models.Authenticated:
		s.probe(ctx, false)
	case models.NotAuthenticated:
		s.probes.Cancel()
		s.state.Set(models.Offline{})
	case models.AuthError:
		s.probes.Cancel()
		s.state.Set(models.ConnectionError{Message: st.Message})
	case models.Authenticating:
		// unchanged until the attempt completes
	}
}

// probe tests reachability and publishes the outcome. It is skipped while a
// sync is in flight. The first successful probe starts the periodic ones;
// a periodic probe keeps rescheduling itself while the user stays signed in,
// skipped or not.
func (s *connectionStateManager) probe(ctx context.Context, periodic bool) error {
	if s.IsSyncing() {
		if periodic {
			s.schedulePeriodicProbe()
		}
		return nil
	}

	err := s.adapter.TestConnection(ctx)
	if !s.auth.IsAuthenticated() {
		return err
	}

	var next models.ConnectionState = models.Online{}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "connectionStateManager.probe").Msg("server is unreachable")
		next = models.ConnectionError{Message: errorMessage(err)}
	}
	s.state.Update(func(cur models.ConnectionState) (models.ConnectionState, bool) {
		if _, syncing := cur.(models.Syncing); syncing {
			return cur, false
		}
		return next, true
	})

	if err == nil || periodic {
		s.schedulePeriodicProbe()
	}
	return err
}

func (s *connectionStateManager) schedulePeriodicProbe() {
	s.probes.Schedule(s.probeInterval, func() {
		s.scope.Go(func(ctx context.Context) {
			if s.auth.IsAuthenticated() {
				_ = s.probe(ctx, true)
			}
		})
	})
}

func (s *connectionStateManager) ProbeNow(ctx context.Context) error {
	if !s.auth.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return s.probe(ctx, false)
}

func (s *connectionStateManager) SetSyncing() {
	s.state.Set(models.Syncing{})
}

func (s *connectionStateManager) SetOnline() {
	s.state.Set(models.Online{})
}

func (s *connectionStateManager) SetError(message string) {
	s.state.Set(models.ConnectionError{Message: message})
}

func (s *connectionStateManager) SetOffline() {
	s.state.Set(models.Offline{})
}

func (s *connectionStateManager) State() models.ConnectionState {
	return s.state.Get()
}

func (s *connectionStateManager) IsOnline() bool {
	_, ok := s.state.Get().(models.Online)
	return ok
}

func (s *connectionStateManager) IsSyncing() bool {
	_, ok := s.state.Get().(models.Syncing)
	return ok
}

func (s *connectionStateManager) IsOffline() bool {
	_, ok := s.state.Get().(models.Offline)
	return ok
}

func (s *connectionStateManager) Subscribe(ctx context.Context) <-chan models.ConnectionState {
	return s.state.Subscribe(ctx)
}
