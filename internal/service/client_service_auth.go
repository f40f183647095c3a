package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/broadcast"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/internal/workers"
	"github.com/MKhiriev/go-book-keeper/models"
)

// DefaultReverifyInterval is the pause between passive session checks.
const DefaultReverifyInterval = 24 * time.Hour

type authStateManager struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter

	reverifyInterval time.Duration
	state            *broadcast.Value[models.AuthState]
	reverify         *workers.Scheduler
	scope            *workers.Scope
	now              func() time.Time

	logger *logger.Logger
}

// NewAuthStateManager creates a manager in the NotAuthenticated state. A
// non-positive reverifyInterval falls back to DefaultReverifyInterval.
func NewAuthStateManager(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, reverifyInterval time.Duration, logger *logger.Logger) AuthStateManager {
	if reverifyInterval <= 0 {
		reverifyInterval = DefaultReverifyInterval
	}

	return &authStateManager{
		sessions:         sessions,
		adapter:          serverAdapter,
		reverifyInterval: reverifyInterval,
		state:            broadcast.NewValue[models.AuthState](models.NotAuthenticated{}),
		reverify:         workers.NewScheduler(),
		scope:            workers.NewScope(),
		now:              time.Now,
		logger:           logger.WithComponent("auth"),
	}
}

func (s *authStateManager) Start(ctx context.Context) {
	s.scope.Start(ctx)
	s.restoreSession(s.scope.Context())
}

func (s *authStateManager) Stop() {
	s.reverify.Stop()
	s.scope.Stop()
	s.state.Close()
}

// restoreSession publishes the cached session before any network call and
// then verifies it in the background.
func (s *authStateManager) restoreSession(ctx context.Context) {
	user, token, err := s.cachedSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Warn().Err(err).Str("func", "authStateManager.restoreSession").Msg("discarding cached session")
		}
		if err = s.sessions.Clear(ctx); err != nil {
			s.logger.Err(err).Str("func", "authStateManager.restoreSession").Msg("error clearing cached session")
		}
		s.adapter.SetToken("")
		s.state.Set(models.NotAuthenticated{})
		return
	}

	s.adapter.SetToken(token)
	s.state.Set(models.Authenticated{User: user, Token: token})
	s.logger.Info().Int64("user_id", user.ID).Str("func", "authStateManager.restoreSession").Msg("session restored from cache")

	s.scope.Go(func(ctx context.Context) {
		s.verifySession(ctx, token)
	})
}

func (s *authStateManager) cachedSession(ctx context.Context) (models.User, string, error) {
	token, err := s.sessions.GetToken(ctx)
	if err != nil {
		return models.User{}, "", err
	}
	user, err := s.sessions.GetUser(ctx)
	if err != nil {
		return models.User{}, "", err
	}

	if token == "" || !user.IsComplete() {
		return models.User{}, "", ErrIncompleteSession
	}
	if utils.IsTokenExpired(token, s.now()) {
		return models.User{}, "", ErrSessionExpired
	}

	return user, token, nil
}

// verifySession is the passive re-verification. Only a rejected token logs
// the user out; network errors are logged and the next check is not
// scheduled.
func (s *authStateManager) verifySession(ctx context.Context, token string) {
	user, err := s.adapter.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			if s.CurrentToken() != token {
				return
			}
			s.logger.Info().Str("func", "authStateManager.verifySession").Msg("cached token rejected by server, logging out")
			s.Logout(ctx)
			return
		}

		s.logger.Warn().Err(err).Str("func", "authStateManager.verifySession").Msg("session verification failed, keeping cached session")
		return
	}

	// the session could have been replaced or dropped while the request was in flight
	refreshed := s.state.Update(func(cur models.AuthState) (models.AuthState, bool) {
		auth, ok := cur.(models.Authenticated)
		if !ok || auth.Token != token {
			return cur, false
		}
		return models.Authenticated{User: user, Token: token}, true
	})
	if !refreshed {
		return
	}

	if err = s.sessions.Save(ctx, user, token); err != nil {
		s.logger.Err(err).Str("func", "authStateManager.verifySession").Msg("error caching refreshed user")
	}
	s.scheduleReverify(token)
}

func (s *authStateManager) scheduleReverify(token string) {
	s.reverify.Schedule(s.reverifyInterval, func() {
		s.scope.Go(func(ctx context.Context) {
			s.verifySession(ctx, token)
		})
	})
}

func (s *authStateManager) Login(ctx context.Context, identifier, password string) error {
	s.state.Set(models.Authenticating{})

	if strings.TrimSpace(identifier) == "" || password == "" {
		return s.authFailed(ErrEmptyCredentials)
	}

	resp, err := s.adapter.Login(ctx, strings.TrimSpace(identifier), password)
	if err != nil {
		s.logger.Err(err).Str("func", "authStateManager.Login").Msg("login failed")
		return s.authFailed(fmt.Errorf("login: %w", err))
	}

	s.signIn(ctx, resp)
	return nil
}

func (s *authStateManager) Register(ctx context.Context, username, email, password string) error {
	s.state.Set(models.Authenticating{})

	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return s.authFailed(ErrEmptyRegistration)
	}

	resp, err := s.adapter.Register(ctx, username, email, password)
	if err != nil {
		s.logger.Err(err).Str("func", "authStateManager.Register").Msg("registration failed")
		return s.authFailed(fmt.Errorf("register: %w", err))
	}

	s.signIn(ctx, resp)
	return nil
}

func (s *authStateManager) authFailed(err error) error {
	s.state.Set(models.AuthError{Message: errorMessage(err)})
	return err
}

// signIn persists the credential and publishes Authenticated. A failure to
// persist only costs the session on the next start, so it is logged.
func (s *authStateManager) signIn(ctx context.Context, resp models.AuthResponse) {
	if err := s.sessions.Save(ctx, resp.User, resp.Token); err != nil {
		s.logger.Err(err).Str("func", "authStateManager.signIn").Msg("error caching session")
	}

	s.adapter.SetToken(resp.Token)
	s.state.Set(models.Authenticated{User: resp.User, Token: resp.Token})
	s.scheduleReverify(resp.Token)

	s.logger.Info().Int64("user_id", resp.User.ID).Str("func", "authStateManager.signIn").Msg("signed in")
}

func (s *authStateManager) Logout(ctx context.Context) {
	s.reverify.Cancel()

	if err := s.sessions.Clear(context.WithoutCancel(ctx)); err != nil {
		s.logger.Err(err).Str("func", "authStateManager.Logout").Msg("error clearing cached session")
	}

	s.adapter.SetToken("")
	s.state.Set(models.NotAuthenticated{})
}

func (s *authStateManager) State() models.AuthState {
	return s.state.Get()
}

func (s *authStateManager) IsAuthenticated() bool {
	_, ok := s.state.Get().(models.Authenticated)
	return ok
}

func (s *authStateManager) CurrentUser() (models.User, bool) {
	auth, ok := s.state.Get().(models.Authenticated)
	return auth.User, ok
}

func (s *authStateManager) CurrentToken() string {
	auth, _ := s.state.Get().(models.Authenticated)
	return auth.Token
}

func (s *authStateManager) Subscribe(ctx context.Context) <-chan models.AuthState {
	return s.state.Subscribe(ctx)
}
