package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/mock"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc: хелпер для создания authStateManager с моками
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	reverifyInterval time.Duration,
) (
	*authStateManager,
	*mock.MockServerAdapter,
	*mock.MockSessionRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthStateManager(mockSessions, mockAdapter, reverifyInterval, logger.Nop()).(*authStateManager)
	// Stop регистрируется после контроллера, поэтому выполняется раньше ctrl.Finish
	t.Cleanup(svc.Stop)

	return svc, mockAdapter, mockSessions
}

func testUser() models.User {
	return models.User{
		ID:        7,
		Username:  "reader",
		Email:     "reader@example.com",
		Role:      "user",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		IsActive:  true,
	}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func unauthorizedErr() error {
	return &adapter.ResponseError{StatusCode: 401, Message: "token is expired or invalid", Err: adapter.ErrUnauthorized}
}

// ── NewAuthStateManager ──────────────────────────────────────────────────────

func TestNewAuthStateManager_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, 0)

	assert.Equal(t, DefaultReverifyInterval, svc.reverifyInterval)
	assert.Equal(t, models.NotAuthenticated{}, svc.State())
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.CurrentToken())

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

// ── Start: restore session ───────────────────────────────────────────────────

func TestAuthStateManager_Start_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("", store.ErrSessionNotFound)
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("")
	// GetProfile не должен вызываться, сеть без токена не трогаем

	svc.Start(context.Background())

	assert.Equal(t, models.NotAuthenticated{}, svc.State())
}

func TestAuthStateManager_Start_OptimisticBeforeNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	user := testUser()
	refreshed := user
	refreshed.Email = "new@example.com"

	release := make(chan struct{})

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("opaque-token", nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(user, nil)
	mockAdapter.EXPECT().SetToken("opaque-token")
	mockAdapter.EXPECT().GetProfile(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		<-release
		return refreshed, nil
	})
	mockSessions.EXPECT().Save(gomock.Any(), refreshed, "opaque-token").Return(nil)

	svc.Start(context.Background())

	// состояние Authenticated опубликовано до ответа сервера
	assert.Equal(t, models.Authenticated{User: user, Token: "opaque-token"}, svc.State())

	close(release)

	assert.Eventually(t, func() bool {
		return svc.State() == models.Authenticated{User: refreshed, Token: "opaque-token"}
	}, time.Second, time.Millisecond)
	assert.Eventually(t, svc.reverify.Pending, time.Second, time.Millisecond, "следующая проверка должна быть запланирована")
}

func TestAuthStateManager_Start_UnauthorizedLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("opaque-token", nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(testUser(), nil)
	mockAdapter.EXPECT().SetToken("opaque-token")
	mockAdapter.EXPECT().GetProfile(gomock.Any()).Return(models.User{}, unauthorizedErr())
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	svc.Start(context.Background())

	assert.Eventually(t, func() bool {
		return svc.State() == models.AuthState(models.NotAuthenticated{})
	}, time.Second, time.Millisecond)
	assert.False(t, svc.reverify.Pending())
}

func TestAuthStateManager_Start_NetworkErrorKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	user := testUser()
	called := make(chan struct{})

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("opaque-token", nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(user, nil)
	mockAdapter.EXPECT().SetToken("opaque-token")
	mockAdapter.EXPECT().GetProfile(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		defer close(called)
		return models.User{}, fmt.Errorf("%w: connection refused", adapter.ErrNetwork)
	})

	svc.Start(context.Background())
	<-called
	// дожидаемся завершения фоновой проверки
	svc.scope.Stop()

	assert.Equal(t, models.Authenticated{User: user, Token: "opaque-token"}, svc.State())
	assert.False(t, svc.reverify.Pending(), "после сетевой ошибки повторная проверка не планируется")
}

func TestAuthStateManager_Start_IncompleteSession(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  models.User
	}{
		{name: "empty token", token: "", user: testUser()},
		{name: "user without id", token: "opaque-token", user: models.User{Username: "reader"}},
		{name: "user without username", token: "opaque-token", user: models.User{ID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

			mockSessions.EXPECT().GetToken(gomock.Any()).Return(tt.token, nil)
			mockSessions.EXPECT().GetUser(gomock.Any()).Return(tt.user, nil)
			mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
			mockAdapter.EXPECT().SetToken("")

			svc.Start(context.Background())

			assert.Equal(t, models.NotAuthenticated{}, svc.State())
		})
	}
}

func TestAuthStateManager_Start_ExpiredJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	expired := signedToken(t, now.Add(-time.Minute))

	mockSessions.EXPECT().GetToken(gomock.Any()).Return(expired, nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(testUser(), nil)
	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	svc.Start(context.Background())

	assert.Equal(t, models.NotAuthenticated{}, svc.State())
}

func TestAuthStateManager_Start_ValidJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	token := signedToken(t, now.Add(time.Hour))

	mockSessions.EXPECT().GetToken(gomock.Any()).Return(token, nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(testUser(), nil)
	mockAdapter.EXPECT().SetToken(token)
	mockAdapter.EXPECT().GetProfile(gomock.Any()).Return(testUser(), nil)
	mockSessions.EXPECT().Save(gomock.Any(), testUser(), token).Return(nil).AnyTimes()

	svc.Start(context.Background())

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, token, svc.CurrentToken())
	svc.scope.Stop()
}

func TestAuthStateManager_Start_CorruptedSessionCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("", store.ErrSessionCorrupted)
	mockSessions.EXPECT().Clear(gomock.Any()).Return(errors.New("disk I/O error"))
	mockAdapter.EXPECT().SetToken("")

	svc.Start(context.Background())

	assert.Equal(t, models.NotAuthenticated{}, svc.State())
}

// ── Passive re-verification ──────────────────────────────────────────────────

func TestAuthStateManager_Reverify_Repeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, 10*time.Millisecond)

	user := testUser()
	calls := make(chan struct{}, 10)

	mockSessions.EXPECT().GetToken(gomock.Any()).Return("opaque-token", nil)
	mockSessions.EXPECT().GetUser(gomock.Any()).Return(user, nil)
	mockAdapter.EXPECT().SetToken("opaque-token")
	mockAdapter.EXPECT().GetProfile(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return user, nil
	}).MinTimes(3)
	mockSessions.EXPECT().Save(gomock.Any(), user, "opaque-token").Return(nil).MinTimes(3)

	svc.Start(context.Background())

	for range 3 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("re-verification did not fire")
		}
	}
	svc.Stop()
}

func TestAuthStateManager_Verify_StaleTokenIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, time.Hour)

	// пока шла проверка, пользователь вошёл под другим токеном
	svc.state.Set(models.Authenticated{User: testUser(), Token: "new-token"})

	mockAdapter.EXPECT().GetProfile(gomock.Any()).Return(models.User{ID: 99, Username: "other"}, nil)

	svc.verifySession(context.Background(), "old-token")

	assert.Equal(t, models.Authenticated{User: testUser(), Token: "new-token"}, svc.State())
	assert.False(t, svc.reverify.Pending())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthStateManager_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	resp := models.AuthResponse{User: testUser(), Token: "fresh-token"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "reader", "secret").DoAndReturn(
			func(context.Context, string, string) (models.AuthResponse, error) {
				// во время запроса наружу видно Authenticating
				assert.Equal(t, models.Authenticating{}, svc.State())
				return resp, nil
			},
		),
		mockSessions.EXPECT().Save(ctx, resp.User, resp.Token).Return(nil),
		mockAdapter.EXPECT().SetToken("fresh-token"),
	)

	err := svc.Login(ctx, "  reader ", "secret")
	require.NoError(t, err)

	assert.Equal(t, models.Authenticated{User: resp.User, Token: resp.Token}, svc.State())
	assert.True(t, svc.reverify.Pending())

	user, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, resp.User, user)
}

func TestAuthStateManager_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "reader", "wrong").Return(models.AuthResponse{},
		&adapter.ResponseError{StatusCode: 401, Message: "invalid login or password", Err: adapter.ErrUnauthorized})

	err := svc.Login(ctx, "reader", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.Equal(t, models.AuthError{Message: "invalid login or password"}, svc.State())
	assert.False(t, svc.reverify.Pending())
}

func TestAuthStateManager_Login_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "reader", "secret").Return(models.AuthResponse{},
		fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrNetwork))

	err := svc.Login(ctx, "reader", "secret")
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, models.AuthError{Message: MsgNetworkUnavailable}, svc.State())
}

func TestAuthStateManager_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Hour)

	err := svc.Login(context.Background(), "   ", "secret")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	assert.Equal(t, models.AuthError{Message: ErrEmptyCredentials.Error()}, svc.State())

	err = svc.Login(context.Background(), "reader", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestAuthStateManager_Login_SaveFailureStillAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	resp := models.AuthResponse{User: testUser(), Token: "fresh-token"}
	mockAdapter.EXPECT().Login(ctx, "reader", "secret").Return(resp, nil)
	mockSessions.EXPECT().Save(ctx, resp.User, resp.Token).Return(store.ErrExecutingStatement)
	mockAdapter.EXPECT().SetToken("fresh-token")

	require.NoError(t, svc.Login(ctx, "reader", "secret"))
	assert.True(t, svc.IsAuthenticated())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthStateManager_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	resp := models.AuthResponse{User: testUser(), Token: "fresh-token"}

	mockAdapter.EXPECT().Register(ctx, "reader", "reader@example.com", "secret").Return(resp, nil)
	mockSessions.EXPECT().Save(ctx, resp.User, resp.Token).Return(nil)
	mockAdapter.EXPECT().SetToken("fresh-token")

	err := svc.Register(ctx, "reader", " reader@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.Authenticated{User: resp.User, Token: resp.Token}, svc.State())
}

func TestAuthStateManager_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl, time.Hour)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "reader", "reader@example.com", "secret").Return(models.AuthResponse{},
		&adapter.ResponseError{StatusCode: 409, Message: "username already taken", Err: adapter.ErrConflict})

	err := svc.Register(ctx, "reader", "reader@example.com", "secret")
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, models.AuthError{Message: "username already taken"}, svc.State())
}

func TestAuthStateManager_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Hour)

	err := svc.Register(context.Background(), "reader", "", "secret")
	assert.ErrorIs(t, err, ErrEmptyRegistration)
	assert.Equal(t, models.AuthError{Message: ErrEmptyRegistration.Error()}, svc.State())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthStateManager_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	svc.state.Set(models.Authenticated{User: testUser(), Token: "tok"})
	svc.scheduleReverify("tok")
	require.True(t, svc.reverify.Pending())

	mockSessions.EXPECT().Clear(gomock.Any()).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	svc.Logout(context.Background())

	assert.Equal(t, models.NotAuthenticated{}, svc.State())
	assert.False(t, svc.reverify.Pending())
}

func TestAuthStateManager_Logout_StorageErrorStillLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	svc.state.Set(models.Authenticated{User: testUser(), Token: "tok"})

	mockSessions.EXPECT().Clear(gomock.Any()).Return(store.ErrExecutingStatement)
	mockAdapter.EXPECT().SetToken("")

	svc.Logout(context.Background())

	assert.Equal(t, models.NotAuthenticated{}, svc.State())
	assert.False(t, svc.IsAuthenticated())
}

func TestAuthStateManager_Logout_CancelledContextStillClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockSessions.EXPECT().Clear(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	})
	mockAdapter.EXPECT().SetToken("")

	svc.Logout(ctx)
	assert.Equal(t, models.NotAuthenticated{}, svc.State())
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestAuthStateManager_Subscribe_LateSubscriberSeesCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, time.Hour)

	svc.state.Set(models.Authenticated{User: testUser(), Token: "tok"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := svc.Subscribe(ctx)
	select {
	case st := <-ch:
		assert.Equal(t, models.Authenticated{User: testUser(), Token: "tok"}, st)
	case <-time.After(time.Second):
		t.Fatal("no replay of current state")
	}
}
