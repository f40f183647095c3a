package service

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AuthStateManager owns the authentication lifecycle of the client: it
// restores the cached session on start, signs users in and out and
// periodically re-verifies the session with the server.
//
// State changes are published through Subscribe. Every method is safe for
// concurrent use.
type AuthStateManager interface {
	// Start restores the cached session. When a complete session is found
	// the manager publishes Authenticated right away and verifies the
	// session with the server in the background. Otherwise the cache is
	// cleared and NotAuthenticated is published.
	Start(ctx context.Context)

	// Stop cancels the pending re-verification and waits for background
	// calls to return.
	Stop()

	// Login signs in with a username or e-mail and a password. The outcome
	// is both returned and published: Authenticated on success, AuthError
	// otherwise.
	Login(ctx context.Context, identifier, password string) error

	// Register creates an account and signs in with it. Same reporting as
	// Login.
	Register(ctx context.Context, username, email, password string) error

	// Logout clears the cached session and publishes NotAuthenticated. It
	// never fails: storage errors are logged.
	Logout(ctx context.Context)

	// State returns the current state without blocking.
	State() models.AuthState

	// IsAuthenticated reports whether the current state is Authenticated.
	IsAuthenticated() bool

	// CurrentUser returns the signed-in user, if any.
	CurrentUser() (models.User, bool)

	// CurrentToken returns the token of the signed-in user, or "".
	CurrentToken() string

	// Subscribe streams the current state and every later one until ctx
	// is done.
	Subscribe(ctx context.Context) <-chan models.AuthState
}

// ConnectionStateManager tracks whether the server is reachable. It follows
// the auth stream and also accepts direct writes from the sync
// orchestrator.
type ConnectionStateManager interface {
	// Start subscribes to the auth stream.
	Start(ctx context.Context)

	// Stop drops the auth subscription and the scheduled probe.
	Stop()

	// ProbeNow runs one reachability probe and returns its error. It
	// returns ErrNotAuthenticated without probing when no user is signed
	// in, and nil without probing while a sync is in flight.
	ProbeNow(ctx context.Context) error

	SetSyncing()
	SetOnline()
	SetError(message string)
	SetOffline()

	// State returns the current state without blocking.
	State() models.ConnectionState

	IsOnline() bool
	IsSyncing() bool
	IsOffline() bool

	// Subscribe streams the current state and every later one until ctx
	// is done.
	Subscribe(ctx context.Context) <-chan models.ConnectionState
}

// SyncOrchestrator moves books between the local store and the server.
// Every operation requires an authenticated user and reports its outcome
// as a models.SyncResult instead of an error.
type SyncOrchestrator interface {
	Start(ctx context.Context)
	Stop()

	// Pull replaces the local collection with the server's.
	Pull(ctx context.Context) models.SyncResult

	// Push sends every local book to the server, one at a time. Failed
	// books do not stop the run; they are counted in a SyncPartial.
	Push(ctx context.Context) models.SyncResult

	// FullSync pulls and then pushes. A failed pull is returned as is and
	// nothing is pushed.
	FullSync(ctx context.Context) models.SyncResult

	// SyncSingleItem creates or updates one book on the server and stores
	// the server's copy locally. It reports whether that succeeded.
	SyncSingleItem(ctx context.Context, book models.Book) bool

	// TriggerBackgroundSync starts a pull in the background when a user is
	// signed in and the server is online. Failures are only logged.
	TriggerBackgroundSync()

	// LastResult returns the most recent result, or nil before the first
	// run.
	LastResult() models.SyncResult

	// Subscribe streams the last result and every later one until ctx is
	// done. The first value is nil when nothing has run yet.
	Subscribe(ctx context.Context) <-chan models.SyncResult
}
