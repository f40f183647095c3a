package store

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalBookRepository is the on-device collection of books. It is the only
// mutable owner of books between sync runs.
type LocalBookRepository interface {
	// ListAll returns every stored book ordered by insertion.
	ListAll(ctx context.Context) ([]models.Book, error)

	// Watch streams the full book list: the current list right away and a
	// fresh one after every successful mutation. Slow readers only see the
	// latest list. The channel is closed when ctx is done.
	Watch(ctx context.Context) <-chan []models.Book

	// Upsert inserts or replaces a single book and returns it with its
	// LocalID set. A non-zero LocalID replaces that row; a zero LocalID with
	// a non-zero ID replaces the row holding that server ID.
	Upsert(ctx context.Context, book models.Book) (models.Book, error)

	// UpsertMany applies Upsert to every book inside one transaction.
	UpsertMany(ctx context.Context, books []models.Book) error

	// ReplaceAll deletes every book and inserts books in one transaction.
	// Unlike Upsert it never fills in missing timestamps.
	ReplaceAll(ctx context.Context, books []models.Book) error

	// Clear deletes every book.
	Clear(ctx context.Context) error

	// Count returns the number of stored books.
	Count(ctx context.Context) (int, error)
}

// SessionRepository keeps the cached user identity and auth token between
// application runs. At most one session is stored.
type SessionRepository interface {
	// GetToken returns the cached token, or ErrSessionNotFound.
	GetToken(ctx context.Context) (string, error)

	// GetUser returns the cached user, or ErrSessionNotFound.
	GetUser(ctx context.Context) (models.User, error)

	// Save replaces the cached session with user and token.
	Save(ctx context.Context, user models.User, token string) error

	// Clear removes the cached session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error
}
