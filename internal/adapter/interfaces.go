// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the book server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's own explanation travels in [ResponseError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the book
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with a username or e-mail and a password. On
	// success it stores the returned bearer token via SetToken and returns
	// the user together with the token.
	Login(ctx context.Context, identifier, password string) (models.AuthResponse, error)

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the user together with the token.
	Register(ctx context.Context, username, email, password string) (models.AuthResponse, error)

	// GetProfile fetches the user the current token belongs to. Returns
	// [ErrUnauthorized] (wrapped) when the token is no longer accepted.
	GetProfile(ctx context.Context) (models.User, error)

	// TestConnection performs a cheap reachability probe against the server.
	TestConnection(ctx context.Context) error

	// ListItems returns every book the server holds for the current user.
	ListItems(ctx context.Context) ([]models.RemoteBook, error)

	// CreateItem creates book on the server and returns the stored
	// representation carrying the server-assigned ID.
	CreateItem(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error)

	// UpdateItem replaces the server-side book id with book and returns the
	// stored representation.
	UpdateItem(ctx context.Context, id int64, book models.RemoteBook) (models.RemoteBook, error)
}
