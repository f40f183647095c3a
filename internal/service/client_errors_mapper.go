// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-book-keeper/internal/adapter"
	"github.com/MKhiriev/go-book-keeper/internal/store"
)

// user-facing messages published in AuthError, ConnectionError and SyncError
const (
	MsgNotAuthenticated   = "Not authenticated"
	MsgNetworkUnavailable = "Cannot reach the server"
	MsgUnauthorized       = "Invalid credentials or session expired"
	MsgServerUnavailable  = "Server is unavailable, try again later"
	MsgTooManyRequests    = "Too many requests, try again later"
	MsgInvalidResponse    = "Unexpected response from the server"
	MsgLocalStorage       = "Local storage error"
)

// errorMessage turns an error returned by the adapter, the store or this
// package into the text shown to the user. The server's own explanation
// wins when the response carried one.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return MsgNotAuthenticated
	case errors.Is(err, ErrEmptyCredentials), errors.Is(err, ErrEmptyRegistration):
		return err.Error()
	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return MsgNetworkUnavailable
	}

	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgUnauthorized
	case errors.Is(err, adapter.ErrServerUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return MsgServerUnavailable
	case errors.Is(err, adapter.ErrTooManyRequests):
		return MsgTooManyRequests
	case errors.Is(err, adapter.ErrInvalidResponse):
		return MsgInvalidResponse
	case errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrBeginningTransaction),
		errors.Is(err, store.ErrCommitingTransaction),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrScanningRow),
		errors.Is(err, store.ErrScanningRows),
		errors.Is(err, store.ErrBookNotSaved):
		return MsgLocalStorage
	}

	return err.Error()
}
