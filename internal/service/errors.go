package service

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrIncompleteSession = errors.New("cached session is incomplete")
	ErrSessionExpired    = errors.New("cached token is expired")

	ErrEmptyCredentials  = errors.New("identifier and password are required")
	ErrEmptyRegistration = errors.New("username, email and password are required")
)
