package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by [ServerAdapter] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	// ErrNetwork marks failures where no HTTP response was received at all
	// (DNS, refused connection, timeout, cancelled context).
	ErrNetwork = errors.New("network error")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid server response")
)

// ResponseError is a non-2xx answer from the server. It unwraps to one of
// the sentinel errors above so callers can keep using [errors.Is].
type ResponseError struct {
	StatusCode int
	// Message is the server's explanation: the "message" or "error" field of
	// a JSON body, the raw body, or the status text.
	Message string
	Err     error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the server-provided message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message, true
	}
	return "", false
}
