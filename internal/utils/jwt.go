package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when a token string cannot be parsed as a JWT.
// The server is free to issue opaque tokens, so callers usually treat it as
// "expiry unknown" rather than as a failure.
var ErrNotJWT = errors.New("token is not a JWT")

// TokenExpiry extracts the exp claim of tokenString without verifying its
// signature. The client never holds the server's signing key; the claim is
// only used to avoid restoring a session that is certainly dead.
//
// Returns:
//
//	time.Time - expiry moment; zero if the token carries no exp claim
//	error     - wraps ErrNotJWT if the string is not a parseable JWT
//
// Example usage:
//
//	exp, err := utils.TokenExpiry(token)
//	if err == nil && !exp.IsZero() && exp.Before(time.Now()) {
//	    // token already expired
//	}
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString is a JWT whose exp claim is
// not after now. Opaque tokens and JWTs without exp are never expired.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil || exp.IsZero() {
		return false
	}

	return !exp.After(now)
}
