package crypto

import "errors"

var (
	// ErrEmptyHashKey is returned when a sealer is built without a key.
	ErrEmptyHashKey = errors.New("hash key is empty")
	// ErrSealedTokenCorrupted is returned when a sealed blob cannot be
	// decoded or authenticated (wrong key, truncated or altered data).
	ErrSealedTokenCorrupted = errors.New("sealed token is corrupted")
)
