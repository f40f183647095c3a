// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// tokenSealer is the private implementation of [TokenSealer].
type tokenSealer struct {
	hashKey []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewTokenSealer constructs a [TokenSealer] keyed by hashKey. Argon2id runs
// on every Seal/Open, so the parameters sit at the OWASP minimum:
//   - time cost:   2 iterations
//   - memory cost: 19 MiB
//   - parallelism: 1 thread
//   - key length:  32 bytes (AES-256)
func NewTokenSealer(hashKey string) (TokenSealer, error) {
	if hashKey == "" {
		return nil, ErrEmptyHashKey
	}

	return &tokenSealer{
		hashKey:      []byte(hashKey),
		argonTime:    2,
		argonMemory:  19 * 1024, // 19 MiB
		argonThreads: 1,
		argonKeyLen:  32,
	}, nil
}

func (s *tokenSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.hashKey, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

func (s *tokenSealer) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [TokenSealer]. Output blob: salt (16) ‖ nonce (12) ‖ ciphertext.
func (s *tokenSealer) Seal(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(token)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(token), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [TokenSealer].
func (s *tokenSealer) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrSealedTokenCorrupted, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrSealedTokenCorrupted)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := s.gcm(salt)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrSealedTokenCorrupted)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// Wrong hash key surfaces here as an auth-tag mismatch.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSealedTokenCorrupted, err)
	}

	return string(plaintext), nil
}
