// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ReadingStatus describes where the owner is with a book.
type ReadingStatus string

const (
	// StatusToRead marks a book that is owned or tracked but not started.
	StatusToRead ReadingStatus = "to_read"

	// StatusReading marks a book that is currently being read.
	StatusReading ReadingStatus = "reading"

	// StatusRead marks a finished book.
	StatusRead ReadingStatus = "read"

	// StatusAbandoned marks a book the owner stopped reading.
	StatusAbandoned ReadingStatus = "abandoned"
)

// Valid reports whether s is one of the known reading statuses.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead, StatusAbandoned:
		return true
	}
	return false
}

// ParseReadingStatus converts raw into a [ReadingStatus]. An empty string
// maps to [StatusToRead].
func ParseReadingStatus(raw string) (ReadingStatus, error) {
	if raw == "" {
		return StatusToRead, nil
	}
	s := ReadingStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown reading status %q", raw)
	}
	return s, nil
}

// WishlistStatus describes whether a book is wanted, on its way or owned.
type WishlistStatus string

const (
	// WishlistNone means the book is not on the wishlist.
	WishlistNone WishlistStatus = "none"

	// WishlistWanted means the owner wants to acquire the book.
	WishlistWanted WishlistStatus = "wanted"

	// WishlistOrdered means the book was ordered and has not arrived yet.
	WishlistOrdered WishlistStatus = "ordered"

	// WishlistOwned means the book has been acquired.
	WishlistOwned WishlistStatus = "owned"
)

// Valid reports whether s is one of the known wishlist statuses.
func (s WishlistStatus) Valid() bool {
	switch s {
	case WishlistNone, WishlistWanted, WishlistOrdered, WishlistOwned:
		return true
	}
	return false
}

// ParseWishlistStatus converts raw into a [WishlistStatus]. An empty string
// maps to [WishlistNone].
func ParseWishlistStatus(raw string) (WishlistStatus, error) {
	if raw == "" {
		return WishlistNone, nil
	}
	s := WishlistStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown wishlist status %q", raw)
	}
	return s, nil
}
