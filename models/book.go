package models

import "time"

// MaxRating is the highest score a book can have.
const MaxRating = 5

// Book is a single item of the personal collection as it is stored on the
// device. The local store is the only mutable owner of Book values between
// sync runs.
type Book struct {
	// LocalID is the primary key of the row in the local database. It never
	// leaves the device and stays stable when the server assigns an ID.
	LocalID int64 `json:"-"`

	// ID is the server-side identifier. Zero means the book was created
	// offline and has not been pushed yet.
	ID int64 `json:"id"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	ISBN        string `json:"isbn,omitempty"`

	// Saga is the name of the series the book belongs to, if any.
	Saga string `json:"saga,omitempty"`

	// SagaVolume is the position of the book inside Saga. Zero when unknown.
	SagaVolume int `json:"saga_volume,omitempty"`

	Status         ReadingStatus  `json:"status"`
	WishlistStatus WishlistStatus `json:"wishlist_status"`

	// Rating is the owner's score from 0 (unrated) to 5.
	Rating int `json:"rating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsNew reports whether the book has never been created on the server.
func (b Book) IsNew() bool {
	return b.ID == 0
}

// TableName returns the name of the local database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
