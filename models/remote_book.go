package models

import "time"

// RemoteBook is the wire representation of a book exchanged with the
// server. Enum fields travel as plain strings so that an unknown value sent
// by a newer server does not break decoding.
type RemoteBook struct {
	ID             int64      `json:"id,omitempty"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Description    string     `json:"description,omitempty"`
	ISBN           string     `json:"isbn,omitempty"`
	Saga           string     `json:"saga,omitempty"`
	SagaVolume     int        `json:"saga_volume,omitempty"`
	Status         string     `json:"status"`
	WishlistStatus string     `json:"wishlist_status"`
	Rating         int        `json:"rating,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// ToLocal translates the wire representation into a [Book]. Unknown enum
// values fall back to [StatusToRead] and [WishlistNone]. Rating is clamped
// to 0..[MaxRating] and a negative SagaVolume becomes 0. Missing timestamps
// become the zero time. LocalID is left unset.
func (r RemoteBook) ToLocal() Book {
	status, err := ParseReadingStatus(r.Status)
	if err != nil {
		status = StatusToRead
	}
	wishlist, err := ParseWishlistStatus(r.WishlistStatus)
	if err != nil {
		wishlist = WishlistNone
	}

	book := Book{
		ID:             r.ID,
		Title:          r.Title,
		Author:         r.Author,
		Description:    r.Description,
		ISBN:           r.ISBN,
		Saga:           r.Saga,
		SagaVolume:     max(r.SagaVolume, 0),
		Status:         status,
		WishlistStatus: wishlist,
		Rating:         min(max(r.Rating, 0), MaxRating),
	}
	if r.CreatedAt != nil {
		book.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		book.UpdatedAt = *r.UpdatedAt
	}

	return book
}

// RemoteBookFromLocal builds the wire representation of b.
func RemoteBookFromLocal(b Book) RemoteBook {
	r := RemoteBook{
		ID:             b.ID,
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		ISBN:           b.ISBN,
		Saga:           b.Saga,
		SagaVolume:     b.SagaVolume,
		Status:         string(b.Status),
		WishlistStatus: string(b.WishlistStatus),
		Rating:         b.Rating,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		r.CreatedAt = &createdAt
	}
	if !b.UpdatedAt.IsZero() {
		updatedAt := b.UpdatedAt
		r.UpdatedAt = &updatedAt
	}

	return r
}
