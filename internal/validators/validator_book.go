package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-book-keeper/models"
)

const (
	FieldTitle          = "title"
	FieldStatus         = "status"
	FieldWishlistStatus = "wishlist_status"
	FieldRating         = "rating"
	FieldSagaVolume     = "saga_volume"
)

const maxTitleLength = 256

var allBookFields = []string{FieldTitle, FieldStatus, FieldWishlistStatus, FieldRating, FieldSagaVolume}

type BookValidator struct{}

func NewBookValidator() Validator {
	return &BookValidator{}
}

func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		return v.validateBook(ctx, *value, fields...)
	case models.RemoteBook:
		return v.validateBook(ctx, value.ToLocal(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = allBookFields
	}

	for _, f := range fields {
		if err := checkBookField(book, f); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}

func checkBookField(book models.Book, field string) error {
	switch field {
	case FieldTitle:
		if book.Title == "" {
			return ErrEmptyTitle
		}
		if utf8.RuneCountInString(book.Title) > maxTitleLength {
			return ErrTitleTooLong
		}
	case FieldStatus:
		// empty status is stored as to_read
		if book.Status != "" && !book.Status.Valid() {
			return ErrInvalidStatus
		}
	case FieldWishlistStatus:
		if book.WishlistStatus != "" && !book.WishlistStatus.Valid() {
			return ErrInvalidWishlist
		}
	case FieldRating:
		if book.Rating < 0 || book.Rating > models.MaxRating {
			return ErrInvalidRating
		}
	case FieldSagaVolume:
		if book.SagaVolume < 0 {
			return ErrInvalidSagaVolume
		}
		if book.SagaVolume > 0 && book.Saga == "" {
			return ErrSagaVolumeWithoutSaga
		}
	default:
		return ErrUnknownField
	}
	return nil
}
