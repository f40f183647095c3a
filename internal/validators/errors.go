package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle            = errors.New("title is required")
	ErrTitleTooLong          = errors.New("title is too long")
	ErrInvalidStatus         = errors.New("invalid reading status")
	ErrInvalidWishlist       = errors.New("invalid wishlist status")
	ErrInvalidRating         = errors.New("rating must be between 0 and 5")
	ErrInvalidSagaVolume     = errors.New("saga volume cannot be negative")
	ErrSagaVolumeWithoutSaga = errors.New("saga volume requires a saga")
)
