package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/broadcast"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

// execQueryer is satisfied by both *sql.DB and *sql.Tx.
type execQueryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type localBookRepository struct {
	*DB
	logger *logger.Logger

	// revision is bumped after every committed mutation; Watch readers
	// re-query on each change.
	revision *broadcast.Value[uint64]
	now      func() time.Time
}

func NewLocalBookRepository(db *DB, logger *logger.Logger) LocalBookRepository {
	return &localBookRepository{
		DB:       db,
		logger:   logger,
		revision: broadcast.NewValue[uint64](0),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (l *localBookRepository) ListAll(ctx context.Context) ([]models.Book, error) {
	return l.listAll(ctx, l.DB)
}

func (l *localBookRepository) listAll(ctx context.Context, q execQueryer) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllBooksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localBookRepository.ListAll").
			Msg("failed to execute query for getting all books")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var (
			book           models.Book
			status         string
			wishlistStatus string
		)

		scanErr := rows.Scan(
			&book.LocalID,
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Description,
			&book.ISBN,
			&book.Saga,
			&book.SagaVolume,
			&status,
			&wishlistStatus,
			&book.Rating,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localBookRepository.ListAll").
				Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, scanErr)
		}
		book.Status = models.ReadingStatus(status)
		book.WishlistStatus = models.WishlistStatus(wishlistStatus)

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localBookRepository.ListAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, rowsErr)
	}

	return books, nil
}

func (l *localBookRepository) Watch(ctx context.Context) <-chan []models.Book {
	out := make(chan []models.Book, 1)
	changes := l.revision.Subscribe(ctx)

	go func() {
		defer close(out)
		for range changes {
			books, err := l.ListAll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Err(err).Str("func", "localBookRepository.Watch").Msg("failed to reload books")
				continue
			}

			// keep only the newest list for a slow reader
			select {
			case <-out:
			default:
			}
			select {
			case out <- books:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (l *localBookRepository) Upsert(ctx context.Context, book models.Book) (models.Book, error) {
	saved, err := l.upsert(ctx, l.DB, l.stamp(book))
	if err != nil {
		return models.Book{}, err
	}

	l.changed()
	return saved, nil
}

// stamp fills in missing timestamps for books written by this device.
func (l *localBookRepository) stamp(book models.Book) models.Book {
	if book.CreatedAt.IsZero() {
		book.CreatedAt = l.now()
	}
	if book.UpdatedAt.IsZero() {
		book.UpdatedAt = book.CreatedAt
	}
	return book
}

// upsert writes book as given. Timestamps are stored verbatim, zero included.
func (l *localBookRepository) upsert(ctx context.Context, q execQueryer, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if book.Status == "" {
		book.Status = models.StatusToRead
	}
	if book.WishlistStatus == "" {
		book.WishlistStatus = models.WishlistNone
	}

	query, args, err := upsertBookQuery(book)
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var localID int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&localID); err != nil {
		log.Err(err).
			Str("func", "localBookRepository.Upsert").
			Int64("local_id", book.LocalID).
			Int64("id", book.ID).
			Msg("failed to execute upsert for book")
		return models.Book{}, fmt.Errorf("%w (local_id=%d, id=%d): %v", ErrExecutingStatement, book.LocalID, book.ID, err)
	}
	if localID == 0 {
		return models.Book{}, ErrBookNotSaved
	}

	book.LocalID = localID
	return book, nil
}

func (l *localBookRepository) UpsertMany(ctx context.Context, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	err := l.inTx(ctx, func(tx *sql.Tx) error {
		for _, book := range books {
			if _, err := l.upsert(ctx, tx, l.stamp(book)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.changed()
	return nil
}

func (l *localBookRepository) ReplaceAll(ctx context.Context, books []models.Book) error {
	err := l.inTx(ctx, func(tx *sql.Tx) error {
		if err := l.clear(ctx, tx); err != nil {
			return err
		}
		for _, book := range books {
			// rows were just wiped; local ids from the caller mean nothing here.
			// Server copies are stored as received, missing timestamps stay zero.
			book.LocalID = 0
			if _, err := l.upsert(ctx, tx, book); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.changed()
	return nil
}

func (l *localBookRepository) Clear(ctx context.Context) error {
	if err := l.clear(ctx, l.DB); err != nil {
		return err
	}

	l.changed()
	return nil
}

func (l *localBookRepository) clear(ctx context.Context, q execQueryer) error {
	query, args, err := deleteAllBooksQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localBookRepository.Clear").
			Msg("failed to delete books")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localBookRepository) Count(ctx context.Context) (int, error) {
	query, args, err := countBooksQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := l.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localBookRepository.Count").
			Msg("failed to count books")
		return 0, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return count, nil
}

func (l *localBookRepository) changed() {
	l.revision.Update(func(current uint64) (uint64, bool) {
		return current + 1, true
	})
}
