package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-book-keeper/internal/crypto"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

type sessionRepository struct {
	*DB
	sealer crypto.TokenSealer
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns a [SessionRepository] that seals the token
// with sealer before it reaches the database.
func NewSessionRepository(db *DB, sealer crypto.TokenSealer, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		sealer: sealer,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionRepository) GetToken(ctx context.Context) (string, error) {
	query, args, err := selectSessionQuery("sealed_token")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var sealed string
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&sealed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.GetToken").
			Msg("failed to read cached token")
		return "", fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.GetToken").
			Msg("failed to unseal cached token")
		return "", fmt.Errorf("%w: %v", ErrSessionCorrupted, err)
	}

	return token, nil
}

func (s *sessionRepository) GetUser(ctx context.Context) (models.User, error) {
	query, args, err := selectSessionQuery("user_id", "username", "email", "role", "user_created_at", "is_active")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.GetUser").
			Msg("failed to read cached user")
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return user, nil
}

func (s *sessionRepository) Save(ctx context.Context, user models.User, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}

	query, args, err := saveSessionQuery(
		user.ID,
		user.Username,
		user.Email,
		user.Role,
		user.CreatedAt,
		user.IsActive,
		sealed,
		s.now(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Save").
			Int64("user_id", user.ID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := deleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Clear").
			Msg("failed to clear session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
