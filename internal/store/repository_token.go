package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lcmendes/weather-gist/internal/logger"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository] over the "revoked_tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// Revoke records the token identifier as revoked. Revoking an already revoked
// token is a no-op, so logout stays idempotent.
func (r *tokenRepository) Revoke(ctx context.Context, tokenID string, userID int64, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, revokeToken, tokenID, userID, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.Revoke").Str("token_id", tokenID).Msg("error revoking token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// IsRevoked reports whether the token identifier is present in the
// revocation table.
func (r *tokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	log := logger.FromContext(ctx)

	var revoked bool
	row := r.db.QueryRowContext(ctx, isTokenRevoked, tokenID)
	if err := row.Scan(&revoked); err != nil {
		log.Err(err).Str("func", "*tokenRepository.IsRevoked").Str("token_id", tokenID).Msg("error checking token revocation")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return revoked, nil
}
