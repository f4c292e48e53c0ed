package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/models"
)

// gistCommentRepository is the PostgreSQL-backed implementation of
// [GistCommentRepository] over the "gist_comments" table.
type gistCommentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGistCommentRepository constructs a [GistCommentRepository] backed by the
// provided database connection and logger.
func NewGistCommentRepository(db *DB, logger *logger.Logger) GistCommentRepository {
	logger.Debug().Msg("creating gist comment repository")
	return &gistCommentRepository{
		db:     db,
		logger: logger,
	}
}

// scanGistComment reads a full gist_comments row.
func scanGistComment(row interface{ Scan(...any) error }, g *models.GistComment) error {
	return row.Scan(
		&g.ID,
		&g.City,
		&g.Latitude,
		&g.Longitude,
		&g.CommentDate,
		&g.CurrentTemperature,
		&g.WeatherDescription,
		&g.ForecastDay1Date,
		&g.ForecastDay1Temperature,
		&g.ForecastDay2Date,
		&g.ForecastDay2Temperature,
		&g.ForecastDay3Date,
		&g.ForecastDay3Temperature,
		&g.ForecastDay4Date,
		&g.ForecastDay4Temperature,
		&g.ForecastDay5Date,
		&g.ForecastDay5Temperature,
		&g.GithubCommentID,
		&g.UserID,
	)
}

// Create persists one published digest record and returns it with the
// server-assigned ID.
func (r *gistCommentRepository) Create(ctx context.Context, comment models.GistComment) (models.GistComment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGistComment,
		comment.City, comment.Latitude, comment.Longitude, comment.CommentDate,
		comment.CurrentTemperature, comment.WeatherDescription,
		comment.ForecastDay1Date, comment.ForecastDay1Temperature,
		comment.ForecastDay2Date, comment.ForecastDay2Temperature,
		comment.ForecastDay3Date, comment.ForecastDay3Temperature,
		comment.ForecastDay4Date, comment.ForecastDay4Temperature,
		comment.ForecastDay5Date, comment.ForecastDay5Temperature,
		comment.GithubCommentID, comment.UserID,
	)

	var created models.GistComment
	if err := scanGistComment(row, &created); err != nil {
		log.Err(err).Str("func", "*gistCommentRepository.Create").Int64("user_id", comment.UserID).Msg("error creating gist comment record")
		return models.GistComment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetByID retrieves one digest record owned by the given user.
// Returns [ErrGistCommentNotFound] for an empty result set.
func (r *gistCommentRepository) GetByID(ctx context.Context, id, userID int64) (models.GistComment, error) {
	log := logger.FromContext(ctx)

	var found models.GistComment
	row := r.db.QueryRowContext(ctx, getGistCommentByID, id, userID)
	if err := scanGistComment(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.GistComment{}, ErrGistCommentNotFound
		}
		log.Err(err).Str("func", "*gistCommentRepository.GetByID").Int64("id", id).Int64("user_id", userID).Msg("error finding gist comment record")
		return models.GistComment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllByUserID lists every digest record owned by the given user.
// Returns an empty slice when no records exist.
func (r *gistCommentRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.GistComment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllGistCommentsByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*gistCommentRepository.GetAllByUserID").Int64("user_id", userID).Msg("error listing gist comment records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.GistComment, 0, 16)
	for rows.Next() {
		var item models.GistComment
		if scanErr := scanGistComment(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "*gistCommentRepository.GetAllByUserID").Int64("user_id", userID).Msg("error scanning gist comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*gistCommentRepository.GetAllByUserID").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies the non-nil fields of the request to one digest record and
// returns the updated row. The remote comment is untouched.
func (r *gistCommentRepository) Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGistCommentUpdateQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.GistComment{}, err
		}
		log.Err(err).Str("func", "*gistCommentRepository.Update").Int64("id", update.ID).Msg("failed to build update query")
		return models.GistComment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.GistComment
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := scanGistComment(row, &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.GistComment{}, ErrGistCommentNotFound
		}
		log.Err(scanErr).Str("func", "*gistCommentRepository.Update").Int64("id", update.ID).Int64("user_id", update.UserID).Msg("error updating gist comment record")
		return models.GistComment{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return updated, nil
}

// Delete removes one digest record owned by the given user.
// Returns [ErrGistCommentNotFound] when no matching row exists.
func (r *gistCommentRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteGistComment, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*gistCommentRepository.Delete").Int64("id", id).Int64("user_id", userID).Msg("error deleting gist comment record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrGistCommentNotFound
	}

	return nil
}
