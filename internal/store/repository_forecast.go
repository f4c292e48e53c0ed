package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/models"
)

// forecastRepository is the PostgreSQL-backed implementation of
// [ForecastRepository] over the "forecast_weather" table.
type forecastRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewForecastRepository constructs a [ForecastRepository] backed by the
// provided database connection and logger.
func NewForecastRepository(db *DB, logger *logger.Logger) ForecastRepository {
	logger.Debug().Msg("creating forecast repository")
	return &forecastRepository{
		db:     db,
		logger: logger,
	}
}

// scanForecast reads a full forecast_weather row.
func scanForecast(row interface{ Scan(...any) error }, f *models.ForecastSample) error {
	return row.Scan(
		&f.ID,
		&f.City,
		&f.Latitude,
		&f.Longitude,
		&f.Date,
		&f.AverageTemperature,
		&f.MinTemperature,
		&f.MaxTemperature,
		&f.WeatherDescription,
		&f.Humidity,
		&f.WindSpeed,
		&f.UserID,
	)
}

// Create persists one forecast sample and returns it with the server-assigned
// ID.
func (r *forecastRepository) Create(ctx context.Context, forecast models.ForecastSample) (models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createForecast,
		forecast.City, forecast.Latitude, forecast.Longitude, forecast.Date,
		forecast.AverageTemperature, forecast.MinTemperature, forecast.MaxTemperature,
		forecast.WeatherDescription, forecast.Humidity, forecast.WindSpeed,
		forecast.UserID,
	)

	var created models.ForecastSample
	if err := scanForecast(row, &created); err != nil {
		log.Err(err).Str("func", "*forecastRepository.Create").Int64("user_id", forecast.UserID).Msg("error creating forecast record")
		return models.ForecastSample{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// CreateBatch persists every sample of one forecast fetch inside a single
// transaction, so a provider response is stored either completely or not at
// all. Returns the stored samples with their server-assigned IDs.
func (r *forecastRepository) CreateBatch(ctx context.Context, forecasts []models.ForecastSample) ([]models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	if len(forecasts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*forecastRepository.CreateBatch").Msg("error during opening transaction")
		return nil, fmt.Errorf("error during opening transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, createForecast)
	if err != nil {
		log.Err(err).Str("func", "*forecastRepository.CreateBatch").Msg("error during preparing statement")
		return nil, err
	}
	defer stmt.Close()

	created := make([]models.ForecastSample, 0, len(forecasts))
	for idx, forecast := range forecasts {
		row := stmt.QueryRowContext(ctx,
			forecast.City, forecast.Latitude, forecast.Longitude, forecast.Date,
			forecast.AverageTemperature, forecast.MinTemperature, forecast.MaxTemperature,
			forecast.WeatherDescription, forecast.Humidity, forecast.WindSpeed,
			forecast.UserID,
		)

		var saved models.ForecastSample
		if scanErr := scanForecast(row, &saved); scanErr != nil {
			log.Err(scanErr).Str("func", "*forecastRepository.CreateBatch").Int("iteration", idx).Msg("error saving forecast sample")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		created = append(created, saved)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*forecastRepository.CreateBatch").Msg("error committing transaction")
		return nil, commitErr
	}

	return created, nil
}

// GetByID retrieves one forecast sample owned by the given user.
// Returns [ErrForecastRecordNotFound] for an empty result set.
func (r *forecastRepository) GetByID(ctx context.Context, id, userID int64) (models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	var found models.ForecastSample
	row := r.db.QueryRowContext(ctx, getForecastByID, id, userID)
	if err := scanForecast(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ForecastSample{}, ErrForecastRecordNotFound
		}
		log.Err(err).Str("func", "*forecastRepository.GetByID").Int64("id", id).Int64("user_id", userID).Msg("error finding forecast record")
		return models.ForecastSample{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllByUserID lists every forecast sample owned by the given user ordered
// by date. Returns an empty slice when no records exist.
func (r *forecastRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllForecastsByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*forecastRepository.GetAllByUserID").Int64("user_id", userID).Msg("error listing forecast records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ForecastSample, 0, 40)
	for rows.Next() {
		var item models.ForecastSample
		if scanErr := scanForecast(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "*forecastRepository.GetAllByUserID").Int64("user_id", userID).Msg("error scanning forecast row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*forecastRepository.GetAllByUserID").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies the non-nil fields of the request to one forecast sample
// and returns the updated row.
func (r *forecastRepository) Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildForecastUpdateQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.ForecastSample{}, err
		}
		log.Err(err).Str("func", "*forecastRepository.Update").Int64("id", update.ID).Msg("failed to build update query")
		return models.ForecastSample{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.ForecastSample
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := scanForecast(row, &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ForecastSample{}, ErrForecastRecordNotFound
		}
		log.Err(scanErr).Str("func", "*forecastRepository.Update").Int64("id", update.ID).Int64("user_id", update.UserID).Msg("error updating forecast record")
		return models.ForecastSample{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return updated, nil
}

// Delete removes one forecast sample owned by the given user.
// Returns [ErrForecastRecordNotFound] when no matching row exists.
func (r *forecastRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteForecast, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*forecastRepository.Delete").Int64("id", id).Int64("user_id", userID).Msg("error deleting forecast record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrForecastRecordNotFound
	}

	return nil
}
