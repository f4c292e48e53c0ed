package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/models"
)

// currentWeatherRepository is the PostgreSQL-backed implementation of
// [CurrentWeatherRepository] over the "current_weather" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that all database interactions are traced with structured fields.
type currentWeatherRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCurrentWeatherRepository constructs a [CurrentWeatherRepository] backed
// by the provided database connection and logger.
func NewCurrentWeatherRepository(db *DB, logger *logger.Logger) CurrentWeatherRepository {
	logger.Debug().Msg("creating current weather repository")
	return &currentWeatherRepository{
		db:     db,
		logger: logger,
	}
}

// scanCurrentWeather reads a full current_weather row.
func scanCurrentWeather(row interface{ Scan(...any) error }, w *models.CurrentWeather) error {
	return row.Scan(
		&w.ID,
		&w.City,
		&w.Latitude,
		&w.Longitude,
		&w.CurrentTemperature,
		&w.FeelsLike,
		&w.TempMin,
		&w.TempMax,
		&w.Pressure,
		&w.Humidity,
		&w.Visibility,
		&w.WindSpeed,
		&w.WindDeg,
		&w.WindGust,
		&w.Cloudiness,
		&w.WeatherDescription,
		&w.ObservationTime,
		&w.Sunrise,
		&w.Sunset,
		&w.UserID,
	)
}

// Create persists one observation and returns it with the server-assigned ID.
func (r *currentWeatherRepository) Create(ctx context.Context, weather models.CurrentWeather) (models.CurrentWeather, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCurrentWeather,
		weather.City, weather.Latitude, weather.Longitude,
		weather.CurrentTemperature, weather.FeelsLike, weather.TempMin, weather.TempMax,
		weather.Pressure, weather.Humidity, weather.Visibility,
		weather.WindSpeed, weather.WindDeg, weather.WindGust, weather.Cloudiness,
		weather.WeatherDescription, weather.ObservationTime, weather.Sunrise, weather.Sunset,
		weather.UserID,
	)

	var created models.CurrentWeather
	if err := scanCurrentWeather(row, &created); err != nil {
		log.Err(err).Str("func", "*currentWeatherRepository.Create").Int64("user_id", weather.UserID).Msg("error creating weather record")
		return models.CurrentWeather{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetByID retrieves one observation owned by the given user.
// Returns [ErrWeatherRecordNotFound] for an empty result set.
func (r *currentWeatherRepository) GetByID(ctx context.Context, id, userID int64) (models.CurrentWeather, error) {
	log := logger.FromContext(ctx)

	var found models.CurrentWeather
	row := r.db.QueryRowContext(ctx, getCurrentWeatherByID, id, userID)
	if err := scanCurrentWeather(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CurrentWeather{}, ErrWeatherRecordNotFound
		}
		log.Err(err).Str("func", "*currentWeatherRepository.GetByID").Int64("id", id).Int64("user_id", userID).Msg("error finding weather record")
		return models.CurrentWeather{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllByUserID lists every observation owned by the given user.
// Returns an empty slice when no records exist.
func (r *currentWeatherRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.CurrentWeather, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCurrentWeatherByUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*currentWeatherRepository.GetAllByUserID").Int64("user_id", userID).Msg("error listing weather records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.CurrentWeather, 0, 16)
	for rows.Next() {
		var item models.CurrentWeather
		if scanErr := scanCurrentWeather(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "*currentWeatherRepository.GetAllByUserID").Int64("user_id", userID).Msg("error scanning weather row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*currentWeatherRepository.GetAllByUserID").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies the non-nil fields of the request to one observation and
// returns the updated row.
//
// Error handling:
//   - No fields to change → [ErrNothingToUpdate].
//   - No matching row for (id, user_id) → [ErrWeatherRecordNotFound].
func (r *currentWeatherRepository) Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCurrentWeatherUpdateQuery(update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.CurrentWeather{}, err
		}
		log.Err(err).Str("func", "*currentWeatherRepository.Update").Int64("id", update.ID).Msg("failed to build update query")
		return models.CurrentWeather{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.CurrentWeather
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := scanCurrentWeather(row, &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.CurrentWeather{}, ErrWeatherRecordNotFound
		}
		log.Err(scanErr).Str("func", "*currentWeatherRepository.Update").Int64("id", update.ID).Int64("user_id", update.UserID).Msg("error updating weather record")
		return models.CurrentWeather{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return updated, nil
}

// Delete removes one observation owned by the given user.
// Returns [ErrWeatherRecordNotFound] when no matching row exists.
func (r *currentWeatherRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCurrentWeather, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*currentWeatherRepository.Delete").Int64("id", id).Int64("user_id", userID).Msg("error deleting weather record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrWeatherRecordNotFound
	}

	return nil
}
