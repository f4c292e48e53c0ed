package service

import (
	"context"
	"fmt"

	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/models"
)

// forecastService fetches provider forecasts, persists every 3-hour sample
// as an individual user-owned row and exposes CRUD over the stored rows.
type forecastService struct {
	repository    store.ForecastRepository
	weatherClient adapter.WeatherClient
	logger        *logger.Logger
}

// NewForecastService constructs a ForecastService.
func NewForecastService(repository store.ForecastRepository, weatherClient adapter.WeatherClient, logger *logger.Logger) ForecastService {
	return &forecastService{
		repository:    repository,
		weatherClient: weatherClient,
		logger:        logger,
	}
}

// FetchByCity fetches the forecast for a city, stores all samples under the
// given user and returns the stored rows.
func (s *forecastService) FetchByCity(ctx context.Context, userID int64, city string) ([]models.ForecastSample, error) {
	if city == "" {
		return nil, ErrInvalidDataProvided
	}

	samples, err := s.weatherClient.ForecastByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, userID, samples)
}

// FetchByCoordinates fetches the forecast for a coordinate pair, stores all
// samples under the given user and returns the stored rows.
func (s *forecastService) FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) ([]models.ForecastSample, error) {
	samples, err := s.weatherClient.ForecastByCoordinates(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, userID, samples)
}

func (s *forecastService) persist(ctx context.Context, userID int64, samples []models.ForecastSample) ([]models.ForecastSample, error) {
	log := logger.FromContext(ctx)

	for i := range samples {
		samples[i].UserID = userID
	}

	stored, err := s.repository.CreateBatch(ctx, samples)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int("samples", len(samples)).Msg("storing forecast samples failed")
		return nil, fmt.Errorf("storing forecast samples failed: %w", err)
	}

	return stored, nil
}

// Get returns one stored forecast sample owned by the user.
func (s *forecastService) Get(ctx context.Context, id, userID int64) (models.ForecastSample, error) {
	return s.repository.GetByID(ctx, id, userID)
}

// List returns every stored forecast sample owned by the user.
func (s *forecastService) List(ctx context.Context, userID int64) ([]models.ForecastSample, error) {
	return s.repository.GetAllByUserID(ctx, userID)
}

// Update applies a partial update to one stored forecast sample.
func (s *forecastService) Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error) {
	return s.repository.Update(ctx, update)
}

// Delete removes one stored forecast sample owned by the user.
func (s *forecastService) Delete(ctx context.Context, id, userID int64) error {
	return s.repository.Delete(ctx, id, userID)
}
