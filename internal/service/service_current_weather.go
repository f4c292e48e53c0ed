package service

import (
	"context"
	"fmt"

	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/models"
)

// currentWeatherService fetches current conditions from the provider,
// persists them as user-owned snapshots and exposes CRUD over the stored
// records.
type currentWeatherService struct {
	repository    store.CurrentWeatherRepository
	weatherClient adapter.WeatherClient
	logger        *logger.Logger
}

// NewCurrentWeatherService constructs a CurrentWeatherService.
func NewCurrentWeatherService(repository store.CurrentWeatherRepository, weatherClient adapter.WeatherClient, logger *logger.Logger) CurrentWeatherService {
	return &currentWeatherService{
		repository:    repository,
		weatherClient: weatherClient,
		logger:        logger,
	}
}

// FetchByCity fetches current conditions for a city, stores the snapshot
// under the given user and returns the stored record.
func (s *currentWeatherService) FetchByCity(ctx context.Context, userID int64, city string) (models.CurrentWeather, error) {
	if city == "" {
		return models.CurrentWeather{}, ErrInvalidDataProvided
	}

	weather, err := s.weatherClient.CurrentByCity(ctx, city)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	return s.persist(ctx, userID, weather)
}

// FetchByCoordinates fetches current conditions for a coordinate pair,
// stores the snapshot under the given user and returns the stored record.
func (s *currentWeatherService) FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.CurrentWeather, error) {
	weather, err := s.weatherClient.CurrentByCoordinates(ctx, lat, lon)
	if err != nil {
		return models.CurrentWeather{}, err
	}

	return s.persist(ctx, userID, weather)
}

func (s *currentWeatherService) persist(ctx context.Context, userID int64, weather models.CurrentWeather) (models.CurrentWeather, error) {
	log := logger.FromContext(ctx)

	weather.UserID = userID
	stored, err := s.repository.Create(ctx, weather)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("city", weather.City).Msg("storing weather snapshot failed")
		return models.CurrentWeather{}, fmt.Errorf("storing weather snapshot failed: %w", err)
	}

	return stored, nil
}

// Get returns one stored observation owned by the user.
func (s *currentWeatherService) Get(ctx context.Context, id, userID int64) (models.CurrentWeather, error) {
	return s.repository.GetByID(ctx, id, userID)
}

// List returns every stored observation owned by the user.
func (s *currentWeatherService) List(ctx context.Context, userID int64) ([]models.CurrentWeather, error) {
	return s.repository.GetAllByUserID(ctx, userID)
}

// Update applies a partial update to one stored observation.
func (s *currentWeatherService) Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error) {
	return s.repository.Update(ctx, update)
}

// Delete removes one stored observation owned by the user.
func (s *currentWeatherService) Delete(ctx context.Context, id, userID int64) error {
	return s.repository.Delete(ctx, id, userID)
}
