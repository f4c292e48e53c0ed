package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/internal/weather"
	"github.com/lcmendes/weather-gist/models"
)

// gistCommentService runs the digest pipeline: fetch current conditions and
// forecast, aggregate to five daily averages, compose the digest text,
// publish it as a gist comment and persist the record.
//
// Each pipeline step commits independently. A publish that succeeds before a
// failed local write leaves an orphaned remote comment; no compensation runs.
type gistCommentService struct {
	repository    store.GistCommentRepository
	weatherClient adapter.WeatherClient
	gistClient    adapter.GistClient
	logger        *logger.Logger
}

// NewGistCommentService constructs a GistCommentService.
func NewGistCommentService(repository store.GistCommentRepository, weatherClient adapter.WeatherClient, gistClient adapter.GistClient, logger *logger.Logger) GistCommentService {
	return &gistCommentService{
		repository:    repository,
		weatherClient: weatherClient,
		gistClient:    gistClient,
		logger:        logger,
	}
}

// PublishByCity runs the digest pipeline for a city name.
func (s *gistCommentService) PublishByCity(ctx context.Context, userID int64, city string) (models.GistComment, error) {
	if city == "" {
		return models.GistComment{}, ErrInvalidDataProvided
	}

	current, err := s.weatherClient.CurrentByCity(ctx, city)
	if err != nil {
		return models.GistComment{}, err
	}

	samples, err := s.weatherClient.ForecastByCity(ctx, city)
	if err != nil {
		return models.GistComment{}, err
	}

	return s.publish(ctx, userID, current, samples)
}

// PublishByCoordinates runs the digest pipeline for a coordinate pair.
func (s *gistCommentService) PublishByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.GistComment, error) {
	current, err := s.weatherClient.CurrentByCoordinates(ctx, lat, lon)
	if err != nil {
		return models.GistComment{}, err
	}

	samples, err := s.weatherClient.ForecastByCoordinates(ctx, lat, lon)
	if err != nil {
		return models.GistComment{}, err
	}

	return s.publish(ctx, userID, current, samples)
}

func (s *gistCommentService) publish(ctx context.Context, userID int64, current models.CurrentWeather, samples []models.ForecastSample) (models.GistComment, error) {
	log := logger.FromContext(ctx)

	days, err := weather.FirstFiveDays(weather.AggregateDaily(samples))
	if err != nil {
		log.Err(err).Str("city", current.City).Int("samples", len(samples)).Msg("forecast aggregation failed")
		return models.GistComment{}, err
	}

	body := weather.ComposeComment(current.City, current.Latitude, current.Longitude, current.CurrentTemperature, current.WeatherDescription, days)

	commentID, err := s.gistClient.CreateComment(ctx, body)
	if err != nil {
		return models.GistComment{}, err
	}

	record := models.GistComment{
		City:               current.City,
		Latitude:           current.Latitude,
		Longitude:          current.Longitude,
		CommentDate:        time.Now().UTC(),
		CurrentTemperature: current.CurrentTemperature,
		WeatherDescription: current.WeatherDescription,

		ForecastDay1Date:        days[0].Date,
		ForecastDay1Temperature: days[0].AverageTemperature,
		ForecastDay2Date:        days[1].Date,
		ForecastDay2Temperature: days[1].AverageTemperature,
		ForecastDay3Date:        days[2].Date,
		ForecastDay3Temperature: days[2].AverageTemperature,
		ForecastDay4Date:        days[3].Date,
		ForecastDay4Temperature: days[3].AverageTemperature,
		ForecastDay5Date:        days[4].Date,
		ForecastDay5Temperature: days[4].AverageTemperature,

		GithubCommentID: commentID,
		UserID:          userID,
	}

	stored, err := s.repository.Create(ctx, record)
	if err != nil {
		// The remote comment already exists at this point and stays
		// orphaned when the local write fails.
		log.Err(err).Int64("comment_id", commentID).Msg("storing gist comment record failed")
		return models.GistComment{}, fmt.Errorf("storing gist comment record failed: %w", err)
	}

	return stored, nil
}

// Get returns one stored digest record owned by the user.
func (s *gistCommentService) Get(ctx context.Context, id, userID int64) (models.GistComment, error) {
	return s.repository.GetByID(ctx, id, userID)
}

// List returns every stored digest record owned by the user.
func (s *gistCommentService) List(ctx context.Context, userID int64) ([]models.GistComment, error) {
	return s.repository.GetAllByUserID(ctx, userID)
}

// Update applies a partial update to a stored digest record, recomposes the
// digest text from the updated fields and pushes the edit to the remote
// comment before persisting.
func (s *gistCommentService) Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error) {
	log := logger.FromContext(ctx)

	// An empty update would otherwise edit the remote comment with an
	// unchanged body and then fail the local write.
	if update.City == nil && update.CurrentTemperature == nil && update.WeatherDescription == nil {
		return models.GistComment{}, store.ErrNothingToUpdate
	}

	record, err := s.repository.GetByID(ctx, update.ID, update.UserID)
	if err != nil {
		return models.GistComment{}, err
	}

	if update.City != nil {
		record.City = *update.City
	}
	if update.CurrentTemperature != nil {
		record.CurrentTemperature = *update.CurrentTemperature
	}
	if update.WeatherDescription != nil {
		record.WeatherDescription = *update.WeatherDescription
	}

	body := weather.ComposeComment(record.City, record.Latitude, record.Longitude, record.CurrentTemperature, record.WeatherDescription, digestDaysFromRecord(record))

	if err := s.gistClient.EditComment(ctx, record.GithubCommentID, body); err != nil {
		log.Err(err).Int64("comment_id", record.GithubCommentID).Msg("editing remote gist comment failed")
		return models.GistComment{}, err
	}

	return s.repository.Update(ctx, update)
}

// Delete removes a stored digest record and its remote comment. When the
// record does not exist locally, no remote call is made.
func (s *gistCommentService) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	record, err := s.repository.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.gistClient.DeleteComment(ctx, record.GithubCommentID); err != nil {
		log.Err(err).Int64("comment_id", record.GithubCommentID).Msg("deleting remote gist comment failed")
		return err
	}

	return s.repository.Delete(ctx, id, userID)
}

// digestDaysFromRecord rebuilds the five daily entries of a stored record
// for recomposition.
func digestDaysFromRecord(record models.GistComment) [weather.DigestDays]weather.DailyForecast {
	return [weather.DigestDays]weather.DailyForecast{
		{Date: record.ForecastDay1Date, AverageTemperature: record.ForecastDay1Temperature},
		{Date: record.ForecastDay2Date, AverageTemperature: record.ForecastDay2Temperature},
		{Date: record.ForecastDay3Date, AverageTemperature: record.ForecastDay3Temperature},
		{Date: record.ForecastDay4Date, AverageTemperature: record.ForecastDay4Temperature},
		{Date: record.ForecastDay5Date, AverageTemperature: record.ForecastDay5Temperature},
	}
}
