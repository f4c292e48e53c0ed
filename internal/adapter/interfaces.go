// Package adapter implements the outbound HTTP clients of the application:
// the OpenWeather provider for current conditions and forecasts, and the
// GitHub gist host that receives the published digest comments.
package adapter

import (
	"context"

	"github.com/lcmendes/weather-gist/models"
)

// WeatherClient fetches weather data from the provider. Returned records
// carry no ID and no UserID; the service layer assigns ownership before
// persisting.
type WeatherClient interface {
	CurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error)
	CurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error)
	ForecastByCity(ctx context.Context, city string) ([]models.ForecastSample, error)
	ForecastByCoordinates(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error)
}

// GistClient manages digest comments on the configured gist thread.
type GistClient interface {
	CreateComment(ctx context.Context, body string) (int64, error)
	EditComment(ctx context.Context, commentID int64, body string) error
	DeleteComment(ctx context.Context, commentID int64) error
}
