// Package service contains the business logic between the HTTP layer and the
// persistence/outbound layers: the auth core (registration, login, JWT
// lifecycle, PIN-based password reset), the per-entity weather services and
// the digest publishing pipeline.
package service

import (
	"github.com/lcmendes/weather-gist/internal/adapter"
	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/mailer"
	"github.com/lcmendes/weather-gist/internal/store"
)

type Services struct {
	AuthService           AuthService
	UserService           UserService
	CurrentWeatherService CurrentWeatherService
	ForecastService       ForecastService
	GistCommentService    GistCommentService
}

func NewServices(storages *store.Storages, weatherClient adapter.WeatherClient, gistClient adapter.GistClient, mail mailer.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:           NewAuthService(storages.UserRepository, storages.TokenRepository, mail, cfg.App, logger),
		UserService:           NewUserService(storages.UserRepository, logger),
		CurrentWeatherService: NewCurrentWeatherService(storages.CurrentWeatherRepository, weatherClient, logger),
		ForecastService:       NewForecastService(storages.ForecastRepository, weatherClient, logger),
		GistCommentService:    NewGistCommentService(storages.GistCommentRepository, weatherClient, gistClient, logger),
	}
}
