package store

import "github.com/lcmendes/weather-gist/internal/logger"

// Storages bundles all repositories behind a single dependency handed to the
// service layer.
type Storages struct {
	UserRepository           UserRepository
	TokenRepository          TokenRepository
	CurrentWeatherRepository CurrentWeatherRepository
	ForecastRepository       ForecastRepository
	GistCommentRepository    GistCommentRepository
}

// NewStorages constructs all PostgreSQL-backed repositories over one shared
// connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		TokenRepository:          NewTokenRepository(db, log),
		CurrentWeatherRepository: NewCurrentWeatherRepository(db, log),
		ForecastRepository:       NewForecastRepository(db, log),
		GistCommentRepository:    NewGistCommentRepository(db, log),
	}
}
