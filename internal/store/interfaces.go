package store

import (
	"context"
	"time"

	"github.com/lcmendes/weather-gist/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	SavePIN(ctx context.Context, email, pin string, expiration time.Time) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TokenRepository tracks revoked access tokens by their jti claim. A token is
// considered revoked once its identifier is present in the revoked_tokens
// table; expired entries are irrelevant because the token itself stops
// validating.
type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, userID int64, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type CurrentWeatherRepository interface {
	Create(ctx context.Context, weather models.CurrentWeather) (models.CurrentWeather, error)
	GetByID(ctx context.Context, id, userID int64) (models.CurrentWeather, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]models.CurrentWeather, error)
	Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error)
	Delete(ctx context.Context, id, userID int64) error
}

type ForecastRepository interface {
	Create(ctx context.Context, forecast models.ForecastSample) (models.ForecastSample, error)
	CreateBatch(ctx context.Context, forecasts []models.ForecastSample) ([]models.ForecastSample, error)
	GetByID(ctx context.Context, id, userID int64) (models.ForecastSample, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]models.ForecastSample, error)
	Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error)
	Delete(ctx context.Context, id, userID int64) error
}

type GistCommentRepository interface {
	Create(ctx context.Context, comment models.GistComment) (models.GistComment, error)
	GetByID(ctx context.Context, id, userID int64) (models.GistComment, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]models.GistComment, error)
	Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error)
	Delete(ctx context.Context, id, userID int64) error
}
