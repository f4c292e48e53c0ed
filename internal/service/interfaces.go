package service

import (
	"context"

	"github.com/lcmendes/weather-gist/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
	Logout(ctx context.Context, token models.Token) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, pin, newPassword string) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type CurrentWeatherService interface {
	FetchByCity(ctx context.Context, userID int64, city string) (models.CurrentWeather, error)
	FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.CurrentWeather, error)
	Get(ctx context.Context, id, userID int64) (models.CurrentWeather, error)
	List(ctx context.Context, userID int64) ([]models.CurrentWeather, error)
	Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error)
	Delete(ctx context.Context, id, userID int64) error
}

type ForecastService interface {
	FetchByCity(ctx context.Context, userID int64, city string) ([]models.ForecastSample, error)
	FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) ([]models.ForecastSample, error)
	Get(ctx context.Context, id, userID int64) (models.ForecastSample, error)
	List(ctx context.Context, userID int64) ([]models.ForecastSample, error)
	Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error)
	Delete(ctx context.Context, id, userID int64) error
}

type GistCommentService interface {
	PublishByCity(ctx context.Context, userID int64, city string) (models.GistComment, error)
	PublishByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.GistComment, error)
	Get(ctx context.Context, id, userID int64) (models.GistComment, error)
	List(ctx context.Context, userID int64) ([]models.GistComment, error)
	Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error)
	Delete(ctx context.Context, id, userID int64) error
}
