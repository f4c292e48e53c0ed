package service

import (
	"context"
	"time"

	"github.com/lcmendes/weather-gist/models"
)

// Function-field fakes for the repository and client interfaces. Tests set
// only the fields they need; calling an unset field panics, which points
// straight at the unexpected interaction.

type fakeUserRepository struct {
	CreateUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	FindUserByIDFunc    func(ctx context.Context, userID int64) (models.User, error)
	FindAllUsersFunc    func(ctx context.Context) ([]models.User, error)
	SavePINFunc         func(ctx context.Context, email, pin string, expiration time.Time) error
	UpdatePasswordFunc  func(ctx context.Context, email, passwordHash string) error
	UpdateProfileFunc   func(ctx context.Context, userID int64, name, email string) (models.User, error)
	DeleteUserFunc      func(ctx context.Context, userID int64) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.CreateUserFunc(ctx, user)
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.FindUserByEmailFunc(ctx, email)
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return f.FindUserByIDFunc(ctx, userID)
}

func (f *fakeUserRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return f.FindAllUsersFunc(ctx)
}

func (f *fakeUserRepository) SavePIN(ctx context.Context, email, pin string, expiration time.Time) error {
	return f.SavePINFunc(ctx, email, pin, expiration)
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return f.UpdatePasswordFunc(ctx, email, passwordHash)
}

func (f *fakeUserRepository) UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error) {
	return f.UpdateProfileFunc(ctx, userID, name, email)
}

func (f *fakeUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	return f.DeleteUserFunc(ctx, userID)
}

type fakeTokenRepository struct {
	RevokeFunc    func(ctx context.Context, tokenID string, userID int64, expiresAt time.Time) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)
}

func (f *fakeTokenRepository) Revoke(ctx context.Context, tokenID string, userID int64, expiresAt time.Time) error {
	return f.RevokeFunc(ctx, tokenID, userID, expiresAt)
}

func (f *fakeTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return f.IsRevokedFunc(ctx, tokenID)
}

type fakeCurrentWeatherRepository struct {
	CreateFunc         func(ctx context.Context, weather models.CurrentWeather) (models.CurrentWeather, error)
	GetByIDFunc        func(ctx context.Context, id, userID int64) (models.CurrentWeather, error)
	GetAllByUserIDFunc func(ctx context.Context, userID int64) ([]models.CurrentWeather, error)
	UpdateFunc         func(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error)
	DeleteFunc         func(ctx context.Context, id, userID int64) error
}

func (f *fakeCurrentWeatherRepository) Create(ctx context.Context, weather models.CurrentWeather) (models.CurrentWeather, error) {
	return f.CreateFunc(ctx, weather)
}

func (f *fakeCurrentWeatherRepository) GetByID(ctx context.Context, id, userID int64) (models.CurrentWeather, error) {
	return f.GetByIDFunc(ctx, id, userID)
}

func (f *fakeCurrentWeatherRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.CurrentWeather, error) {
	return f.GetAllByUserIDFunc(ctx, userID)
}

func (f *fakeCurrentWeatherRepository) Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error) {
	return f.UpdateFunc(ctx, update)
}

func (f *fakeCurrentWeatherRepository) Delete(ctx context.Context, id, userID int64) error {
	return f.DeleteFunc(ctx, id, userID)
}

type fakeForecastRepository struct {
	CreateFunc         func(ctx context.Context, forecast models.ForecastSample) (models.ForecastSample, error)
	CreateBatchFunc    func(ctx context.Context, forecasts []models.ForecastSample) ([]models.ForecastSample, error)
	GetByIDFunc        func(ctx context.Context, id, userID int64) (models.ForecastSample, error)
	GetAllByUserIDFunc func(ctx context.Context, userID int64) ([]models.ForecastSample, error)
	UpdateFunc         func(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error)
	DeleteFunc         func(ctx context.Context, id, userID int64) error
}

func (f *fakeForecastRepository) Create(ctx context.Context, forecast models.ForecastSample) (models.ForecastSample, error) {
	return f.CreateFunc(ctx, forecast)
}

func (f *fakeForecastRepository) CreateBatch(ctx context.Context, forecasts []models.ForecastSample) ([]models.ForecastSample, error) {
	return f.CreateBatchFunc(ctx, forecasts)
}

func (f *fakeForecastRepository) GetByID(ctx context.Context, id, userID int64) (models.ForecastSample, error) {
	return f.GetByIDFunc(ctx, id, userID)
}

func (f *fakeForecastRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.ForecastSample, error) {
	return f.GetAllByUserIDFunc(ctx, userID)
}

func (f *fakeForecastRepository) Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error) {
	return f.UpdateFunc(ctx, update)
}

func (f *fakeForecastRepository) Delete(ctx context.Context, id, userID int64) error {
	return f.DeleteFunc(ctx, id, userID)
}

type fakeGistCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment models.GistComment) (models.GistComment, error)
	GetByIDFunc        func(ctx context.Context, id, userID int64) (models.GistComment, error)
	GetAllByUserIDFunc func(ctx context.Context, userID int64) ([]models.GistComment, error)
	UpdateFunc         func(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error)
	DeleteFunc         func(ctx context.Context, id, userID int64) error
}

func (f *fakeGistCommentRepository) Create(ctx context.Context, comment models.GistComment) (models.GistComment, error) {
	return f.CreateFunc(ctx, comment)
}

func (f *fakeGistCommentRepository) GetByID(ctx context.Context, id, userID int64) (models.GistComment, error) {
	return f.GetByIDFunc(ctx, id, userID)
}

func (f *fakeGistCommentRepository) GetAllByUserID(ctx context.Context, userID int64) ([]models.GistComment, error) {
	return f.GetAllByUserIDFunc(ctx, userID)
}

func (f *fakeGistCommentRepository) Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error) {
	return f.UpdateFunc(ctx, update)
}

func (f *fakeGistCommentRepository) Delete(ctx context.Context, id, userID int64) error {
	return f.DeleteFunc(ctx, id, userID)
}

type fakeWeatherClient struct {
	CurrentByCityFunc         func(ctx context.Context, city string) (models.CurrentWeather, error)
	CurrentByCoordinatesFunc  func(ctx context.Context, lat, lon float64) (models.CurrentWeather, error)
	ForecastByCityFunc        func(ctx context.Context, city string) ([]models.ForecastSample, error)
	ForecastByCoordinatesFunc func(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error)
}

func (f *fakeWeatherClient) CurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error) {
	return f.CurrentByCityFunc(ctx, city)
}

func (f *fakeWeatherClient) CurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	return f.CurrentByCoordinatesFunc(ctx, lat, lon)
}

func (f *fakeWeatherClient) ForecastByCity(ctx context.Context, city string) ([]models.ForecastSample, error) {
	return f.ForecastByCityFunc(ctx, city)
}

func (f *fakeWeatherClient) ForecastByCoordinates(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error) {
	return f.ForecastByCoordinatesFunc(ctx, lat, lon)
}

type fakeGistClient struct {
	CreateCommentFunc func(ctx context.Context, body string) (int64, error)
	EditCommentFunc   func(ctx context.Context, commentID int64, body string) error
	DeleteCommentFunc func(ctx context.Context, commentID int64) error
}

func (f *fakeGistClient) CreateComment(ctx context.Context, body string) (int64, error) {
	return f.CreateCommentFunc(ctx, body)
}

func (f *fakeGistClient) EditComment(ctx context.Context, commentID int64, body string) error {
	return f.EditCommentFunc(ctx, commentID, body)
}

func (f *fakeGistClient) DeleteComment(ctx context.Context, commentID int64) error {
	return f.DeleteCommentFunc(ctx, commentID)
}

type fakeMailer struct {
	SendPINEmailFunc func(ctx context.Context, to, pin string) error
}

func (f *fakeMailer) SendPINEmail(ctx context.Context, to, pin string) error {
	return f.SendPINEmailFunc(ctx, to, pin)
}
