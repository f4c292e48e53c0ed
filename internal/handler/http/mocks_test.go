package http

import (
	"context"

	"github.com/lcmendes/weather-gist/models"
)

// Function-field service mocks. Unset fields fall back to benign defaults so
// that route-registration tests can exercise the full router; behavioural
// tests override only the fields they care about.

type mockAuthService struct {
	RegisterUserFunc   func(ctx context.Context, req models.SignupRequest) (models.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (models.Token, error)
	CreateTokenFunc    func(ctx context.Context, user models.User) (models.Token, error)
	ParseTokenFunc     func(ctx context.Context, tokenString string) (models.Token, error)
	IsTokenRevokedFunc func(ctx context.Context, tokenID string) (bool, error)
	LogoutFunc         func(ctx context.Context, token models.Token) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, email, pin, newPassword string) error
	ChangePasswordFunc func(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if m.RegisterUserFunc == nil {
		return models.User{ID: 1, Username: req.Username, Email: req.Email}, nil
	}
	return m.RegisterUserFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	if m.LoginFunc == nil {
		return models.Token{UserID: 1, Email: email, TokenID: "jti-1", SignedString: "signed"}, nil
	}
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.CreateTokenFunc == nil {
		return models.Token{UserID: user.ID, Email: user.Email, TokenID: "jti-1"}, nil
	}
	return m.CreateTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.ParseTokenFunc == nil {
		return models.Token{UserID: 1, Email: "joao@example.com", TokenID: "jti-1"}, nil
	}
	return m.ParseTokenFunc(ctx, tokenString)
}

func (m *mockAuthService) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsTokenRevokedFunc == nil {
		return false, nil
	}
	return m.IsTokenRevokedFunc(ctx, tokenID)
}

func (m *mockAuthService) Logout(ctx context.Context, token models.Token) error {
	if m.LogoutFunc == nil {
		return nil
	}
	return m.LogoutFunc(ctx, token)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc == nil {
		return nil
	}
	return m.ForgotPasswordFunc(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, email, pin, newPassword string) error {
	if m.ResetPasswordFunc == nil {
		return nil
	}
	return m.ResetPasswordFunc(ctx, email, pin, newPassword)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if m.ChangePasswordFunc == nil {
		return nil
	}
	return m.ChangePasswordFunc(ctx, userID, oldPassword, newPassword)
}

type mockUserService struct {
	GetUserFunc       func(ctx context.Context, userID int64) (models.User, error)
	ListUsersFunc     func(ctx context.Context) ([]models.User, error)
	UpdateProfileFunc func(ctx context.Context, userID int64, name, email string) (models.User, error)
	DeleteUserFunc    func(ctx context.Context, userID int64) error
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.GetUserFunc == nil {
		return models.User{ID: userID}, nil
	}
	return m.GetUserFunc(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc == nil {
		return nil, nil
	}
	return m.ListUsersFunc(ctx)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, name, email string) (models.User, error) {
	if m.UpdateProfileFunc == nil {
		return models.User{ID: userID, Name: name, Email: email}, nil
	}
	return m.UpdateProfileFunc(ctx, userID, name, email)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.DeleteUserFunc == nil {
		return nil
	}
	return m.DeleteUserFunc(ctx, userID)
}

type mockCurrentWeatherService struct {
	FetchByCityFunc        func(ctx context.Context, userID int64, city string) (models.CurrentWeather, error)
	FetchByCoordinatesFunc func(ctx context.Context, userID int64, lat, lon float64) (models.CurrentWeather, error)
	GetFunc                func(ctx context.Context, id, userID int64) (models.CurrentWeather, error)
	ListFunc               func(ctx context.Context, userID int64) ([]models.CurrentWeather, error)
	UpdateFunc             func(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error)
	DeleteFunc             func(ctx context.Context, id, userID int64) error
}

func (m *mockCurrentWeatherService) FetchByCity(ctx context.Context, userID int64, city string) (models.CurrentWeather, error) {
	if m.FetchByCityFunc == nil {
		return models.CurrentWeather{ID: 1, City: city, UserID: userID}, nil
	}
	return m.FetchByCityFunc(ctx, userID, city)
}

func (m *mockCurrentWeatherService) FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.CurrentWeather, error) {
	if m.FetchByCoordinatesFunc == nil {
		return models.CurrentWeather{ID: 1, Latitude: lat, Longitude: lon, UserID: userID}, nil
	}
	return m.FetchByCoordinatesFunc(ctx, userID, lat, lon)
}

func (m *mockCurrentWeatherService) Get(ctx context.Context, id, userID int64) (models.CurrentWeather, error) {
	if m.GetFunc == nil {
		return models.CurrentWeather{ID: id, UserID: userID}, nil
	}
	return m.GetFunc(ctx, id, userID)
}

func (m *mockCurrentWeatherService) List(ctx context.Context, userID int64) ([]models.CurrentWeather, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, userID)
}

func (m *mockCurrentWeatherService) Update(ctx context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error) {
	if m.UpdateFunc == nil {
		return models.CurrentWeather{ID: update.ID, UserID: update.UserID}, nil
	}
	return m.UpdateFunc(ctx, update)
}

func (m *mockCurrentWeatherService) Delete(ctx context.Context, id, userID int64) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id, userID)
}

type mockForecastService struct {
	FetchByCityFunc        func(ctx context.Context, userID int64, city string) ([]models.ForecastSample, error)
	FetchByCoordinatesFunc func(ctx context.Context, userID int64, lat, lon float64) ([]models.ForecastSample, error)
	GetFunc                func(ctx context.Context, id, userID int64) (models.ForecastSample, error)
	ListFunc               func(ctx context.Context, userID int64) ([]models.ForecastSample, error)
	UpdateFunc             func(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error)
	DeleteFunc             func(ctx context.Context, id, userID int64) error
}

func (m *mockForecastService) FetchByCity(ctx context.Context, userID int64, city string) ([]models.ForecastSample, error) {
	if m.FetchByCityFunc == nil {
		return []models.ForecastSample{{ID: 1, City: city, UserID: userID}}, nil
	}
	return m.FetchByCityFunc(ctx, userID, city)
}

func (m *mockForecastService) FetchByCoordinates(ctx context.Context, userID int64, lat, lon float64) ([]models.ForecastSample, error) {
	if m.FetchByCoordinatesFunc == nil {
		return nil, nil
	}
	return m.FetchByCoordinatesFunc(ctx, userID, lat, lon)
}

func (m *mockForecastService) Get(ctx context.Context, id, userID int64) (models.ForecastSample, error) {
	if m.GetFunc == nil {
		return models.ForecastSample{ID: id, UserID: userID}, nil
	}
	return m.GetFunc(ctx, id, userID)
}

func (m *mockForecastService) List(ctx context.Context, userID int64) ([]models.ForecastSample, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, userID)
}

func (m *mockForecastService) Update(ctx context.Context, update models.ForecastUpdate) (models.ForecastSample, error) {
	if m.UpdateFunc == nil {
		return models.ForecastSample{ID: update.ID, UserID: update.UserID}, nil
	}
	return m.UpdateFunc(ctx, update)
}

func (m *mockForecastService) Delete(ctx context.Context, id, userID int64) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id, userID)
}

type mockGistCommentService struct {
	PublishByCityFunc        func(ctx context.Context, userID int64, city string) (models.GistComment, error)
	PublishByCoordinatesFunc func(ctx context.Context, userID int64, lat, lon float64) (models.GistComment, error)
	GetFunc                  func(ctx context.Context, id, userID int64) (models.GistComment, error)
	ListFunc                 func(ctx context.Context, userID int64) ([]models.GistComment, error)
	UpdateFunc               func(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error)
	DeleteFunc               func(ctx context.Context, id, userID int64) error
}

func (m *mockGistCommentService) PublishByCity(ctx context.Context, userID int64, city string) (models.GistComment, error) {
	if m.PublishByCityFunc == nil {
		return models.GistComment{ID: 1, City: city, UserID: userID}, nil
	}
	return m.PublishByCityFunc(ctx, userID, city)
}

func (m *mockGistCommentService) PublishByCoordinates(ctx context.Context, userID int64, lat, lon float64) (models.GistComment, error) {
	if m.PublishByCoordinatesFunc == nil {
		return models.GistComment{ID: 1, Latitude: lat, Longitude: lon, UserID: userID}, nil
	}
	return m.PublishByCoordinatesFunc(ctx, userID, lat, lon)
}

func (m *mockGistCommentService) Get(ctx context.Context, id, userID int64) (models.GistComment, error) {
	if m.GetFunc == nil {
		return models.GistComment{ID: id, UserID: userID}, nil
	}
	return m.GetFunc(ctx, id, userID)
}

func (m *mockGistCommentService) List(ctx context.Context, userID int64) ([]models.GistComment, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, userID)
}

func (m *mockGistCommentService) Update(ctx context.Context, update models.GistCommentUpdate) (models.GistComment, error) {
	if m.UpdateFunc == nil {
		return models.GistComment{ID: update.ID, UserID: update.UserID}, nil
	}
	return m.UpdateFunc(ctx, update)
}

func (m *mockGistCommentService) Delete(ctx context.Context, id, userID int64) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id, userID)
}
