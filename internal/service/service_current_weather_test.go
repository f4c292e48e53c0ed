package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/internal/store"
	"github.com/lcmendes/weather-gist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWeatherService_FetchByCity_StampsOwner(t *testing.T) {
	weatherClient := &fakeWeatherClient{
		CurrentByCityFunc: func(_ context.Context, city string) (models.CurrentWeather, error) {
			return models.CurrentWeather{City: city, CurrentTemperature: 18.4}, nil
		},
	}
	repo := &fakeCurrentWeatherRepository{
		CreateFunc: func(_ context.Context, weather models.CurrentWeather) (models.CurrentWeather, error) {
			assert.Equal(t, int64(7), weather.UserID)
			weather.ID = 3
			return weather, nil
		},
	}

	svc := NewCurrentWeatherService(repo, weatherClient, logger.Nop())

	record, err := svc.FetchByCity(context.Background(), 7, "London")
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.ID)
	assert.Equal(t, "London", record.City)
}

func TestCurrentWeatherService_FetchByCity_EmptyCity(t *testing.T) {
	svc := NewCurrentWeatherService(&fakeCurrentWeatherRepository{}, &fakeWeatherClient{}, logger.Nop())

	_, err := svc.FetchByCity(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCurrentWeatherService_FetchByCity_ProviderFailureSkipsPersistence(t *testing.T) {
	providerErr := errors.New("provider down")
	weatherClient := &fakeWeatherClient{
		CurrentByCityFunc: func(context.Context, string) (models.CurrentWeather, error) {
			return models.CurrentWeather{}, providerErr
		},
	}
	repo := &fakeCurrentWeatherRepository{
		CreateFunc: func(_ context.Context, weather models.CurrentWeather) (models.CurrentWeather, error) {
			t.Fatal("nothing may be persisted when the provider fails")
			return weather, nil
		},
	}

	svc := NewCurrentWeatherService(repo, weatherClient, logger.Nop())

	_, err := svc.FetchByCity(context.Background(), 7, "London")
	assert.ErrorIs(t, err, providerErr)
}

func TestCurrentWeatherService_FetchByCoordinates(t *testing.T) {
	weatherClient := &fakeWeatherClient{
		CurrentByCoordinatesFunc: func(_ context.Context, lat, lon float64) (models.CurrentWeather, error) {
			assert.Equal(t, 51.5, lat)
			assert.Equal(t, -0.1, lon)
			return models.CurrentWeather{City: "London", Latitude: lat, Longitude: lon}, nil
		},
	}
	repo := &fakeCurrentWeatherRepository{
		CreateFunc: func(_ context.Context, weather models.CurrentWeather) (models.CurrentWeather, error) {
			return weather, nil
		},
	}

	svc := NewCurrentWeatherService(repo, weatherClient, logger.Nop())

	record, err := svc.FetchByCoordinates(context.Background(), 7, 51.5, -0.1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.UserID)
}

func TestCurrentWeatherService_Get_NotFound(t *testing.T) {
	repo := &fakeCurrentWeatherRepository{
		GetByIDFunc: func(context.Context, int64, int64) (models.CurrentWeather, error) {
			return models.CurrentWeather{}, store.ErrWeatherRecordNotFound
		},
	}
	svc := NewCurrentWeatherService(repo, &fakeWeatherClient{}, logger.Nop())

	_, err := svc.Get(context.Background(), 404, 7)
	assert.ErrorIs(t, err, store.ErrWeatherRecordNotFound)
}

func TestCurrentWeatherService_Update_Delegates(t *testing.T) {
	city := "Porto"
	repo := &fakeCurrentWeatherRepository{
		UpdateFunc: func(_ context.Context, update models.CurrentWeatherUpdate) (models.CurrentWeather, error) {
			require.NotNil(t, update.City)
			return models.CurrentWeather{ID: update.ID, City: *update.City}, nil
		},
	}
	svc := NewCurrentWeatherService(repo, &fakeWeatherClient{}, logger.Nop())

	record, err := svc.Update(context.Background(), models.CurrentWeatherUpdate{ID: 3, UserID: 7, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Porto", record.City)
}
