package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherClient(baseURL string, timeout time.Duration) *OpenWeatherClient {
	return NewOpenWeatherClient(config.Weather{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: timeout,
	}, logger.Nop())
}

const currentWeatherBody = `{
	"coord": {"lat": 51.51, "lon": -0.13},
	"weather": [{"description": "scattered clouds"}],
	"main": {"temp": 18.42, "feels_like": 17.9, "temp_min": 16.0, "temp_max": 20.1, "pressure": 1012, "humidity": 63},
	"visibility": 10000,
	"wind": {"speed": 4.2, "deg": 250},
	"clouds": {"all": 40},
	"dt": 1717243200,
	"sys": {"sunrise": 1717210000, "sunset": 1717268000},
	"name": "London"
}`

func TestCurrentByCity_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentWeatherBody))
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, time.Second)

	weather, err := client.CurrentByCity(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", weather.City)
	assert.Equal(t, 51.51, weather.Latitude)
	assert.Equal(t, 18.42, weather.CurrentTemperature)
	assert.Equal(t, "scattered clouds", weather.WeatherDescription)
	assert.Equal(t, 1012, weather.Pressure)
	assert.Nil(t, weather.WindGust)
	assert.Equal(t, time.Unix(1717243200, 0).UTC(), weather.ObservationTime)
	assert.Zero(t, weather.UserID, "provider records must not carry ownership")
}

func TestCurrentByCoordinates_SendsLatLon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "51.51", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.13", r.URL.Query().Get("lon"))
		assert.Empty(t, r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(currentWeatherBody))
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, time.Second)

	_, err := client.CurrentByCoordinates(context.Background(), 51.51, -0.13)
	require.NoError(t, err)
}

func TestCurrentByCity_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, time.Second)

	_, err := client.CurrentByCity(context.Background(), "Nowhere")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUpstream)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.Code)
	assert.Equal(t, "city not found", upstreamErr.Message)
}

func TestCurrentByCity_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, 20*time.Millisecond)

	_, err := client.CurrentByCity(context.Background(), "London")
	require.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestForecastByCity_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"list": [
				{"dt": 1717243200, "dt_txt": "2024-06-01 12:00:00", "main": {"temp": 18.0, "temp_min": 15.0, "temp_max": 21.0, "humidity": 70}, "weather": [{"description": "light rain"}], "wind": {"speed": 3.5}},
				{"dt": 1717254000, "dt_txt": "2024-06-01 15:00:00", "main": {"temp": 19.0, "temp_min": 16.0, "temp_max": 22.0, "humidity": 65}, "weather": [{"description": "light rain"}], "wind": {"speed": 4.0}}
			],
			"city": {"name": "London", "coord": {"lat": 51.51, "lon": -0.13}}
		}`))
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, time.Second)

	samples, err := client.ForecastByCity(context.Background(), "London")
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "London", samples[0].City)
	assert.Equal(t, 51.51, samples[0].Latitude)
	assert.Equal(t, 18.0, samples[0].AverageTemperature)
	assert.Equal(t, "light rain", samples[0].WeatherDescription)
	assert.Equal(t, "2024-06-01", samples[0].Date.Format("2006-01-02"))
	assert.Equal(t, 12, samples[0].Date.Hour()) // provider-local hour, kept as supplied
}

func TestGet_CircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newWeatherClient(server.URL, time.Second)
	ctx := context.Background()

	// Default gobreaker settings trip after more than five consecutive
	// failures.
	for i := 0; i < 6; i++ {
		_, err := client.CurrentByCity(ctx, "London")
		require.ErrorIs(t, err, ErrUpstream)
	}

	_, err := client.CurrentByCity(ctx, "London")
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "circuit breaker open")
}
