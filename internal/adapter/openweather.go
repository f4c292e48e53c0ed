package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lcmendes/weather-gist/internal/config"
	"github.com/lcmendes/weather-gist/internal/logger"
	"github.com/lcmendes/weather-gist/models"
	"github.com/sony/gobreaker"
)

// forecastTimeLayout is the format of the "dt_txt" field in forecast samples.
const forecastTimeLayout = "2006-01-02 15:04:05"

// OpenWeatherClient is the resty-backed implementation of [WeatherClient]
// against the OpenWeather API. Every call goes through a circuit breaker:
// once the provider misbehaves repeatedly the breaker opens and calls fail
// fast instead of piling on a struggling upstream. No retries happen at any
// level; a failed call surfaces to the caller immediately.
type OpenWeatherClient struct {
	client  *resty.Client
	apiKey  string
	breaker *gobreaker.CircuitBreaker
	logger  *logger.Logger
}

// NewOpenWeatherClient constructs a [WeatherClient] for the configured
// OpenWeather endpoint.
func NewOpenWeatherClient(cfg config.Weather, log *logger.Logger) *OpenWeatherClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &OpenWeatherClient{
		client:  client,
		apiKey:  cfg.APIKey,
		breaker: breaker,
		logger:  log,
	}
}

// owErrorResponse is the provider error body ({"cod": "404", "message": ...}).
type owErrorResponse struct {
	Message string `json:"message"`
}

type owWeatherResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64  `json:"speed"`
		Deg   int      `json:"deg"`
		Gust  *float64 `json:"gust"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Name string `json:"name"`
}

func (p owWeatherResponse) toModel() models.CurrentWeather {
	description := ""
	if len(p.Weather) > 0 {
		description = p.Weather[0].Description
	}

	return models.CurrentWeather{
		City:               p.Name,
		Latitude:           p.Coord.Lat,
		Longitude:          p.Coord.Lon,
		CurrentTemperature: p.Main.Temp,
		FeelsLike:          p.Main.FeelsLike,
		TempMin:            p.Main.TempMin,
		TempMax:            p.Main.TempMax,
		Pressure:           p.Main.Pressure,
		Humidity:           p.Main.Humidity,
		Visibility:         p.Visibility,
		WindSpeed:          p.Wind.Speed,
		WindDeg:            p.Wind.Deg,
		WindGust:           p.Wind.Gust,
		Cloudiness:         p.Clouds.All,
		WeatherDescription: description,
		ObservationTime:    time.Unix(p.Dt, 0).UTC(),
		Sunrise:            time.Unix(p.Sys.Sunrise, 0).UTC(),
		Sunset:             time.Unix(p.Sys.Sunset, 0).UTC(),
	}
}

type owForecastResponse struct {
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name  string `json:"name"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	} `json:"city"`
}

func (p owForecastResponse) toModels() []models.ForecastSample {
	samples := make([]models.ForecastSample, 0, len(p.List))
	for _, item := range p.List {
		// dt_txt carries the provider's own calendar date; keep it as-is so
		// daily aggregation follows the provider's day boundaries.
		date, err := time.Parse(forecastTimeLayout, item.DtTxt)
		if err != nil {
			date = time.Unix(item.Dt, 0).UTC()
		}

		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}

		samples = append(samples, models.ForecastSample{
			City:               p.City.Name,
			Latitude:           p.City.Coord.Lat,
			Longitude:          p.City.Coord.Lon,
			Date:               date,
			AverageTemperature: item.Main.Temp,
			MinTemperature:     item.Main.TempMin,
			MaxTemperature:     item.Main.TempMax,
			WeatherDescription: description,
			Humidity:           item.Main.Humidity,
			WindSpeed:          item.Wind.Speed,
		})
	}

	return samples
}

// CurrentByCity fetches current conditions for a city name.
func (c *OpenWeatherClient) CurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error) {
	return c.current(ctx, map[string]string{"q": city})
}

// CurrentByCoordinates fetches current conditions for a coordinate pair.
func (c *OpenWeatherClient) CurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	return c.current(ctx, coordinateParams(lat, lon))
}

// ForecastByCity fetches the 3-hour-step forecast for a city name.
func (c *OpenWeatherClient) ForecastByCity(ctx context.Context, city string) ([]models.ForecastSample, error) {
	return c.forecast(ctx, map[string]string{"q": city})
}

// ForecastByCoordinates fetches the 3-hour-step forecast for a coordinate pair.
func (c *OpenWeatherClient) ForecastByCoordinates(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error) {
	return c.forecast(ctx, coordinateParams(lat, lon))
}

func coordinateParams(lat, lon float64) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	}
}

func (c *OpenWeatherClient) current(ctx context.Context, params map[string]string) (models.CurrentWeather, error) {
	var payload owWeatherResponse
	if err := c.get(ctx, "/weather", params, &payload); err != nil {
		return models.CurrentWeather{}, err
	}

	return payload.toModel(), nil
}

func (c *OpenWeatherClient) forecast(ctx context.Context, params map[string]string) ([]models.ForecastSample, error) {
	var payload owForecastResponse
	if err := c.get(ctx, "/forecast", params, &payload); err != nil {
		return nil, err
	}

	return payload.toModels(), nil
}

// get performs one provider call through the circuit breaker and decodes the
// success body into out.
func (c *OpenWeatherClient) get(ctx context.Context, path string, params map[string]string, out any) error {
	log := logger.FromContext(ctx)

	_, err := c.breaker.Execute(func() (any, error) {
		var apiErr owErrorResponse
		resp, callErr := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetQueryParam("appid", c.apiKey).
			SetQueryParam("units", "metric").
			SetResult(out).
			SetError(&apiErr).
			Get(path)
		if callErr != nil {
			return nil, classifyTransportError(callErr)
		}

		if resp.IsError() {
			return nil, &UpstreamError{Code: resp.StatusCode(), Message: apiErr.Message}
		}

		return nil, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			log.Warn().Str("path", path).Msg("weather provider circuit breaker is open")
			return fmt.Errorf("%w: circuit breaker open", ErrUpstream)
		}
		log.Err(err).Str("path", path).Msg("weather provider call failed")
		return err
	}

	return nil
}

// classifyTransportError maps transport-level failures to the adapter's
// sentinel errors. Timeouts and context deadlines become
// [ErrUpstreamTimeout]; everything else is wrapped as [ErrUpstream].
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
