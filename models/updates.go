package models

import "time"

// Partial-update payloads for the stored weather entities. A nil field is
// left untouched; repositories translate the non-nil fields into a dynamic
// UPDATE statement.

// CurrentWeatherUpdate describes a partial update of a stored observation.
type CurrentWeatherUpdate struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	City               *string  `json:"city,omitempty"`
	CurrentTemperature *float64 `json:"current_temperature,omitempty"`
	FeelsLike          *float64 `json:"feels_like,omitempty"`
	Humidity           *float64 `json:"humidity,omitempty"`
	WeatherDescription *string  `json:"weather_description,omitempty"`
	WindSpeed          *float64 `json:"wind_speed,omitempty"`
}

// ForecastUpdate describes a partial update of a stored forecast sample.
type ForecastUpdate struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	City               *string    `json:"city,omitempty"`
	Date               *time.Time `json:"date,omitempty"`
	AverageTemperature *float64   `json:"average_temperature,omitempty"`
	MinTemperature     *float64   `json:"min_temperature,omitempty"`
	MaxTemperature     *float64   `json:"max_temperature,omitempty"`
	WeatherDescription *string    `json:"weather_description,omitempty"`
}

// GistCommentUpdate describes a partial update of a stored digest record.
// Changing the digest body locally does not touch the remote comment; the
// service layer is responsible for pushing edits upstream.
type GistCommentUpdate struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	City               *string  `json:"city,omitempty"`
	CurrentTemperature *float64 `json:"current_temperature,omitempty"`
	WeatherDescription *string  `json:"weather_description,omitempty"`
}
