package models

import "time"

// CurrentWeather is a point-in-time weather observation for a location,
// owned by exactly one user. Rows are created from provider fetches and may
// be edited or deleted through the CRUD surface afterwards.
type CurrentWeather struct {
	ID                 int64     `json:"id"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	CurrentTemperature float64   `json:"current_temperature"`
	FeelsLike          float64   `json:"feels_like"`
	TempMin            float64   `json:"temp_min"`
	TempMax            float64   `json:"temp_max"`
	Pressure           int       `json:"pressure"`
	Humidity           int       `json:"humidity"`
	Visibility         int       `json:"visibility"`
	WindSpeed          float64   `json:"wind_speed"`
	WindDeg            int       `json:"wind_deg"`
	WindGust           *float64  `json:"wind_gust,omitempty"`
	Cloudiness         int       `json:"cloudiness"`
	WeatherDescription string    `json:"weather_description"`
	ObservationTime    time.Time `json:"observation_datetime"`
	Sunrise            time.Time `json:"sunrise"`
	Sunset             time.Time `json:"sunset"`
	UserID             int64     `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the CurrentWeather model.
func (w CurrentWeather) TableName() string {
	return "current_weather"
}
