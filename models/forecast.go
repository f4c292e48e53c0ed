package models

import "time"

// ForecastSample is one weather prediction at a specific timestamp, produced
// by the provider at 3-hour granularity. Every sample of a forecast fetch is
// persisted as an individual row owned by the requesting user.
type ForecastSample struct {
	ID                 int64     `json:"id"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Date               time.Time `json:"date"`
	AverageTemperature float64   `json:"average_temperature"`
	MinTemperature     float64   `json:"min_temperature"`
	MaxTemperature     float64   `json:"max_temperature"`
	WeatherDescription string    `json:"weather_description"`
	Humidity           float64   `json:"humidity"`
	WindSpeed          float64   `json:"wind_speed"`
	UserID             int64     `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the ForecastSample model.
func (f ForecastSample) TableName() string {
	return "forecast_weather"
}
