package models

import "time"

// GistComment records one digest comment published to the remote gist thread:
// the conditions snapshot it was composed from, exactly five forecast-day
// slots in ascending calendar-day order, and the provider-assigned identifier
// of the remote comment.
type GistComment struct {
	ID                 int64     `json:"id"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	CommentDate        time.Time `json:"comment_date"`
	CurrentTemperature float64   `json:"current_temperature"`
	WeatherDescription string    `json:"weather_description"`

	ForecastDay1Date        string  `json:"forecast_day_1_date"`
	ForecastDay1Temperature float64 `json:"forecast_day_1_temperature"`
	ForecastDay2Date        string  `json:"forecast_day_2_date"`
	ForecastDay2Temperature float64 `json:"forecast_day_2_temperature"`
	ForecastDay3Date        string  `json:"forecast_day_3_date"`
	ForecastDay3Temperature float64 `json:"forecast_day_3_temperature"`
	ForecastDay4Date        string  `json:"forecast_day_4_date"`
	ForecastDay4Temperature float64 `json:"forecast_day_4_temperature"`
	ForecastDay5Date        string  `json:"forecast_day_5_date"`
	ForecastDay5Temperature float64 `json:"forecast_day_5_temperature"`

	// GithubCommentID is the identifier assigned by the gist host when the
	// comment was published. Required for later edits and deletes.
	GithubCommentID int64 `json:"comment_id"`

	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the GistComment model.
func (g GistComment) TableName() string {
	return "gist_comments"
}
