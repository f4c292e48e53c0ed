package models

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse wraps a human-readable acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CurrentWeatherList is the collection payload for per-user snapshot queries.
type CurrentWeatherList struct {
	Weathers []CurrentWeather `json:"weathers"`
	Length   int              `json:"length"`
}

// ForecastList is the collection payload for per-user forecast queries.
type ForecastList struct {
	Weathers []ForecastSample `json:"weathers"`
	Length   int              `json:"length"`
}

// GistCommentList is the collection payload for per-user gist comment queries.
type GistCommentList struct {
	Comments []GistComment `json:"comments"`
	Length   int           `json:"length"`
}

// UserList is the collection payload for the user listing endpoint.
type UserList struct {
	Users  []User `json:"users"`
	Length int    `json:"length"`
}
