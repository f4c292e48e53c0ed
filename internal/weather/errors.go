package weather

import "errors"

// ErrInsufficientForecastData is returned when the provider forecast covers
// fewer than five distinct calendar days, so no 5-day digest can be built.
var ErrInsufficientForecastData = errors.New("forecast does not cover five distinct days")
