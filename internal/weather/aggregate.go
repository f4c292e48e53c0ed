// Package weather holds the pure domain logic of the digest pipeline:
// collapsing 3-hour forecast samples into daily averages and rendering the
// fixed-format digest text published to the gist thread.
package weather

import (
	"sort"

	"github.com/lcmendes/weather-gist/models"
)

// DigestDays is the number of forecast days a digest covers.
const DigestDays = 5

// DailyForecast is the aggregate of all forecast samples that fall on one
// calendar date.
type DailyForecast struct {
	// Date is the calendar date in YYYY-MM-DD form, kept in the timezone the
	// provider supplied the samples in.
	Date string

	// AverageTemperature is the arithmetic mean of the sample temperatures
	// of that date, unrounded.
	AverageTemperature float64
}

// AggregateDaily groups forecast samples by the calendar date of their
// timestamp, exactly as supplied by the provider, and averages the
// temperature per date.
//
// The result holds one entry per distinct date in strictly ascending date
// order. Days absent from the input are absent from the output; no gap
// filling happens.
func AggregateDaily(samples []models.ForecastSample) []DailyForecast {
	sums := make(map[string]float64, DigestDays+1)
	counts := make(map[string]int, DigestDays+1)

	for _, sample := range samples {
		day := sample.Date.Format("2006-01-02")
		sums[day] += sample.AverageTemperature
		counts[day]++
	}

	daily := make([]DailyForecast, 0, len(sums))
	for day, sum := range sums {
		daily = append(daily, DailyForecast{
			Date:               day,
			AverageTemperature: sum / float64(counts[day]),
		})
	}

	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return daily
}

// FirstFiveDays returns the first [DigestDays] entries of an aggregated
// forecast. Returns [ErrInsufficientForecastData] when fewer distinct days
// are available.
func FirstFiveDays(daily []DailyForecast) ([DigestDays]DailyForecast, error) {
	var days [DigestDays]DailyForecast

	if len(daily) < DigestDays {
		return days, ErrInsufficientForecastData
	}

	copy(days[:], daily[:DigestDays])
	return days, nil
}
