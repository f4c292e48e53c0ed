package weather

import (
	"fmt"
	"strings"
)

// ComposeComment renders the digest text for one location. The output is
// deterministic: identical input produces byte-identical text.
//
// Coordinates and temperatures are rendered with %.1f, which rounds halfway
// values to the nearest even digit.
func ComposeComment(city string, lat, lon float64, currentTemp float64, description string, days [DigestDays]DailyForecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather report for %s (%.1f, %.1f)\n", city, lat, lon)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Current temperature: %.1f°C — %s\n", currentTemp, description)
	b.WriteString("\n")
	b.WriteString("Average temperature for the next 5 days:\n")
	for _, day := range days {
		fmt.Fprintf(&b, "%s: %.1f°C\n", day.Date, day.AverageTemperature)
	}

	return b.String()
}
