package models

import "strings"

// Canonical weather categories. CSV values parse case-insensitively into
// these; anything else is kept on the record verbatim and simply falls
// outside every canonical aggregation bucket.
const (
	WEATHER_SUNNY  = "Sunny"
	WEATHER_CLOUDY = "Cloudy"
	WEATHER_RAINY  = "Rainy"
	WEATHER_STORMY = "Stormy"
)

// Weathers is the fixed category order used by the weather-average view.
var Weathers = []string{WEATHER_SUNNY, WEATHER_CLOUDY, WEATHER_RAINY, WEATHER_STORMY}

// Weekdays is the fixed Sunday-first order used by the weekday-average view.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// CrowdRecord is one daily visitor-count observation.
// Day is stored as provided by the dataset, not recomputed from Date.
type CrowdRecord struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Day      string  `json:"day"`  // Monday..Sunday
	Festival *string `json:"festival"` // nil when the source says N/A
	Weather  string  `json:"weather"`
	Total    int     `json:"total"`
}

// MonthKey returns the YYYY-MM grouping key for the record's date.
func (r CrowdRecord) MonthKey() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// NormalizeWeather maps a raw weather string onto its canonical spelling.
// Unknown values are returned unchanged.
func NormalizeWeather(raw string) string {
	for _, w := range Weathers {
		if strings.EqualFold(strings.TrimSpace(raw), w) {
			return w
		}
	}
	return strings.TrimSpace(raw)
}
