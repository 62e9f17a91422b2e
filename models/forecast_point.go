package models

import "time"

// ForecastPoint is one hourly step of a crowd forecast series.
type ForecastPoint struct {
	Timestamp         time.Time `json:"timestamp"`
	PredictedPilgrims int       `json:"predicted_pilgrims"`
}
