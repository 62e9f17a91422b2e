package models

import "time"

// PredictRequest is the detailed prediction input (POST /api/predict_crowd).
// IsHoliday and IsFestivalDay use 0/1 to match the wire contract.
type PredictRequest struct {
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	IsHoliday     int        `json:"is_holiday,omitempty"`
	IsFestivalDay int        `json:"is_festival_day,omitempty"`
	Weather       string     `json:"weather,omitempty"` // sunny/cloudy/rainy/stormy
}

type PredictResponse struct {
	PredictedPilgrims int `json:"predicted_pilgrims"`
}

// SimplePredictRequest is the legacy prediction input (POST /api/predict_simple).
type SimplePredictRequest struct {
	Day      string `json:"day"`
	Festival string `json:"festival,omitempty"`
	Weather  string `json:"weather"`
}

type SimplePredictResponse struct {
	PredictedCrowd int `json:"predicted_crowd"`
}
