package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"temple-server/models"
)

// ReadRealtimeMetricsFromJSON loads a RealtimeMetrics snapshot from JSON on disk.
func ReadRealtimeMetricsFromJSON(filePath string) (*models.RealtimeMetrics, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RealtimeMetrics
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RealtimeMetrics: %w", err)
	}
	return &resp, nil
}

// ReadForecastFromJSON loads a forecast series from JSON on disk.
func ReadForecastFromJSON(filePath string) ([]models.ForecastPoint, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp []models.ForecastPoint
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast series: %w", err)
	}
	return resp, nil
}

// PrintRealtimeMetricsPartially prints key fields of a RealtimeMetrics snapshot.
func PrintRealtimeMetricsPartially(m *models.RealtimeMetrics) {
	fmt.Printf("Active pilgrims: %d\n", m.ActivePilgrims)
	fmt.Printf("Queue wait: %d min\n", m.QueueWaitTimeMin)
	fmt.Printf("Offerings today: INR %d\n", m.TodaysOfferingsINR)
	fmt.Printf("Events today: %d\n", m.EventsToday)
}
