package backend

import (
	"context"
	"fmt"

	"temple-server/models"
	"temple-server/util"
)

const REALTIME_METRICS_RESPONSE_PATH = "./resources/realtime_metrics.json"
const CROWD_FORECAST_RESPONSE_PATH = "./resources/crowd_forecast.json"

// BackendApiClientMock embeds mocked logic for the backend api client
type BackendApiClientMock struct {
}

// NewBackendApiClientMock creates a new instance of BackendApiClientMock
func NewBackendApiClientMock() *BackendApiClientMock {
	return &BackendApiClientMock{}
}

// GetRealtimeMetrics retrieves a canned realtime metrics snapshot
func (c *BackendApiClientMock) GetRealtimeMetrics(ctx context.Context) (*models.RealtimeMetrics, error) {
	response, err := util.ReadRealtimeMetricsFromJSON(REALTIME_METRICS_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read realtime metrics response from json")
		return nil, err
	}

	return response, nil
}

// GetCrowdForecast retrieves a canned forecast series, trimmed to the horizon
func (c *BackendApiClientMock) GetCrowdForecast(ctx context.Context, hours int) ([]models.ForecastPoint, error) {
	response, err := util.ReadForecastFromJSON(CROWD_FORECAST_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read crowd forecast response from json")
		return nil, err
	}

	if hours > 0 && hours < len(response) {
		response = response[:hours]
	}
	return response, nil
}

// PredictCrowd returns a fixed prediction
func (c *BackendApiClientMock) PredictCrowd(ctx context.Context, req models.PredictRequest) (*models.PredictResponse, error) {
	return &models.PredictResponse{PredictedPilgrims: 2400}, nil
}

// PredictSimple returns a fixed prediction
func (c *BackendApiClientMock) PredictSimple(ctx context.Context, req models.SimplePredictRequest) (*models.SimplePredictResponse, error) {
	return &models.SimplePredictResponse{PredictedCrowd: 2000}, nil
}
