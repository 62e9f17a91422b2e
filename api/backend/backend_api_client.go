package backend

import (
	"context"
	"fmt"

	"temple-server/api"
	"temple-server/models"
)

// BackendApiClient embeds the common HTTPClient
type BackendApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewBackendApiClient creates a new instance of BackendApiClient
func NewBackendApiClient(httpClient *api.HTTPClient) *BackendApiClient {
	return &BackendApiClient{
		HTTPClient: httpClient,
	}
}

// GetRealtimeMetrics retrieves the latest realtime metrics snapshot
func (c *BackendApiClient) GetRealtimeMetrics(ctx context.Context) (*models.RealtimeMetrics, error) {
	var response models.RealtimeMetrics
	err := c.Request(ctx, "GET", "/api/realtime_metrics", nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetCrowdForecast retrieves an hourly crowd forecast for the given horizon
func (c *BackendApiClient) GetCrowdForecast(ctx context.Context, hours int) ([]models.ForecastPoint, error) {
	var response []models.ForecastPoint
	endpoint := fmt.Sprintf("/api/crowd_forecast?hours=%d", hours)
	err := c.Request(ctx, "GET", endpoint, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// PredictCrowd requests a detailed crowd prediction
func (c *BackendApiClient) PredictCrowd(ctx context.Context, req models.PredictRequest) (*models.PredictResponse, error) {
	var response models.PredictResponse
	err := c.Request(ctx, "POST", "/api/predict_crowd", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// PredictSimple requests a prediction from the legacy day/festival/weather model
func (c *BackendApiClient) PredictSimple(ctx context.Context, req models.SimplePredictRequest) (*models.SimplePredictResponse, error) {
	var response models.SimplePredictResponse
	err := c.Request(ctx, "POST", "/api/predict_simple", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
