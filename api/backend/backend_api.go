package backend

import (
	"context"

	"temple-server/models"
)

// BackendAPI defines the interface for interacting with the crowd backend
type BackendAPI interface {
	GetRealtimeMetrics(ctx context.Context) (*models.RealtimeMetrics, error)
	GetCrowdForecast(ctx context.Context, hours int) ([]models.ForecastPoint, error)
	PredictCrowd(ctx context.Context, req models.PredictRequest) (*models.PredictResponse, error)
	PredictSimple(ctx context.Context, req models.SimplePredictRequest) (*models.SimplePredictResponse, error)
}
