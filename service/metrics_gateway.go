package service

import (
	"context"
	"log"

	"temple-server/api"
	"temple-server/api/backend"
	"temple-server/config"
	"temple-server/models"
)

// fetchOutcome classifies a single backend attempt. The three failure causes
// all collapse to the same synthetic fallback, but are kept distinct so each
// branch stays testable. A cancelled attempt is not a failure and never
// triggers the fallback.
type fetchOutcome int

const (
	outcomeOK fetchOutcome = iota
	outcomeNotConfigured
	outcomeNetworkError
	outcomeBadStatus
	outcomeCancelled
)

// MetricsGateway normalizes access to the crowd backend. Every operation is
// total from the caller's perspective: when the backend is unconfigured or a
// call fails, a synthetic value is substituted and no error escapes.
type MetricsGateway struct {
	backendApi backend.BackendAPI // nil when no base URL is configured
	synth      *SyntheticGenerator
}

// NewMetricsGateway constructs a gateway. Pass a nil backendApi to run fully
// synthetic; that mode never issues a network call.
func NewMetricsGateway(backendApi backend.BackendAPI, synth *SyntheticGenerator) *MetricsGateway {
	return &MetricsGateway{
		backendApi: backendApi,
		synth:      synth,
	}
}

// classify maps an attempt's error onto its outcome.
func classify(ctx context.Context, err error) fetchOutcome {
	if err == nil {
		return outcomeOK
	}
	if ctx.Err() != nil {
		return outcomeCancelled
	}
	if api.IsStatusError(err) {
		return outcomeBadStatus
	}
	return outcomeNetworkError
}

// GetRealtimeMetrics returns the latest snapshot, synthetic when the backend
// is unavailable. A cancelled context yields the zero snapshot.
func (g *MetricsGateway) GetRealtimeMetrics(ctx context.Context) models.RealtimeMetrics {
	m, _ := g.getRealtimeMetrics(ctx)
	return m
}

func (g *MetricsGateway) getRealtimeMetrics(ctx context.Context) (models.RealtimeMetrics, fetchOutcome) {
	if g.backendApi == nil {
		return g.synth.RealtimeMetrics(), outcomeNotConfigured
	}
	resp, err := g.backendApi.GetRealtimeMetrics(ctx)
	switch outcome := classify(ctx, err); outcome {
	case outcomeOK:
		return *resp, outcomeOK
	case outcomeCancelled:
		return models.RealtimeMetrics{}, outcomeCancelled
	default:
		log.Printf("[MetricsGateway] realtime metrics fetch failed, using synthetic snapshot: %v", err)
		return g.synth.RealtimeMetrics(), outcome
	}
}

// ClampForecastHours bounds a requested horizon to [1, 240].
func ClampForecastHours(hours int) int {
	if hours < config.FORECAST_MIN_HOURS {
		return config.FORECAST_MIN_HOURS
	}
	if hours > config.FORECAST_MAX_HOURS {
		return config.FORECAST_MAX_HOURS
	}
	return hours
}

// GetForecast returns exactly clamp(hours) hourly points starting at now+1h,
// synthetic when the backend is unavailable.
func (g *MetricsGateway) GetForecast(ctx context.Context, hours int) []models.ForecastPoint {
	f, _ := g.getForecast(ctx, hours)
	return f
}

func (g *MetricsGateway) getForecast(ctx context.Context, hours int) ([]models.ForecastPoint, fetchOutcome) {
	hours = ClampForecastHours(hours)
	if g.backendApi == nil {
		return g.synth.Forecast(hours), outcomeNotConfigured
	}
	resp, err := g.backendApi.GetCrowdForecast(ctx, hours)
	switch outcome := classify(ctx, err); outcome {
	case outcomeOK:
		return resp, outcomeOK
	case outcomeCancelled:
		return nil, outcomeCancelled
	default:
		log.Printf("[MetricsGateway] forecast fetch failed, using synthetic series: %v", err)
		return g.synth.Forecast(hours), outcome
	}
}

// PredictCrowd returns a detailed prediction, synthetic when the backend is
// unavailable.
func (g *MetricsGateway) PredictCrowd(ctx context.Context, req models.PredictRequest) models.PredictResponse {
	p, _ := g.predictCrowd(ctx, req)
	return p
}

func (g *MetricsGateway) predictCrowd(ctx context.Context, req models.PredictRequest) (models.PredictResponse, fetchOutcome) {
	if g.backendApi == nil {
		return models.PredictResponse{PredictedPilgrims: g.synth.PredictCrowd(req)}, outcomeNotConfigured
	}
	resp, err := g.backendApi.PredictCrowd(ctx, req)
	switch outcome := classify(ctx, err); outcome {
	case outcomeOK:
		return *resp, outcomeOK
	case outcomeCancelled:
		return models.PredictResponse{}, outcomeCancelled
	default:
		log.Printf("[MetricsGateway] predict_crowd failed, using synthetic prediction: %v", err)
		return models.PredictResponse{PredictedPilgrims: g.synth.PredictCrowd(req)}, outcome
	}
}

// PredictSimple returns a prediction from the legacy day/festival/weather
// model, synthetic when the backend is unavailable.
func (g *MetricsGateway) PredictSimple(ctx context.Context, req models.SimplePredictRequest) models.SimplePredictResponse {
	p, _ := g.predictSimple(ctx, req)
	return p
}

func (g *MetricsGateway) predictSimple(ctx context.Context, req models.SimplePredictRequest) (models.SimplePredictResponse, fetchOutcome) {
	if g.backendApi == nil {
		return models.SimplePredictResponse{PredictedCrowd: g.synth.PredictSimple(req)}, outcomeNotConfigured
	}
	resp, err := g.backendApi.PredictSimple(ctx, req)
	switch outcome := classify(ctx, err); outcome {
	case outcomeOK:
		return *resp, outcomeOK
	case outcomeCancelled:
		return models.SimplePredictResponse{}, outcomeCancelled
	default:
		log.Printf("[MetricsGateway] predict_simple failed, using synthetic prediction: %v", err)
		return models.SimplePredictResponse{PredictedCrowd: g.synth.PredictSimple(req)}, outcome
	}
}
