package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"temple-server/api"
	"temple-server/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*BackendApiClient, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewBackendApiClient(api.NewHTTPClient(server.URL))
	return client, server.Close
}

func TestBackendApiClient_GetRealtimeMetrics(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/realtime_metrics", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		w.Write([]byte(`{"active_pilgrims":2650,"queue_wait_time_min":18,"todays_offerings_inr":124500,"events_today":6}`))
	})
	defer closeFn()

	resp, err := client.GetRealtimeMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2650, resp.ActivePilgrims)
	assert.Equal(t, 18, resp.QueueWaitTimeMin)
	assert.Equal(t, 124500, resp.TodaysOfferingsINR)
	assert.Equal(t, 6, resp.EventsToday)
}

func TestBackendApiClient_GetCrowdForecast(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/crowd_forecast", r.URL.Path)
		assert.Equal(t, "24", r.URL.Query().Get("hours"))
		w.Write([]byte(`[{"timestamp":"2024-06-01T06:00:00Z","predicted_pilgrims":1680}]`))
	})
	defer closeFn()

	series, err := client.GetCrowdForecast(context.Background(), 24)

	assert.NoError(t, err)
	assert.Len(t, series, 1)
	assert.Equal(t, 1680, series[0].PredictedPilgrims)
}

func TestBackendApiClient_PredictCrowd(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predict_crowd", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req models.PredictRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.IsFestivalDay)
		assert.Equal(t, "rainy", req.Weather)

		w.Write([]byte(`{"predicted_pilgrims":5400}`))
	})
	defer closeFn()

	resp, err := client.PredictCrowd(context.Background(), models.PredictRequest{
		IsFestivalDay: 1,
		Weather:       "rainy",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5400, resp.PredictedPilgrims)
}

func TestBackendApiClient_PredictSimple(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predict_simple", r.URL.Path)

		var req models.SimplePredictRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Saturday", req.Day)

		w.Write([]byte(`{"predicted_crowd":4000}`))
	})
	defer closeFn()

	resp, err := client.PredictSimple(context.Background(), models.SimplePredictRequest{
		Day:     "Saturday",
		Weather: "sunny",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4000, resp.PredictedCrowd)
}

func TestBackendApiClient_NonOKStatus(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer closeFn()

	_, err := client.GetRealtimeMetrics(context.Background())

	assert.Error(t, err)
	assert.True(t, api.IsStatusError(err))
}
