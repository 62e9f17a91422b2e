package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"temple-server/config"
	dao "temple-server/dao/redis"
	"temple-server/models"
	"temple-server/service"
)

const HOURS_QUERY_ARG = "hours"

// MetricsHandler serves the realtime/forecast/predict endpoints through the
// gateway. None of these can fail from the client's perspective; the gateway
// substitutes synthetic data on any backend trouble.
type MetricsHandler struct {
	gateway    *service.MetricsGateway
	analytics  *service.AnalyticsService
	metricsDao *dao.RedisMetricsDAO // optional
}

func NewMetricsHandler(
	gateway *service.MetricsGateway,
	analytics *service.AnalyticsService,
	metricsDao *dao.RedisMetricsDAO,
) *MetricsHandler {
	return &MetricsHandler{gateway: gateway, analytics: analytics, metricsDao: metricsDao}
}

// GetRealtimeMetrics handles GET /api/realtime_metrics. The poller's latest
// snapshot is preferred, then the redis cache, then a direct gateway call.
func (h *MetricsHandler) GetRealtimeMetrics(w http.ResponseWriter, r *http.Request) {
	if snapshot := h.analytics.RealtimeSnapshot(); snapshot != nil {
		writeJSON(w, snapshot)
		return
	}
	if h.metricsDao != nil {
		if cached, err := h.metricsDao.GetRealtimeSnapshot(); err == nil {
			writeJSON(w, cached)
			return
		}
	}
	m := h.gateway.GetRealtimeMetrics(r.Context())
	writeJSON(w, m)
}

// GetCrowdForecast handles GET /api/crowd_forecast?hours=N.
func (h *MetricsHandler) GetCrowdForecast(w http.ResponseWriter, r *http.Request) {
	hours := config.FORECAST_DEFAULT_HOURS
	if raw := r.URL.Query().Get(HOURS_QUERY_ARG); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid argument "+HOURS_QUERY_ARG, http.StatusBadRequest)
			return
		}
		hours = parsed
	}

	series := h.gateway.GetForecast(r.Context(), hours)
	if r.Context().Err() != nil {
		return // client went away mid-request
	}

	if h.metricsDao != nil {
		if err := h.metricsDao.SetForecast(service.ClampForecastHours(hours), series); err != nil {
			log.Printf("[MetricsHandler] Failed to cache forecast: %v", err)
		}
	}
	writeJSON(w, series)
}

// PredictCrowd handles POST /api/predict_crowd.
func (h *MetricsHandler) PredictCrowd(w http.ResponseWriter, r *http.Request) {
	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.IsHoliday != 0 && req.IsHoliday != 1 {
		http.Error(w, "is_holiday must be 0 or 1", http.StatusBadRequest)
		return
	}
	if req.IsFestivalDay != 0 && req.IsFestivalDay != 1 {
		http.Error(w, "is_festival_day must be 0 or 1", http.StatusBadRequest)
		return
	}

	resp := h.gateway.PredictCrowd(r.Context(), req)
	writeJSON(w, resp)
}

// PredictSimple handles POST /api/predict_simple.
func (h *MetricsHandler) PredictSimple(w http.ResponseWriter, r *http.Request) {
	var req models.SimplePredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Day == "" || req.Weather == "" {
		http.Error(w, "day and weather are required", http.StatusBadRequest)
		return
	}

	resp := h.gateway.PredictSimple(r.Context(), req)
	writeJSON(w, resp)
}

// Ping handles GET /ping
func (h *MetricsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}
