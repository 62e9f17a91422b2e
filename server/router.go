package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MetricsRoutes is the part of the metrics handler the router needs.
type MetricsRoutes interface {
	GetRealtimeMetrics(w http.ResponseWriter, r *http.Request)
	GetCrowdForecast(w http.ResponseWriter, r *http.Request)
	PredictCrowd(w http.ResponseWriter, r *http.Request)
	PredictSimple(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// AnalyticsRoutes is the part of the analytics handler the router needs.
type AnalyticsRoutes interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetViews(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	metricsHandler   MetricsRoutes
	analyticsHandler AnalyticsRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	metricsHandler MetricsRoutes,
	analyticsHandler AnalyticsRoutes,
	router *mux.Router) *Router {
	return &Router{
		metricsHandler:   metricsHandler,
		analyticsHandler: analyticsHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// Backend-shaped endpoints consumed by the dashboard
	r.router.HandleFunc("/api/realtime_metrics", r.metricsHandler.GetRealtimeMetrics).Methods("GET")
	// expects ?hours={horizon(int)}, clamped to [1, 240]
	r.router.HandleFunc("/api/crowd_forecast", r.metricsHandler.GetCrowdForecast).Methods("GET")
	r.router.HandleFunc("/api/predict_crowd", r.metricsHandler.PredictCrowd).Methods("POST")
	r.router.HandleFunc("/api/predict_simple", r.metricsHandler.PredictSimple).Methods("POST")

	// Derived analytics views, expects ?period={day|week|month|year}
	r.router.HandleFunc("/v1/analytics/summary", r.analyticsHandler.GetSummary).Methods("GET")
	r.router.HandleFunc("/v1/analytics/views", r.analyticsHandler.GetViews).Methods("GET")
	r.router.HandleFunc("/v1/analytics/report", r.analyticsHandler.GetReport).Methods("GET")

	r.router.HandleFunc("/ping", r.metricsHandler.Ping).Methods("GET")
}
