package handlers

import (
	"log"
	"net/http"

	"temple-server/models"
	"temple-server/service"
	"temple-server/util"
)

const PERIOD_QUERY_ARG = "period"

// AnalyticsSummary is the quick-metrics payload for the dashboard header.
type AnalyticsSummary struct {
	Period        models.Period         `json:"period"`
	VisitorTrends []models.VisitorTrend `json:"visitor_trends"`
	QueueMetrics  models.QueueMetrics   `json:"queue_metrics"`
	DatasetError  string                `json:"dataset_error,omitempty"`
}

// AnalyticsViews bundles the chart series for the analytics page.
type AnalyticsViews struct {
	Period          models.Period           `json:"period"`
	DailyTrend      []models.TrendPoint     `json:"daily_trend"`
	MonthlyTotals   []models.MonthlyTotal   `json:"monthly_totals"`
	WeekdayAverages []models.WeekdayAverage `json:"weekday_averages"`
	WeatherAverages []models.WeatherAverage `json:"weather_averages"`
	TopFestivals    []models.FestivalDay    `json:"top_festivals"`
}

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetSummary handles GET /v1/analytics/summary?period=week
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	period, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}

	writeJSON(w, AnalyticsSummary{
		Period:        period,
		VisitorTrends: h.analytics.VisitorTrends(),
		QueueMetrics:  h.analytics.QueueMetrics(period),
		DatasetError:  h.analytics.LoadError(),
	})
}

// GetViews handles GET /v1/analytics/views?period=week
func (h *AnalyticsHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	period, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}

	writeJSON(w, AnalyticsViews{
		Period:          period,
		DailyTrend:      h.analytics.DailyTrend(period),
		MonthlyTotals:   h.analytics.MonthlyTotals(),
		WeekdayAverages: h.analytics.WeekdayAverages(),
		WeatherAverages: h.analytics.WeatherAverages(),
		TopFestivals:    h.analytics.TopFestivalDays(),
	})
}

// GetReport handles GET /v1/analytics/report, returning a standalone HTML
// chart page for the selected period.
func (h *AnalyticsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	period, ok := h.parsePeriod(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := util.PlotAnalyticsReport(w, util.AnalyticsReport{
		DailyTrend:      h.analytics.DailyTrend(period),
		MonthlyTotals:   h.analytics.MonthlyTotals(),
		WeekdayAverages: h.analytics.WeekdayAverages(),
		WeatherAverages: h.analytics.WeatherAverages(),
	})
	if err != nil {
		log.Println("Error rendering analytics report:", err)
	}
}

func (h *AnalyticsHandler) parsePeriod(w http.ResponseWriter, r *http.Request) (models.Period, bool) {
	period, err := models.ParsePeriod(r.URL.Query().Get(PERIOD_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+PERIOD_QUERY_ARG, http.StatusBadRequest)
		return "", false
	}
	return period, true
}
