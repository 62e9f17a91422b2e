package models

// Derived views handed to the dashboard. All of these are pure functions of
// the record sequence (plus, for QueueMetrics, the latest realtime snapshot)
// and are recomputed on every request.

// TrendPoint is one (date, total) step of the daily crowd trend.
type TrendPoint struct {
	Date  string `json:"t"`
	Total int    `json:"y"`
}

// MonthlyTotal is the summed crowd for one YYYY-MM month.
type MonthlyTotal struct {
	Month string `json:"m"`
	Total int    `json:"v"`
}

// WeekdayAverage is the rounded mean crowd for one weekday name.
type WeekdayAverage struct {
	Day     string `json:"d"`
	Average int    `json:"v"`
}

// WeatherAverage is the rounded mean crowd under one weather category.
type WeatherAverage struct {
	Weather string `json:"w"`
	Average int    `json:"v"`
}

// FestivalDay is one entry of the top-festival ranking.
type FestivalDay struct {
	Date     string `json:"date"`
	Festival string `json:"f"`
	Total    int    `json:"v"`
}

// VisitorTrend is one quick-metric card (Today / This Week / ...).
type VisitorTrend struct {
	Period    string `json:"period"`
	Visitors  int    `json:"visitors"`
	GrowthPct int    `json:"growth"`
}

// QueueMetrics are the queue-analytics figures blended from the filtered
// window and, when present, the live queue wait time.
type QueueMetrics struct {
	AvgDailyVisitors int `json:"avg_daily_visitors"`
	AvgWaitTimeMin   int `json:"avg_wait_time_min"`
	ThroughputPerDay int `json:"throughput_per_day"`
	DropOffRatePct   int `json:"drop_off_rate_pct"`
	EfficiencyPct    int `json:"efficiency_pct"`
	DayChangePct     int `json:"day_change_pct"`
	PeriodChangePct  int `json:"period_change_pct"`
}
