package models

// RealtimeMetrics is a point-in-time snapshot of live temple activity.
// Only the latest snapshot is ever held; no history is retained.
type RealtimeMetrics struct {
	ActivePilgrims     int `json:"active_pilgrims"`
	QueueWaitTimeMin   int `json:"queue_wait_time_min"`
	TodaysOfferingsINR int `json:"todays_offerings_inr"`
	EventsToday        int `json:"events_today"`
}
