package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"temple-server/models"
)

// SyntheticGenerator produces plausible crowd figures when no backend is
// configured or a backend call fails. It is parameterized by a clock and a
// seeded random source so tests can pin both.
type SyntheticGenerator struct {
	now func() time.Time
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticGenerator builds a generator around the given clock and source.
func NewSyntheticGenerator(now func() time.Time, rng *rand.Rand) *SyntheticGenerator {
	return &SyntheticGenerator{now: now, rng: rng}
}

// NewDefaultSyntheticGenerator builds a generator on the wall clock.
func NewDefaultSyntheticGenerator() *SyntheticGenerator {
	return NewSyntheticGenerator(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// jitter returns a uniform value in [-n, n].
func (g *SyntheticGenerator) jitter(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(2*n+1) - n
}

func (g *SyntheticGenerator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// peakHour reports the two daily darshan rush windows.
func peakHour(hour int) bool {
	return (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 19)
}

func isWeekendDay(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// hourFactor is the fixed hourly demand shape: low overnight, moderate
// morning, elevated midday, highest evening.
func hourFactor(hour int) float64 {
	switch {
	case hour < 5:
		return 0.3
	case hour < 8:
		return 0.7
	case hour < 11:
		return 1.0
	case hour < 16:
		return 0.6
	case hour < 20:
		return 1.1
	default:
		return 0.5
	}
}

// RealtimeMetrics synthesizes a point-in-time snapshot. Active pilgrims are
// elevated during the morning and evening windows and never drop below 50.
func (g *SyntheticGenerator) RealtimeMetrics() models.RealtimeMetrics {
	hour := g.now().Hour()
	base := 2400 + g.jitter(150)
	if hour >= 8 && hour <= 10 {
		base += 400
	}
	if hour >= 17 && hour <= 19 {
		base += 500
	}

	active := base
	if active < 50 {
		active = 50
	}
	wait := 15 + (base-2400)/200 + g.jitter(4)
	if wait < 5 {
		wait = 5
	}
	offerings := 100_000 + g.intn(40_001)
	if offerings < 10_000 {
		offerings = 10_000
	}
	events := 6 + g.jitter(3)
	if events < 1 {
		events = 1
	}
	if events > 12 {
		events = 12
	}

	return models.RealtimeMetrics{
		ActivePilgrims:     active,
		QueueWaitTimeMin:   wait,
		TodaysOfferingsINR: offerings,
		EventsToday:        events,
	}
}

// Forecast synthesizes one point per hour from now+1h to now+hours, on whole
// hours. hours must already be clamped by the caller.
func (g *SyntheticGenerator) Forecast(hours int) []models.ForecastPoint {
	start := g.now().Truncate(time.Hour)
	out := make([]models.ForecastPoint, 0, hours)
	for i := 1; i <= hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		weekend := 1.0
		if isWeekendDay(ts.Weekday()) {
			weekend = 1.4
		}
		predicted := int(2400*hourFactor(ts.Hour())*weekend) + g.jitter(200)
		if predicted < 50 {
			predicted = 50
		}
		out = append(out, models.ForecastPoint{Timestamp: ts, PredictedPilgrims: predicted})
	}
	return out
}

// PredictCrowd synthesizes a detailed prediction from fixed offsets for
// weekends, holidays, festivals, the peak-hour windows and weather.
func (g *SyntheticGenerator) PredictCrowd(req models.PredictRequest) int {
	ts := g.now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	y := 2000
	if isWeekendDay(ts.Weekday()) {
		y += 1200
	}
	if req.IsHoliday == 1 {
		y += 1700
	}
	if req.IsFestivalDay == 1 {
		y += 3500
	}
	if peakHour(ts.Hour()) {
		y += 800
	}
	y += weatherEffect(req.Weather)
	y += g.jitter(150)
	if y < 50 {
		y = 50
	}
	return y
}

// PredictSimple mirrors the legacy day/festival/weather heuristic: no clock
// input, a fixed typical-hour effect instead.
func (g *SyntheticGenerator) PredictSimple(req models.SimplePredictRequest) int {
	day := strings.TrimSpace(req.Day)
	festival := strings.TrimSpace(req.Festival)
	if festival == "" {
		festival = "No"
	}

	y := 2000
	if day == "Saturday" || day == "Sunday" {
		y += 1200
	}
	if festival != "No" && festival != "N/A" {
		y += 3500
	}
	y += 800 // typical hour effect around peak
	y += weatherEffect(req.Weather)
	if y < 50 {
		y = 50
	}
	return y
}

// weatherEffect maps a weather category onto its crowd effect. Unknown
// values behave like sunny.
func weatherEffect(weather string) int {
	switch strings.ToLower(strings.TrimSpace(weather)) {
	case "rainy":
		return -600
	case "stormy":
		return -1200
	case "cloudy":
		return -100
	default:
		return 0
	}
}
