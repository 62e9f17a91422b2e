package service

import (
	"math"
	"sort"
	"sync"
	"time"

	"temple-server/models"
)

const dateLayout = "2006-01-02"

// AnalyticsService derives the dashboard views from the crowd dataset. The
// record sequence is loaded once, kept sorted ascending by date, and never
// mutated afterwards; every view is recomputed from it on demand. The latest
// realtime snapshot feeds only the queue metrics.
type AnalyticsService struct {
	mu       sync.RWMutex
	records  []models.CrowdRecord
	loadErr  string
	realtime *models.RealtimeMetrics
}

// NewAnalyticsService constructs an AnalyticsService with an empty dataset.
func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

// SetRecords installs the dataset. Records are assumed sorted ascending by
// date (the CSV reader guarantees this).
func (as *AnalyticsService) SetRecords(records []models.CrowdRecord) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.records = records
	as.loadErr = ""
}

// SetLoadError records a dataset-load failure. The dataset stays empty and
// every view degrades to its zero default.
func (as *AnalyticsService) SetLoadError(msg string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.records = nil
	as.loadErr = msg
}

// LoadError returns the dataset-load failure message, if any.
func (as *AnalyticsService) LoadError() string {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.loadErr
}

// Records returns the full record sequence.
func (as *AnalyticsService) Records() []models.CrowdRecord {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.records
}

// SetRealtimeSnapshot installs the latest realtime metrics snapshot.
func (as *AnalyticsService) SetRealtimeSnapshot(m models.RealtimeMetrics) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.realtime = &m
}

// RealtimeSnapshot returns the latest snapshot, or nil before the first poll.
func (as *AnalyticsService) RealtimeSnapshot() *models.RealtimeMetrics {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.realtime
}

// FilteredByPeriod returns the subsequence of records from the period's
// lower bound (anchored at the last record's date) through the end.
func (as *AnalyticsService) FilteredByPeriod(period models.Period) []models.CrowdRecord {
	return filterByPeriod(as.Records(), period)
}

func periodLowerBound(last time.Time, period models.Period) time.Time {
	switch period {
	case models.PERIOD_DAY:
		return last.AddDate(0, 0, -1)
	case models.PERIOD_WEEK:
		return last.AddDate(0, 0, -7)
	case models.PERIOD_MONTH:
		return last.AddDate(0, -1, 0)
	default: // year
		return last.AddDate(-1, 0, 0)
	}
}

func filterByPeriod(records []models.CrowdRecord, period models.Period) []models.CrowdRecord {
	if len(records) == 0 {
		return []models.CrowdRecord{}
	}
	last, err := time.Parse(dateLayout, records[len(records)-1].Date)
	if err != nil {
		return records
	}
	fromIso := periodLowerBound(last, period).Format(dateLayout)

	// Records are sorted, so the window is the tail after the lower bound.
	// The bound itself is excluded: "last day" is exactly the latest record,
	// "last 7 days" covers seven dates ending at the anchor.
	start := sort.Search(len(records), func(i int) bool {
		return records[i].Date > fromIso
	})
	return records[start:]
}

// DailyTrend returns the (date, total) series for the selected period.
func (as *AnalyticsService) DailyTrend(period models.Period) []models.TrendPoint {
	filtered := as.FilteredByPeriod(period)
	out := make([]models.TrendPoint, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, models.TrendPoint{Date: r.Date, Total: r.Total})
	}
	return out
}

// MonthlyTotals sums the full sequence per YYYY-MM month, ascending by key.
func (as *AnalyticsService) MonthlyTotals() []models.MonthlyTotal {
	sums := map[string]int{}
	for _, r := range as.Records() {
		sums[r.MonthKey()] += r.Total
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.MonthlyTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.MonthlyTotal{Month: k, Total: sums[k]})
	}
	return out
}

type sumCount struct {
	sum int
	n   int
}

func (sc sumCount) roundedMean() int {
	if sc.n == 0 {
		return 0
	}
	return int(math.Round(float64(sc.sum) / float64(sc.n)))
}

// WeekdayAverages returns the rounded mean crowd for all seven weekday
// names in Sunday-first order, 0 where a weekday never occurs.
func (as *AnalyticsService) WeekdayAverages() []models.WeekdayAverage {
	sums := map[string]sumCount{}
	for _, r := range as.Records() {
		sc := sums[r.Day]
		sc.sum += r.Total
		sc.n++
		sums[r.Day] = sc
	}
	out := make([]models.WeekdayAverage, 0, len(models.Weekdays))
	for _, d := range models.Weekdays {
		out = append(out, models.WeekdayAverage{Day: d, Average: sums[d].roundedMean()})
	}
	return out
}

// WeatherAverages returns the rounded mean crowd for the four canonical
// weather categories in fixed order, 0 where a category never occurs.
func (as *AnalyticsService) WeatherAverages() []models.WeatherAverage {
	sums := map[string]sumCount{}
	for _, r := range as.Records() {
		sc := sums[r.Weather]
		sc.sum += r.Total
		sc.n++
		sums[r.Weather] = sc
	}
	out := make([]models.WeatherAverage, 0, len(models.Weathers))
	for _, w := range models.Weathers {
		out = append(out, models.WeatherAverage{Weather: w, Average: sums[w].roundedMean()})
	}
	return out
}

// TopFestivalDays ranks festival days by crowd, descending, top 6. Ties keep
// their ascending-date order.
func (as *AnalyticsService) TopFestivalDays() []models.FestivalDay {
	fest := []models.FestivalDay{}
	for _, r := range as.Records() {
		if r.Festival != nil {
			fest = append(fest, models.FestivalDay{Date: r.Date, Festival: *r.Festival, Total: r.Total})
		}
	}
	sort.SliceStable(fest, func(i, j int) bool { return fest[i].Total > fest[j].Total })
	if len(fest) > 6 {
		fest = fest[:6]
	}
	return fest
}

// pctChange is the rounded percent change of current vs prior. A zero or
// missing prior counts as no change, never an infinite or NaN result.
func pctChange(current, prior int) int {
	if prior <= 0 {
		return 0
	}
	return int(math.Round(float64(current-prior) / float64(prior) * 100))
}

func sumTotals(records []models.CrowdRecord) int {
	sum := 0
	for _, r := range records {
		sum += r.Total
	}
	return sum
}

// tailSum sums the last n records ending at offset positions from the end.
// tailSum(rs, 7, 0) is the last week, tailSum(rs, 7, 7) the week before.
func tailSum(records []models.CrowdRecord, n, offset int) int {
	end := len(records) - offset
	if end <= 0 {
		return 0
	}
	start := end - n
	if start < 0 {
		start = 0
	}
	return sumTotals(records[start:end])
}

// VisitorTrends builds the Today / This Week / This Month / All-time quick
// metrics with their period-over-period growth.
func (as *AnalyticsService) VisitorTrends() []models.VisitorTrend {
	records := as.Records()
	if len(records) == 0 {
		return []models.VisitorTrend{}
	}
	last := records[len(records)-1]

	dayGrowth := 0
	if len(records) >= 2 {
		dayGrowth = pctChange(last.Total, records[len(records)-2].Total)
	}

	week := tailSum(records, 7, 0)
	month := tailSum(records, 30, 0)

	return []models.VisitorTrend{
		{Period: "Today", Visitors: last.Total, GrowthPct: dayGrowth},
		{Period: "This Week", Visitors: week, GrowthPct: pctChange(week, tailSum(records, 7, 7))},
		{Period: "This Month", Visitors: month, GrowthPct: pctChange(month, tailSum(records, 30, 30))},
		{Period: "All-time", Visitors: sumTotals(records), GrowthPct: 0},
	}
}

// QueueMetrics blends the period-filtered window with the live queue wait
// time when a realtime snapshot is present.
func (as *AnalyticsService) QueueMetrics(period models.Period) models.QueueMetrics {
	as.mu.RLock()
	records := as.records
	realtime := as.realtime
	as.mu.RUnlock()

	if len(records) == 0 {
		return models.QueueMetrics{}
	}

	filtered := filterByPeriod(records, period)
	periodDays := distinctDates(filtered)
	if periodDays == 0 {
		periodDays = 1
	}
	sumFiltered := sumTotals(filtered)
	avgDaily := int(math.Round(float64(sumFiltered) / float64(periodDays)))

	last := records[len(records)-1]
	dayChangePct := 0
	if len(records) >= 2 {
		dayChangePct = pctChange(last.Total, records[len(records)-2].Total)
	}

	// Prior window: the same number of records immediately preceding the
	// filtered window.
	priorSum := tailSum(records, periodDays, len(filtered))
	periodChangePct := pctChange(sumFiltered, priorSum)

	waitMin := 0
	if realtime != nil {
		waitMin = realtime.QueueWaitTimeMin
	} else {
		waitMin = 12 + int(math.Round(float64(avgDaily-2000)/400))
		if waitMin < 5 {
			waitMin = 5
		}
	}

	dropOff := 0
	if dayChangePct < 0 {
		dropOff = -dayChangePct
	}

	eff := 0
	if realtime != nil {
		eff = clampPct(100-realtime.QueueWaitTimeMin*2, 30, 99)
	} else {
		maxInPeriod := 0
		for _, r := range filtered {
			if r.Total > maxInPeriod {
				maxInPeriod = r.Total
			}
		}
		if maxInPeriod == 0 {
			maxInPeriod = 1
		}
		eff = clampPct(int(math.Round(float64(last.Total)/float64(maxInPeriod)*100)), 30, 99)
	}

	return models.QueueMetrics{
		AvgDailyVisitors: avgDaily,
		AvgWaitTimeMin:   waitMin,
		ThroughputPerDay: avgDaily,
		DropOffRatePct:   dropOff,
		EfficiencyPct:    eff,
		DayChangePct:     dayChangePct,
		PeriodChangePct:  periodChangePct,
	}
}

func distinctDates(records []models.CrowdRecord) int {
	seen := map[string]struct{}{}
	for _, r := range records {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}

func clampPct(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
