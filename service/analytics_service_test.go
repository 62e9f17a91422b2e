package service

import (
	"fmt"
	"testing"

	"temple-server/models"
)

func rec(date, day, festival, weather string, total int) models.CrowdRecord {
	var f *string
	if festival != "" {
		f = &festival
	}
	return models.CrowdRecord{Date: date, Day: day, Festival: f, Weather: weather, Total: total}
}

func serviceWith(records ...models.CrowdRecord) *AnalyticsService {
	as := NewAnalyticsService()
	as.SetRecords(records)
	return as
}

func TestFilteredByPeriod_DaySelectsLatestRecord(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Sunny", 1000),
		rec("2024-01-02", "Tuesday", "", "Sunny", 1200),
	)

	filtered := as.FilteredByPeriod(models.PERIOD_DAY)

	if len(filtered) != 1 {
		t.Fatalf("Expected 1 record for period day, got %d", len(filtered))
	}
	if filtered[0].Date != "2024-01-02" {
		t.Errorf("Expected the latest record, got %s", filtered[0].Date)
	}
}

func TestFilteredByPeriod_WeekWindow(t *testing.T) {
	var records []models.CrowdRecord
	for i := 1; i <= 10; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1000+i))
	}
	as := serviceWith(records...)

	filtered := as.FilteredByPeriod(models.PERIOD_WEEK)

	// Anchor 2024-01-10, lower bound 2024-01-03 exclusive: seven dates.
	if len(filtered) != 7 {
		t.Fatalf("Expected 7 records, got %d", len(filtered))
	}
	if filtered[0].Date != "2024-01-04" || filtered[6].Date != "2024-01-10" {
		t.Errorf("Expected window 2024-01-04..2024-01-10, got %s..%s",
			filtered[0].Date, filtered[6].Date)
	}
	// Contiguous tail of the source sequence.
	for i, r := range filtered {
		if r != records[3+i] {
			t.Errorf("Filtered window is not a contiguous tail at index %d", i)
		}
	}
}

func TestFilteredByPeriod_EmptyDataset(t *testing.T) {
	as := NewAnalyticsService()
	for _, p := range []models.Period{models.PERIOD_DAY, models.PERIOD_WEEK, models.PERIOD_MONTH, models.PERIOD_YEAR} {
		if got := as.FilteredByPeriod(p); len(got) != 0 {
			t.Errorf("Expected empty window for period %s, got %d records", p, len(got))
		}
	}
}

func TestMonthlyTotals_GroupsAndSorts(t *testing.T) {
	as := serviceWith(
		rec("2024-02-01", "Thursday", "", "Sunny", 300),
		rec("2024-01-05", "Friday", "", "Sunny", 100),
		rec("2024-01-20", "Saturday", "", "Sunny", 150),
		rec("2024-03-01", "Friday", "", "Sunny", 500),
	)

	totals := as.MonthlyTotals()

	expected := []models.MonthlyTotal{
		{Month: "2024-01", Total: 250},
		{Month: "2024-02", Total: 300},
		{Month: "2024-03", Total: 500},
	}
	if len(totals) != len(expected) {
		t.Fatalf("Expected %d months, got %d", len(expected), len(totals))
	}
	for i := range expected {
		if totals[i] != expected[i] {
			t.Errorf("Month %d: expected %+v, got %+v", i, expected[i], totals[i])
		}
	}
}

func TestWeekdayAverages_AlwaysSevenInOrder(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Sunny", 1000),
		rec("2024-01-08", "Monday", "", "Sunny", 1250),
	)

	averages := as.WeekdayAverages()

	if len(averages) != 7 {
		t.Fatalf("Expected 7 entries, got %d", len(averages))
	}
	for i, d := range models.Weekdays {
		if averages[i].Day != d {
			t.Errorf("Position %d: expected %s, got %s", i, d, averages[i].Day)
		}
	}
	if averages[1].Average != 1125 {
		t.Errorf("Expected Monday average 1125, got %d", averages[1].Average)
	}
	for i, a := range averages {
		if i != 1 && a.Average != 0 {
			t.Errorf("Expected 0 average for %s, got %d", a.Day, a.Average)
		}
	}
}

func TestWeatherAverages_AlwaysFourInOrder(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Rainy", 800),
		rec("2024-01-02", "Tuesday", "", "Rainy", 900),
		rec("2024-01-03", "Wednesday", "", "Windy", 700), // non-canonical, ignored
	)

	averages := as.WeatherAverages()

	if len(averages) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(averages))
	}
	for i, w := range models.Weathers {
		if averages[i].Weather != w {
			t.Errorf("Position %d: expected %s, got %s", i, w, averages[i].Weather)
		}
	}
	if averages[2].Average != 850 {
		t.Errorf("Expected Rainy average 850, got %d", averages[2].Average)
	}
	if averages[0].Average != 0 || averages[1].Average != 0 || averages[3].Average != 0 {
		t.Errorf("Expected 0 for absent categories, got %+v", averages)
	}
}

func TestTopFestivalDays_RankingAndTies(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "Makar Sankranti", "Sunny", 7000),
		rec("2024-01-02", "Tuesday", "", "Sunny", 9000), // not a festival
		rec("2024-02-01", "Thursday", "Festival A", "Sunny", 5000),
		rec("2024-02-02", "Friday", "Festival B", "Sunny", 5000), // tie with A
		rec("2024-03-01", "Friday", "Holi", "Sunny", 8000),
		rec("2024-04-01", "Monday", "Festival C", "Sunny", 4000),
		rec("2024-05-01", "Wednesday", "Festival D", "Sunny", 3000),
		rec("2024-06-01", "Saturday", "Festival E", "Sunny", 2000),
		rec("2024-07-01", "Monday", "Festival F", "Sunny", 1000),
	)

	top := as.TopFestivalDays()

	if len(top) != 6 {
		t.Fatalf("Expected 6 entries, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Total > top[i-1].Total {
			t.Errorf("Ranking not non-increasing at %d: %d > %d", i, top[i].Total, top[i-1].Total)
		}
	}
	// The non-festival 9000 day must not appear.
	if top[0].Total != 8000 || top[0].Festival != "Holi" {
		t.Errorf("Expected Holi on top, got %+v", top[0])
	}
	// Tied totals keep ascending-date order.
	if top[2].Festival != "Festival A" || top[3].Festival != "Festival B" {
		t.Errorf("Expected stable tie order A then B, got %s then %s", top[2].Festival, top[3].Festival)
	}
}

func TestVisitorTrends_DayOverDay(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Sunny", 1000),
		rec("2024-01-02", "Tuesday", "", "Sunny", 1200),
	)

	trends := as.VisitorTrends()

	if len(trends) != 4 {
		t.Fatalf("Expected 4 quick metrics, got %d", len(trends))
	}
	today := trends[0]
	if today.Visitors != 1200 || today.GrowthPct != 20 {
		t.Errorf("Expected Today 1200/+20%%, got %d/%d%%", today.Visitors, today.GrowthPct)
	}
	// No prior non-overlapping week exists, so growth guards to 0.
	if trends[1].Visitors != 2200 || trends[1].GrowthPct != 0 {
		t.Errorf("Expected This Week 2200/0%%, got %d/%d%%", trends[1].Visitors, trends[1].GrowthPct)
	}
	allTime := trends[3]
	if allTime.Visitors != 2200 || allTime.GrowthPct != 0 {
		t.Errorf("Expected All-time 2200/0%%, got %d/%d%%", allTime.Visitors, allTime.GrowthPct)
	}
}

func TestVisitorTrends_ZeroPriorIsNoChange(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Sunny", 0),
		rec("2024-01-02", "Tuesday", "", "Sunny", 500),
	)

	trends := as.VisitorTrends()

	if trends[0].GrowthPct != 0 {
		t.Errorf("Expected 0%% with a zero prior day, got %d%%", trends[0].GrowthPct)
	}
}

func TestVisitorTrends_WeekOverWeek(t *testing.T) {
	var records []models.CrowdRecord
	// Prior week 7x1000, current week 7x1100.
	for i := 1; i <= 7; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1000))
	}
	for i := 8; i <= 14; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1100))
	}
	as := serviceWith(records...)

	trends := as.VisitorTrends()

	week := trends[1]
	if week.Visitors != 7700 {
		t.Errorf("Expected week sum 7700, got %d", week.Visitors)
	}
	if week.GrowthPct != 10 {
		t.Errorf("Expected +10%% week over week, got %d%%", week.GrowthPct)
	}
}

func TestVisitorTrends_EmptyDataset(t *testing.T) {
	as := NewAnalyticsService()
	if got := as.VisitorTrends(); len(got) != 0 {
		t.Errorf("Expected no trends for empty dataset, got %d", len(got))
	}
}

func TestQueueMetrics_WithLiveSnapshot(t *testing.T) {
	var records []models.CrowdRecord
	for i := 1; i <= 8; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1200))
	}
	as := serviceWith(records...)
	as.SetRealtimeSnapshot(models.RealtimeMetrics{QueueWaitTimeMin: 18})

	qm := as.QueueMetrics(models.PERIOD_WEEK)

	if qm.AvgWaitTimeMin != 18 {
		t.Errorf("Expected live wait 18, got %d", qm.AvgWaitTimeMin)
	}
	// Efficiency anchors on the live wait: 100 - 18*2 = 64.
	if qm.EfficiencyPct != 64 {
		t.Errorf("Expected efficiency 64, got %d", qm.EfficiencyPct)
	}
	if qm.AvgDailyVisitors != 1200 || qm.ThroughputPerDay != 1200 {
		t.Errorf("Expected avg/throughput 1200, got %d/%d", qm.AvgDailyVisitors, qm.ThroughputPerDay)
	}
	if qm.DayChangePct != 0 || qm.DropOffRatePct != 0 {
		t.Errorf("Expected flat day change, got %d%%/%d%%", qm.DayChangePct, qm.DropOffRatePct)
	}
}

func TestQueueMetrics_HeuristicWithoutSnapshot(t *testing.T) {
	var records []models.CrowdRecord
	for i := 1; i <= 8; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1200))
	}
	as := serviceWith(records...)

	qm := as.QueueMetrics(models.PERIOD_WEEK)

	// Heuristic wait: 12 + (1200-2000)/400 = 10.
	if qm.AvgWaitTimeMin != 10 {
		t.Errorf("Expected heuristic wait 10, got %d", qm.AvgWaitTimeMin)
	}
	// All totals equal: last/max = 100%, clamped to 99.
	if qm.EfficiencyPct != 99 {
		t.Errorf("Expected efficiency clamped to 99, got %d", qm.EfficiencyPct)
	}
}

func TestQueueMetrics_WaitFloor(t *testing.T) {
	as := serviceWith(rec("2024-01-01", "Monday", "", "Sunny", 0))

	qm := as.QueueMetrics(models.PERIOD_DAY)

	// 12 + (0-2000)/400 = 7, above the floor; a tiny average still holds >= 5.
	if qm.AvgWaitTimeMin < 5 {
		t.Errorf("Expected wait >= 5, got %d", qm.AvgWaitTimeMin)
	}
	if qm.EfficiencyPct < 30 || qm.EfficiencyPct > 99 {
		t.Errorf("Expected efficiency in [30,99], got %d", qm.EfficiencyPct)
	}
}

func TestQueueMetrics_DropOffOnDecline(t *testing.T) {
	as := serviceWith(
		rec("2024-01-01", "Monday", "", "Sunny", 2000),
		rec("2024-01-02", "Tuesday", "", "Sunny", 1000),
	)

	qm := as.QueueMetrics(models.PERIOD_WEEK)

	if qm.DayChangePct != -50 {
		t.Errorf("Expected day change -50%%, got %d%%", qm.DayChangePct)
	}
	if qm.DropOffRatePct != 50 {
		t.Errorf("Expected drop-off 50%%, got %d%%", qm.DropOffRatePct)
	}
}

func TestQueueMetrics_EmptyDataset(t *testing.T) {
	as := NewAnalyticsService()

	if qm := as.QueueMetrics(models.PERIOD_WEEK); qm != (models.QueueMetrics{}) {
		t.Errorf("Expected zero metrics for empty dataset, got %+v", qm)
	}
}

func TestQueueMetrics_PeriodOverPeriod(t *testing.T) {
	var records []models.CrowdRecord
	for i := 1; i <= 7; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1000))
	}
	for i := 8; i <= 14; i++ {
		records = append(records, rec(fmt.Sprintf("2024-01-%02d", i), "Monday", "", "Sunny", 1500))
	}
	as := serviceWith(records...)

	qm := as.QueueMetrics(models.PERIOD_WEEK)

	// Current window 7x1500 vs the prior 7 records 7x1000.
	if qm.PeriodChangePct != 50 {
		t.Errorf("Expected +50%% period over period, got %d%%", qm.PeriodChangePct)
	}
}
