package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"temple-server/models"
)

// AnalyticsReport bundles the derived views rendered into the HTML report.
type AnalyticsReport struct {
	DailyTrend      []models.TrendPoint
	MonthlyTotals   []models.MonthlyTotal
	WeekdayAverages []models.WeekdayAverage
	WeatherAverages []models.WeatherAverage
}

// PlotAnalyticsReport renders the analytics charts as one standalone HTML page.
func PlotAnalyticsReport(w io.Writer, report AnalyticsReport) error {
	page := components.NewPage()
	page.PageTitle = "Temple Crowd Analytics"

	page.AddCharts(
		dailyTrendChart(report.DailyTrend),
		monthlyTotalsChart(report.MonthlyTotals),
		weekdayAveragesChart(report.WeekdayAverages),
		weatherAveragesChart(report.WeatherAverages),
	)

	return page.Render(w)
}

func dailyTrendChart(trend []models.TrendPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Daily Crowd Trend",
			Subtitle: "Time series for the selected period",
		}),
	)

	dates := make([]string, 0, len(trend))
	values := make([]opts.LineData, 0, len(trend))
	for _, p := range trend {
		dates = append(dates, p.Date)
		values = append(values, opts.LineData{Value: p.Total})
	}
	line.SetXAxis(dates).AddSeries("Visitors", values)
	return line
}

func monthlyTotalsChart(totals []models.MonthlyTotal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Monthly Totals",
			Subtitle: "Aggregated crowd per month",
		}),
	)

	months := make([]string, 0, len(totals))
	values := make([]opts.BarData, 0, len(totals))
	for _, t := range totals {
		months = append(months, t.Month)
		values = append(values, opts.BarData{Value: t.Total})
	}
	bar.SetXAxis(months).AddSeries("Visitors", values)
	return bar
}

func weekdayAveragesChart(averages []models.WeekdayAverage) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Weekday Averages",
			Subtitle: "Average crowd by day of week",
		}),
	)

	days := make([]string, 0, len(averages))
	values := make([]opts.BarData, 0, len(averages))
	for _, a := range averages {
		days = append(days, a.Day)
		values = append(values, opts.BarData{Value: a.Average})
	}
	bar.SetXAxis(days).AddSeries("Average", values)
	return bar
}

func weatherAveragesChart(averages []models.WeatherAverage) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Weather Impact",
			Subtitle: "Average crowd by weather condition",
		}),
	)

	conditions := make([]string, 0, len(averages))
	values := make([]opts.BarData, 0, len(averages))
	for _, a := range averages {
		conditions = append(conditions, a.Weather)
		values = append(values, opts.BarData{Value: a.Average})
	}
	bar.SetXAxis(conditions).AddSeries("Average", values)
	return bar
}
