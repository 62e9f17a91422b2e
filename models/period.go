package models

import "fmt"

// Period is the rolling lookback window anchored at the latest record's date.
type Period string

const (
	PERIOD_DAY   Period = "day"
	PERIOD_WEEK  Period = "week"
	PERIOD_MONTH Period = "month"
	PERIOD_YEAR  Period = "year"
)

// ParsePeriod validates a period selector coming off the wire.
// The empty string defaults to week, matching the dashboard's default tab.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PERIOD_DAY, PERIOD_WEEK, PERIOD_MONTH, PERIOD_YEAR:
		return Period(s), nil
	case "":
		return PERIOD_WEEK, nil
	}
	return "", fmt.Errorf("invalid period %q", s)
}
