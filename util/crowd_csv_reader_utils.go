package util

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"

	"temple-server/models"
)

// ParseCrowdCSV parses the crowd dataset (header row, then
// date,day,festival,weather,total). Malformed or short rows are skipped
// silently; festival "N/A" means no festival. The returned slice is sorted
// ascending by date.
func ParseCrowdCSV(text string) []models.CrowdRecord {
	lines := strings.Split(strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n"), "\n")
	out := []models.CrowdRecord{}
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 5 {
			continue
		}
		total, err := strconv.Atoi(strings.TrimSpace(parts[4]))
		if err != nil || total < 0 {
			continue
		}
		var festival *string
		if f := strings.TrimSpace(parts[2]); f != "" && f != "N/A" {
			festival = &f
		}
		out = append(out, models.CrowdRecord{
			Date:     strings.TrimSpace(parts[0]),
			Day:      strings.TrimSpace(parts[1]),
			Festival: festival,
			Weather:  models.NormalizeWeather(parts[3]),
			Total:    total,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ReadCrowdRecordsFromCSV loads the crowd dataset from disk.
func ReadCrowdRecordsFromCSV(filePath string) ([]models.CrowdRecord, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return ParseCrowdCSV(string(data)), nil
}
