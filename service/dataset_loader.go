package service

import (
	"log"

	"temple-server/util"
)

// DatasetLoader performs the one-shot load of the crowd CSV at startup.
// A load failure leaves the analytics service with an empty sequence and a
// user-visible error message; it is never retried.
type DatasetLoader struct {
	analytics *AnalyticsService
}

// NewDatasetLoader constructs a DatasetLoader feeding the given service.
func NewDatasetLoader(analytics *AnalyticsService) *DatasetLoader {
	return &DatasetLoader{analytics: analytics}
}

// Load reads and parses the dataset, installing it into the analytics
// service. The returned error is informational; the service already holds
// the degraded state.
func (dl *DatasetLoader) Load(filePath string) error {
	records, err := util.ReadCrowdRecordsFromCSV(filePath)
	if err != nil {
		log.Printf("[DatasetLoader] Failed to load dataset %s: %v", filePath, err)
		dl.analytics.SetLoadError("Failed to load crowd dataset")
		return err
	}
	log.Printf("[DatasetLoader] Loaded %d crowd records from %s", len(records), filePath)
	dl.analytics.SetRecords(records)
	return nil
}
