package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Backend API config.
// When TEMPLE_BACKEND_API_BASE is unset the gateway runs fully synthetic
// and never issues a network call.
const BACKEND_API_BASE_ENV = "TEMPLE_BACKEND_API_BASE"

// Metrics poller config
const REALTIME_POLL_INTERVAL = 10 * time.Second

// Forecast config
const FORECAST_DEFAULT_HOURS = 48
const FORECAST_MIN_HOURS = 1
const FORECAST_MAX_HOURS = 240

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CROWD_DATASET_RESOURCE = "crowd.csv"
const REALTIME_METRICS_RESOURCE = "realtime_metrics.json"
const CROWD_FORECAST_RESOURCE = "crowd_forecast.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// BackendAPIBase returns the configured backend base URL, or "" when the
// server should run with synthetic data only.
func BackendAPIBase() string {
	return os.Getenv(BACKEND_API_BASE_ENV)
}
