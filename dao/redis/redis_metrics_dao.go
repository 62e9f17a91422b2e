package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"temple-server/db"
	"temple-server/models"
)

const REALTIME_METRICS_KEY_V1 = "realtime_metrics_v1"

// CROWD_FORECAST_KEY_FORMAT_V1 caches one forecast series per horizon.
const CROWD_FORECAST_KEY_FORMAT_V1 = "crowd_forecast_v1:%d"

// RedisMetricsDAO caches realtime snapshots and forecast series in Redis.
type RedisMetricsDAO struct {
	client db.RedisClient
}

// NewRedisMetricsDAO initializes a RedisMetricsDAO with the Redis client.
func NewRedisMetricsDAO(client db.RedisClient) *RedisMetricsDAO {
	return &RedisMetricsDAO{client: client}
}

// SetRealtimeSnapshot stores the latest realtime metrics snapshot.
func (dao *RedisMetricsDAO) SetRealtimeSnapshot(m models.RealtimeMetrics) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime snapshot: %w", err)
	}
	if err := dao.client.Set(REALTIME_METRICS_KEY_V1, string(data)); err != nil {
		return fmt.Errorf("failed to set realtime snapshot in redis: %w", err)
	}
	return nil
}

// GetRealtimeSnapshot retrieves the cached realtime metrics snapshot.
func (dao *RedisMetricsDAO) GetRealtimeSnapshot() (*models.RealtimeMetrics, error) {
	str, err := dao.client.Get(REALTIME_METRICS_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to get realtime snapshot from redis: %w", err)
	}
	var m models.RealtimeMetrics
	if err := json.Unmarshal([]byte(str), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal realtime snapshot JSON: %w", err)
	}
	return &m, nil
}

// SetForecast caches a forecast series under its horizon.
func (dao *RedisMetricsDAO) SetForecast(hours int, series []models.ForecastPoint) error {
	key := fmt.Sprintf(CROWD_FORECAST_KEY_FORMAT_V1, hours)
	data, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for horizon %d: %w", hours, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetForecast retrieves the cached forecast series for a horizon.
func (dao *RedisMetricsDAO) GetForecast(hours int) ([]models.ForecastPoint, error) {
	key := fmt.Sprintf(CROWD_FORECAST_KEY_FORMAT_V1, hours)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
	}
	var series []models.ForecastPoint
	if err := json.Unmarshal([]byte(str), &series); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return series, nil
}

// DeleteForecast removes a cached forecast series.
func (dao *RedisMetricsDAO) DeleteForecast(hours int) error {
	key := fmt.Sprintf(CROWD_FORECAST_KEY_FORMAT_V1, hours)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete forecast key %s: %w", key, err)
	}
	return nil
}

// ListCachedForecastHorizons returns the horizons for all cached forecasts.
func (dao *RedisMetricsDAO) ListCachedForecastHorizons() ([]int, error) {
	pattern := "crowd_forecast_v1:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast keys: %w", err)
	}

	horizons := make([]int, 0, len(keys))
	for _, k := range keys {
		h, err := strconv.Atoi(strings.TrimPrefix(k, "crowd_forecast_v1:"))
		if err != nil {
			continue
		}
		horizons = append(horizons, h)
	}
	return horizons, nil
}
