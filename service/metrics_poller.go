package service

import (
	"context"
	"log"
	"time"

	dao "temple-server/dao/redis"
)

// MetricsPoller refreshes the realtime snapshot through the gateway on a
// fixed interval. The next fetch is scheduled only after the previous one
// completes, so at most one request is ever in flight, and no fetch runs
// after Stop returns.
type MetricsPoller struct {
	gateway    *MetricsGateway
	analytics  *AnalyticsService
	metricsDao *dao.RedisMetricsDAO // optional write-through cache
	interval   time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMetricsPoller constructs a poller. metricsDao may be nil.
func NewMetricsPoller(
	gateway *MetricsGateway,
	analytics *AnalyticsService,
	metricsDao *dao.RedisMetricsDAO,
	interval time.Duration,
) *MetricsPoller {
	return &MetricsPoller{
		gateway:    gateway,
		analytics:  analytics,
		metricsDao: metricsDao,
		interval:   interval,
	}
}

// Start launches the polling loop. The first fetch runs immediately.
func (mp *MetricsPoller) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	mp.cancel = cancel
	mp.done = make(chan struct{})
	go mp.run(ctx)
}

// Stop cancels the loop and waits for the in-flight iteration to finish.
func (mp *MetricsPoller) Stop() {
	if mp.cancel == nil {
		return
	}
	mp.cancel()
	<-mp.done
}

func (mp *MetricsPoller) run(ctx context.Context) {
	defer close(mp.done)
	for {
		mp.fetchOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(mp.interval):
		}
	}
}

func (mp *MetricsPoller) fetchOnce(ctx context.Context) {
	snapshot, outcome := mp.gateway.getRealtimeMetrics(ctx)
	if outcome == outcomeCancelled {
		// Deliberate teardown, not a failure; keep the previous snapshot.
		return
	}

	mp.analytics.SetRealtimeSnapshot(snapshot)

	if mp.metricsDao != nil {
		if err := mp.metricsDao.SetRealtimeSnapshot(snapshot); err != nil {
			log.Printf("[MetricsPoller] Failed to cache realtime snapshot: %v", err)
		}
	}
}
