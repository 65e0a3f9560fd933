package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorSnapshotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verdantchain",
		Subsystem: "sustainability_collector",
		Name:      "snapshots_total",
		Help:      "Count of sustainability snapshot collection attempts.",
	}, []string{"status"})
	collectorSnapshotDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verdantchain",
		Subsystem: "sustainability_collector",
		Name:      "snapshot_duration_seconds",
		Help:      "Duration of collecting one sustainability snapshot.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
	collectorFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "verdantchain",
		Subsystem: "sustainability_collector",
		Name:      "flush_size",
		Help:      "Number of snapshots stored per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	})
)

// Collector tracks the periodic sustainability snapshot loop.
type Collector struct{}

// NewCollector constructs a metrics collector for the snapshot loop.
func NewCollector() *Collector {
	return &Collector{}
}

// ObserveSnapshot records one collection attempt.
func (m Collector) ObserveSnapshot(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	collectorSnapshotsTotal.WithLabelValues(status).Inc()
	collectorSnapshotDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveFlush records how many snapshots one flush persisted.
func (m Collector) ObserveFlush(count int) {
	collectorFlushSize.Observe(float64(count))
}
