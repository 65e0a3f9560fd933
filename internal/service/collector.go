package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/clock"
	"github.com/verdantchain/explorer-backend/internal/model"
	"github.com/verdantchain/explorer-backend/pkg/batcher"
)

const (
	snapshotFlushSize     = 16
	snapshotFlushInterval = 30 * time.Second
	snapshotFlushRPS      = 1

	errorSleepDuration = 10 * time.Second
)

// SustainabilityCollector samples a sustainability snapshot on a fixed
// interval and appends it to the history store. Samples flow through a
// batcher so a burst of retained snapshots costs one store write.
type SustainabilityCollector struct {
	provider SnapshotProvider
	store    *HistoryStore
	metrics  CollectorMetrics
	logger   *zap.Logger
	interval time.Duration

	snapshotBatcher *batcher.Batcher[model.SustainabilitySnapshot]
}

// NewSustainabilityCollector builds the collector with the given sampling
// interval.
func NewSustainabilityCollector(
	provider SnapshotProvider,
	store *HistoryStore,
	metrics CollectorMetrics,
	interval time.Duration,
	logger *zap.Logger,
) *SustainabilityCollector {
	return &SustainabilityCollector{
		provider: provider,
		store:    store,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		snapshotBatcher: batcher.New[model.SustainabilitySnapshot](
			logger.Named("snapshotBatcher"),
			func(_ context.Context, snapshots []model.SustainabilitySnapshot) error {
				store.Append(snapshots...)
				metrics.ObserveFlush(len(snapshots))
				return nil
			},
			snapshotFlushSize,
			snapshotFlushInterval,
			snapshotFlushRPS,
		),
	}
}

// Run samples until the context is canceled. A failed sample is logged and
// retried after a short backoff; it never stops the loop.
func (c *SustainabilityCollector) Run(ctx context.Context) error {
	c.snapshotBatcher.Start(ctx)
	defer c.snapshotBatcher.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		snapshot, err := c.provider.GetSustainabilityMetrics(ctx)
		c.metrics.ObserveSnapshot(err, started)
		if err != nil {
			c.logger.Warn("sustainability snapshot failed",
				zap.Error(err), zap.Duration("sleep", errorSleepDuration))
			if err := clock.SleepWithContext(ctx, errorSleepDuration); err != nil {
				return err
			}
			continue
		}

		if err := c.snapshotBatcher.Add(ctx, *snapshot); err != nil {
			return err
		}
		c.logger.Debug("sustainability snapshot taken",
			zap.Float64("energy_per_tx_wh", snapshot.EnergyPerTxWh),
			zap.String("grade", snapshot.Grade))

		if err := clock.SleepWithContext(ctx, c.interval); err != nil {
			return err
		}
	}
}

// History returns retained snapshots covering the trailing number of days,
// oldest first.
func (c *SustainabilityCollector) History(days int) []model.SustainabilitySnapshot {
	if days <= 0 {
		days = 1
	}
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	return c.store.Since(cutoff)
}
