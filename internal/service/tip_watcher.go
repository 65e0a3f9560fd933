package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/verdantchain/explorer-backend/internal/clock"
	"github.com/verdantchain/explorer-backend/internal/live"
	"github.com/verdantchain/explorer-backend/internal/model"
)

const tipErrorSleepDuration = 15 * time.Second

// TipWatcher polls the chain tip and publishes an event per new block and
// per transaction confirmed by it. The first observed tip only seeds the
// cursor; no events are replayed for history.
type TipWatcher struct {
	reader    ChainReader
	publisher EventPublisher
	logger    *zap.Logger
	interval  time.Duration

	lastHeight uint64
	seeded     bool
}

// NewTipWatcher builds a watcher polling at the given interval.
func NewTipWatcher(reader ChainReader, publisher EventPublisher, interval time.Duration, logger *zap.Logger) *TipWatcher {
	return &TipWatcher{
		reader:    reader,
		publisher: publisher,
		logger:    logger.Named("tipWatcher"),
		interval:  interval,
	}
}

// Run polls until the context is canceled.
func (w *TipWatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.poll(ctx); err != nil {
			w.logger.Warn("tip poll failed",
				zap.Error(err), zap.Duration("sleep", tipErrorSleepDuration))
			if err := clock.SleepWithContext(ctx, tipErrorSleepDuration); err != nil {
				return err
			}
			continue
		}

		if err := clock.SleepWithContext(ctx, w.interval); err != nil {
			return err
		}
	}
}

func (w *TipWatcher) poll(ctx context.Context) error {
	info, err := w.reader.GetChainInfo(ctx)
	if err != nil {
		return err
	}

	if !w.seeded {
		w.lastHeight = info.Height
		w.seeded = true
		w.logger.Info("tip cursor seeded", zap.Uint64("height", info.Height))
		return nil
	}

	for height := w.lastHeight + 1; height <= info.Height; height++ {
		block, err := w.reader.GetBlockByHeight(ctx, height)
		if err != nil {
			return err
		}
		w.announce(block, info.Height)
		w.lastHeight = height
	}

	return nil
}

func (w *TipWatcher) announce(block *model.Block, tip uint64) {
	w.publish(live.EventNewBlock, live.NewBlockData{
		Height:  block.Height,
		Hash:    block.Hash,
		TxCount: block.TXCount,
	})

	confirmations := uint32(tip - block.Height + 1)
	for _, tx := range block.Transactions {
		w.publish(live.EventTxConfirmed, live.TxConfirmedData{
			TxHash:        tx.TxID,
			Confirmations: confirmations,
		})
	}

	w.logger.Debug("announced block",
		zap.Uint64("height", block.Height), zap.Uint32("tx_count", block.TXCount))
}

func (w *TipWatcher) publish(eventType string, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		w.logger.Warn("event payload encode failed", zap.Error(err))
		return
	}
	w.publisher.Publish(live.Event{Type: eventType, Data: body})
}
