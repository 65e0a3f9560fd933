// Package service runs the background loops of the explorer backend. Its one
// resident loop samples sustainability metrics on an interval and retains
// them in memory so the API can serve a history without a database.
package service

import (
	"context"
	"time"

	"github.com/verdantchain/explorer-backend/internal/live"
	"github.com/verdantchain/explorer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SnapshotProvider yields one freshly derived sustainability snapshot.
	// The indexing facade satisfies it.
	SnapshotProvider interface {
		GetSustainabilityMetrics(ctx context.Context) (*model.SustainabilitySnapshot, error)
	}

	// CollectorMetrics records collection attempts and flush sizes.
	CollectorMetrics interface {
		ObserveSnapshot(err error, started time.Time)
		ObserveFlush(count int)
	}

	// ChainReader is the slice of the facade the tip watcher polls.
	ChainReader interface {
		GetChainInfo(ctx context.Context) (*model.ChainInfo, error)
		GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error)
	}

	// EventPublisher fans events out to subscribers.
	EventPublisher interface {
		Publish(event live.Event)
	}
)
