// Package transport exposes the explorer's HTTP API.
package transport

import (
	"context"

	"github.com/verdantchain/explorer-backend/internal/indexer"
	"github.com/verdantchain/explorer-backend/internal/live"
	"github.com/verdantchain/explorer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Explorer is the read surface the handler serves. The indexing facade
	// satisfies it.
	Explorer interface {
		GetChainInfo(ctx context.Context) (*model.ChainInfo, error)
		GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error)
		GetBlockByHash(ctx context.Context, hash string) (*model.Block, error)
		GetTransaction(ctx context.Context, txID string) (*model.Transaction, error)
		GetIdentity(ctx context.Context, id string) (*model.Identity, error)
		GetLatestBlocks(ctx context.Context, n int) ([]model.Block, error)
		GetRecentTransactions(ctx context.Context, n int) ([]model.Transaction, error)
		GetBalance(ctx context.Context, address string) (uint64, error)
		GetUtxos(ctx context.Context, address string) ([]model.UTXO, error)
		GetSustainabilityMetrics(ctx context.Context) (*model.SustainabilitySnapshot, error)
		Search(ctx context.Context, query string) (*indexer.SearchResult, error)
	}

	// SnapshotHistory serves retained sustainability snapshots for a trailing
	// window of days.
	SnapshotHistory interface {
		History(days int) []model.SustainabilitySnapshot
	}

	// EventStream hands out cancellable subscriptions on the ledger event
	// feed.
	EventStream interface {
		Subscribe(handler live.Handler) *live.Subscription
	}
)
