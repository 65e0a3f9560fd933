package indexer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/verdantchain/explorer-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerSource is the backend contract the facade routes over. Both the
	// live and the simulated source satisfy it.
	LedgerSource interface {
		GetBlockByHeight(ctx context.Context, height uint64) (*model.Block, error)
		GetBlockByHash(ctx context.Context, hash string) (*model.Block, error)
		GetTransaction(ctx context.Context, txID string) (*model.Transaction, error)
		GetIdentity(ctx context.Context, id uuid.UUID) (*model.Identity, error)
		GetLatestBlocks(ctx context.Context, n int) ([]model.Block, error)
		GetRecentTransactions(ctx context.Context, n int) ([]model.Transaction, error)
		GetBalance(ctx context.Context, address string) (uint64, error)
		GetUtxos(ctx context.Context, address string) ([]model.UTXO, error)
		GetChainInfo(ctx context.Context) (*model.ChainInfo, error)
		GetSustainabilityInputs(ctx context.Context) (*model.SustainabilityInputs, error)
	}

	// Prober reports whether the live source is worth querying right now.
	Prober interface {
		IsConnected(ctx context.Context) bool
	}

	// FacadeMetrics records facade operations and whether they were served
	// from the fallback source.
	FacadeMetrics interface {
		Observe(operation string, fallback bool, err error, started time.Time)
	}
)
